package calendar

import (
	"errors"
	"fmt"
	"strings"

	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

var ErrUnknownInput = errors.New("unknown calendar input")

// Input is a user interaction that changes the view state. The set of
// variants is closed: CategorySelected, SearchEntered, ViewSwitched,
// Navigated and JumpedTo.
type Input interface {
	isInput()
}

type CategorySelected struct {
	Category string
}

type SearchEntered struct {
	Term string
}

type ViewSwitched struct {
	View View
}

type Navigated struct {
	Direction Direction
}

type JumpedTo struct {
	Date util.LocalDate
}

func (CategorySelected) isInput() {}
func (SearchEntered) isInput()    {}
func (ViewSwitched) isInput()     {}
func (Navigated) isInput()        {}
func (JumpedTo) isInput()         {}

// Reduce returns the state that results from applying in to s.
func Reduce(s ViewState, in Input) (ViewState, error) {
	switch in := in.(type) {
	case CategorySelected:
		s.Category = strings.TrimSpace(in.Category)
		if s.Category == "" {
			s.Category = AllCategories
		}
		return s, nil
	case SearchEntered:
		s.Search = strings.TrimSpace(in.Term)
		return s, nil
	case ViewSwitched:
		view, err := ParseView(string(in.View))
		if err != nil {
			return s, err
		}
		s.View = view
		return s, nil
	case Navigated:
		if in.Direction != Next && in.Direction != Previous {
			return s, fmt.Errorf("%w: %d", ErrInvalidDirection, in.Direction)
		}
		return s.Navigate(in.Direction), nil
	case JumpedTo:
		if in.Date.IsZero() {
			return s, fmt.Errorf("%w: missing date", ErrInvalidState)
		}
		return s.WithDate(in.Date), nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownInput, in)
	}
}

// RawInput is the wire form of an Input: {"type": "navigate", "direction": "next"}.
type RawInput struct {
	Type      string `json:"type"`
	Category  string `json:"category,omitempty"`
	Term      string `json:"term,omitempty"`
	View      string `json:"view,omitempty"`
	Direction string `json:"direction,omitempty"`
	Date      string `json:"date,omitempty"`
}

func (r RawInput) Input() (Input, error) {
	switch strings.ToLower(strings.TrimSpace(r.Type)) {
	case "category":
		return CategorySelected{Category: r.Category}, nil
	case "search":
		return SearchEntered{Term: r.Term}, nil
	case "view":
		view, err := ParseView(r.View)
		if err != nil {
			return nil, err
		}
		return ViewSwitched{View: view}, nil
	case "navigate":
		dir, err := ParseDirection(r.Direction)
		if err != nil {
			return nil, err
		}
		return Navigated{Direction: dir}, nil
	case "jump":
		d, err := util.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return JumpedTo{Date: d}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInput, r.Type)
}
