package ticket

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	"github.com/sirupsen/logrus"
)

var (
	ErrIncompleteFields     = notification.NewPublicError("Please fill out all fields.", nil)
	ErrInvalidQuantity      = notification.NewPublicError("Quantity must be a whole number", nil)
	ErrQuantityTooLow       = notification.NewPublicError("Quantity must be at least 1", nil)
	ErrInvalidTicketType    = notification.NewPublicError("Invalid ticket type", nil)
	ErrInvalidPaymentStatus = notification.NewPublicError("Invalid payment status", nil)
	ErrInvalidEmail         = notification.NewPublicError("Please enter a valid email address.", nil)
)

type TicketService interface {
	CreateTicket(ctx context.Context, dto CreateTicketDTO) (*Ticket, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Ticket, error)
}

type ticketService struct {
	repo         TicketRepository
	eventService event.EventService
}

func NewService(repo TicketRepository, eventService event.EventService) TicketService {
	return &ticketService{
		repo:         repo,
		eventService: eventService,
	}
}

// validate checks the form without touching storage.
func validate(dto CreateTicketDTO) (*Ticket, error) {
	name := strings.TrimSpace(dto.BuyerName)
	email := strings.TrimSpace(dto.BuyerEmail)
	quantity := strings.TrimSpace(string(dto.Quantity))
	ticketType := TicketType(strings.TrimSpace(dto.TicketType))
	status := PaymentStatus(strings.TrimSpace(dto.PaymentStatus))

	if name == "" || email == "" || quantity == "" || ticketType == "" || status == "" || strings.TrimSpace(dto.EventID) == "" {
		return nil, ErrIncompleteFields
	}

	n, err := strconv.Atoi(quantity)
	if err != nil {
		return nil, ErrInvalidQuantity
	}
	if n < 1 {
		return nil, ErrQuantityTooLow
	}
	if !ticketType.IsValid() {
		return nil, ErrInvalidTicketType
	}
	if !status.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	return &Ticket{
		BuyerName:     name,
		BuyerEmail:    addr.Address,
		Quantity:      n,
		TicketType:    ticketType,
		PaymentStatus: status,
	}, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, dto CreateTicketDTO) (*Ticket, error) {
	log := config.WithContext(ctx)

	t, err := validate(dto)
	if err != nil {
		log.WithError(err).Warn("Invalid ticket form")
		return nil, err
	}

	e, err := s.eventService.GetEvent(ctx, dto.EventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t.ID = uuid.New()
	t.EventID = e.ID
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.repo.Create(t); err != nil {
		log.WithError(err).Error("Failed to create ticket")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"ticket_id": t.ID,
		"event_id":  t.EventID,
		"quantity":  t.Quantity,
	}).Info("Ticket created")
	return t, nil
}

func (s *ticketService) ListByEvent(ctx context.Context, eventID string) ([]*Ticket, error) {
	e, err := s.eventService.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.ListByEvent(e.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list tickets")
		return nil, err
	}
	return tickets, nil
}
