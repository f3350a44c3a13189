package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

type Handler struct {
	source EventSource
	now    func() time.Time
}

func NewHandler(source EventSource) *Handler {
	return &Handler{
		source: source,
		now: func() time.Time {
			return time.Now().In(config.Location)
		},
	}
}

type ViewResponse struct {
	State ViewState `json:"state"`
	Grid  Grid      `json:"grid"`
}

type viewRequest struct {
	State ViewState `json:"state"`
	Input RawInput  `json:"input"`
}

type searchRequest struct {
	State ViewState `json:"state"`
	Name  string    `json:"name"`
}

type moveRequest struct {
	State     ViewState      `json:"state"`
	Date      util.LocalDate `json:"date"`
	Confirmed bool           `json:"confirmed"`
}

type createRequest struct {
	State ViewState  `json:"state"`
	Draft EventDraft `json:"event"`
}

func (h *Handler) session(r *http.Request, state ViewState) *Session {
	return NewSession(h.source,
		WithState(state),
		WithClock(h.now),
		WithNotifier(notification.FromContext(r.Context())),
	)
}

// stateOrToday normalises a client state, defaulting to today's month view.
func (h *Handler) stateOrToday(state ViewState) (ViewState, error) {
	if state.Year == 0 && state.Month == 0 && state.Day == 0 {
		today := NewViewState(h.now())
		if state.View != "" {
			today.View = state.View
		}
		if state.Category != "" {
			today.Category = state.Category
		}
		today.Search = state.Search
		state = today
	}
	return state.Normalize()
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, s *Session) {
	config.JSON(w, status, notification.Wrap(r.Context(), ViewResponse{State: s.State(), Grid: s.Grid()}))
}

// GetCalendar renders the grid for the state in the query string.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	state, err := h.stateFromQuery(r.URL.Query())
	if err != nil {
		log.WithError(err).Warn("Invalid calendar query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := h.session(r, state)
	if err := s.Load(r.Context()); err != nil {
		h.respond(w, r, http.StatusInternalServerError, s)
		return
	}
	h.respond(w, r, http.StatusOK, s)
}

// ApplyInput reduces one user input against the posted state.
func (h *Handler) ApplyInput(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.stateOrToday(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, err := req.Input.Input()
	if err != nil {
		log.WithError(err).Warn("Invalid calendar input")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := h.session(r, state)
	if err := s.Load(r.Context()); err != nil {
		h.respond(w, r, http.StatusInternalServerError, s)
		return
	}
	if _, err := s.Dispatch(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respond(w, r, http.StatusOK, s)
}

// Search shows only the events the data source finds by name.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.stateOrToday(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := h.session(r, state)
	if err := s.Load(r.Context()); err != nil {
		h.respond(w, r, http.StatusInternalServerError, s)
		return
	}
	if err := s.SearchRemote(r.Context(), req.Name); err != nil {
		h.respond(w, r, http.StatusInternalServerError, s)
		return
	}
	h.respond(w, r, http.StatusOK, s)
}

// MoveEvent commits a drag-and-drop date change once the client confirmed it.
func (h *Handler) MoveEvent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "date required", http.StatusBadRequest)
		return
	}

	state, err := h.stateOrToday(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := h.session(r, state)
	if err := s.Load(r.Context()); err != nil {
		h.respond(w, r, http.StatusInternalServerError, s)
		return
	}

	confirmed := func(_ context.Context, _ string) bool { return req.Confirmed }
	if _, err := s.MoveEvent(r.Context(), eventID, req.Date, confirmed); err != nil {
		if errors.Is(err, ErrEventNotLoaded) {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		h.respond(w, r, statusFor(err), s)
		return
	}
	h.respond(w, r, http.StatusOK, s)
}

// CreateEvent validates and creates an event, then returns the refreshed grid.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.stateOrToday(req.State)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := h.session(r, state)
	if _, err := s.CreateEvent(r.Context(), req.Draft); err != nil {
		h.respond(w, r, statusFor(err), s)
		return
	}
	h.respond(w, r, http.StatusCreated, s)
}

// statusFor maps local validation failures and data-source errors that carry
// a user-facing message to 400.
func statusFor(err error) int {
	var m notification.Messenger
	if errors.Is(err, ErrValidation) || errors.As(err, &m) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) stateFromQuery(q url.Values) (ViewState, error) {
	state := NewViewState(h.now())

	view, err := ParseView(q.Get("view"))
	if err != nil {
		return state, err
	}
	state.View = view

	if d := q.Get("date"); d != "" {
		date, err := util.ParseDate(d)
		if err != nil {
			return state, ErrInvalidState
		}
		state = state.WithDate(date)
	}
	for key, dst := range map[string]*int{"year": &state.Year, "day": &state.Day} {
		if raw := q.Get(key); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return state, ErrInvalidState
			}
			*dst = n
		}
	}
	if raw := q.Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return state, ErrInvalidState
		}
		state.Month = time.Month(n)
	}

	if c := strings.TrimSpace(q.Get("category")); c != "" {
		state.Category = c
	}
	state.Search = strings.TrimSpace(q.Get("search"))

	return state.Normalize()
}
