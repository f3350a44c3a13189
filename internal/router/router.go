package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/chronos-events/internal/auth"
	"github.com/saulo-duarte/chronos-events/internal/budget"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/middlewares"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	"github.com/saulo-duarte/chronos-events/internal/rsvp"
	"github.com/saulo-duarte/chronos-events/internal/task"
	"github.com/saulo-duarte/chronos-events/internal/ticket"
)

type RouterConfig struct {
	CalendarHandler *calendar.Handler
	EventHandler    *event.Handler
	RSVPHandler     *rsvp.Handler
	TicketHandler   *ticket.Handler
	TaskHandler     *task.Handler
	BudgetHandler   *budget.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(notification.Middleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
		r.Mount("/events", event.Routes(cfg.EventHandler))
		r.Mount("/rsvps", rsvp.Routes(cfg.RSVPHandler))
		r.Mount("/tickets", ticket.Routes(cfg.TicketHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
		r.Mount("/subtasks", task.SubtaskRoutes(cfg.TaskHandler))
		r.Mount("/budgets", budget.Routes(cfg.BudgetHandler))

		r.Get("/events/{id}/attendees", cfg.RSVPHandler.ListAttendees)
		r.Get("/events/{id}/tickets", cfg.TicketHandler.ListByEvent)
		r.Get("/events/{id}/tasks", cfg.TaskHandler.ListByEvent)
	})
	return r
}
