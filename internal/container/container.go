package container

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/saulo-duarte/chronos-events/internal/auth"
	"github.com/saulo-duarte/chronos-events/internal/budget"
	"github.com/saulo-duarte/chronos-events/internal/calendar"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	googlecalendar "github.com/saulo-duarte/chronos-events/internal/google_calendar"
	"github.com/saulo-duarte/chronos-events/internal/router"
	"github.com/saulo-duarte/chronos-events/internal/rsvp"
	"github.com/saulo-duarte/chronos-events/internal/task"
	"github.com/saulo-duarte/chronos-events/internal/ticket"
)

type Container struct {
	GoogleCalendarContainer *googlecalendar.GoogleCalendarContainer
	EventContainer          *event.EventContainer
	CalendarContainer       *calendar.CalendarContainer
	RSVPContainer           *rsvp.RSVPContainer
	TicketContainer         *ticket.TicketContainer
	TaskContainer           *task.TaskContainer
	BudgetContainer         *budget.BudgetContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if config.Getenv("AUTO_MIGRATE", "") == "true" {
		if err := config.DB.WithContext(ctx).AutoMigrate(
			&event.Event{},
			&rsvp.Attendee{},
			&ticket.Ticket{},
			&task.Task{},
			&task.Subtask{},
			&budget.Budget{},
			&budget.Expense{},
		); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
	}

	googleCalendarContainer := googlecalendar.NewGoogleCalendarContainer()
	eventContainer := event.NewEventContainer(config.DB, googleCalendarContainer.CalendarManager)

	return &Container{
		GoogleCalendarContainer: googleCalendarContainer,
		EventContainer:          eventContainer,
		CalendarContainer:       calendar.NewCalendarContainer(eventContainer.Source),
		RSVPContainer:           rsvp.NewRSVPContainer(config.DB, eventContainer.Service),
		TicketContainer:         ticket.NewTicketContainer(config.DB, eventContainer.Service),
		TaskContainer:           task.NewTaskContainer(config.DB, eventContainer.Service),
		BudgetContainer:         budget.NewBudgetContainer(config.DB, eventContainer.Service),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CalendarHandler: c.CalendarContainer.Handler,
		EventHandler:    c.EventContainer.Handler,
		RSVPHandler:     c.RSVPContainer.Handler,
		TicketHandler:   c.TicketContainer.Handler,
		TaskHandler:     c.TaskContainer.Handler,
		BudgetHandler:   c.BudgetContainer.Handler,
	})
}
