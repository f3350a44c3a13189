package calendar

type CalendarContainer struct {
	Handler *Handler
}

func NewCalendarContainer(source EventSource) *CalendarContainer {
	return &CalendarContainer{
		Handler: NewHandler(source),
	}
}
