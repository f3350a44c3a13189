package event

import util "github.com/saulo-duarte/chronos-events/internal/utils"

type UpdateEventDateDTO struct {
	NewStartDate util.LocalDate `json:"new_start_date"`
}

type EventTypesResponse struct {
	Kind       Kind       `json:"calendar_event_type"`
	Categories []Category `json:"event_types"`
}
