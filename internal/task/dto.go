package task

import util "github.com/saulo-duarte/chronos-events/internal/utils"

type CreateTaskDTO struct {
	EventID     string         `json:"event_id"`
	Name        string         `json:"task_name"`
	Description string         `json:"task_description"`
	Priority    string         `json:"priority"`
	DueDate     util.LocalDate `json:"due_date"`
	Status      string         `json:"status"`
}

type AddSubtaskDTO struct {
	Name string `json:"subtask_name"`
}
