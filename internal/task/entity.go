package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/event"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
)

type Task struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EventID              uuid.UUID      `gorm:"type:uuid;column:event_id;not null;index" json:"event_id"`
	Event                event.Event    `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name                 string         `gorm:"column:task_name;not null" json:"task_name"`
	Description          string         `gorm:"column:task_description" json:"task_description"`
	Priority             Priority       `gorm:"not null" json:"priority"`
	DueDate              util.LocalDate `gorm:"type:date" json:"due_date"`
	Status               Status         `gorm:"not null" json:"status"`
	CompletionPercentage int            `gorm:"not null;default:0" json:"completion_percentage"`
	Subtasks             []Subtask      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE;" json:"subtasks,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

type Subtask struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID         uuid.UUID      `gorm:"type:uuid;column:task_id;not null;index" json:"task_id"`
	Name           string         `gorm:"column:subtask_name;not null" json:"subtask_name"`
	IsCompleted    bool           `gorm:"not null;default:false" json:"is_completed"`
	CompletionDate util.LocalDate `gorm:"type:date" json:"completion_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Subtask) TableName() string {
	return "subtasks"
}

// Completion returns the share of completed subtasks, rounded down.
func Completion(subtasks []Subtask) int {
	if len(subtasks) == 0 {
		return 0
	}
	done := 0
	for _, st := range subtasks {
		if st.IsCompleted {
			done++
		}
	}
	return done * 100 / len(subtasks)
}
