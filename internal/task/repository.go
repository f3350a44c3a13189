package task

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type TaskRepository interface {
	Create(t *Task) error
	Update(t *Task) error
	FindByID(id uuid.UUID) (*Task, error)
	ListByEvent(eventID uuid.UUID) ([]*Task, error)
	CreateSubtask(st *Subtask) error
	UpdateSubtask(st *Subtask) error
	FindSubtaskByID(id uuid.UUID) (*Subtask, error)
	ListSubtasks(taskID uuid.UUID) ([]Subtask, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(t *Task) error {
	return r.db.Omit("Event", "Subtasks").Create(t).Error
}

func (r *taskRepository) Update(t *Task) error {
	return r.db.Omit("Event", "Subtasks").Save(t).Error
}

func (r *taskRepository) FindByID(id uuid.UUID) (*Task, error) {
	var t Task
	err := r.db.
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) ListByEvent(eventID uuid.UUID) ([]*Task, error) {
	var tasks []*Task
	if err := r.db.
		Where("event_id = ?", eventID).
		Order("due_date ASC NULLS LAST").
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) CreateSubtask(st *Subtask) error {
	return r.db.Create(st).Error
}

func (r *taskRepository) UpdateSubtask(st *Subtask) error {
	return r.db.Save(st).Error
}

func (r *taskRepository) FindSubtaskByID(id uuid.UUID) (*Subtask, error) {
	var st Subtask
	if err := r.db.First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *taskRepository) ListSubtasks(taskID uuid.UUID) ([]Subtask, error) {
	var subtasks []Subtask
	if err := r.db.
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}
