package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/saulo-duarte/chronos-events/internal/event"
	"github.com/saulo-duarte/chronos-events/internal/notification"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrTaskNotFound        = notification.NewPublicError("Task not found", nil)
	ErrSubtaskNotFound     = notification.NewPublicError("Subtask not found", nil)
	ErrInvalidID           = notification.NewPublicError("Invalid id format", nil)
	ErrNameRequired        = notification.NewPublicError("Task name is required", nil)
	ErrInvalidPriority     = notification.NewPublicError("Priority must be High, Medium or Low", nil)
	ErrInvalidStatus       = notification.NewPublicError("Invalid task status", nil)
	ErrSubtaskNameRequired = notification.NewPublicError("Subtask name is required", nil)
)

type TaskService interface {
	CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Task, error)
	GetTask(ctx context.Context, id string) (*Task, error)
	ListSubtasks(ctx context.Context, taskID string) ([]Subtask, error)
	AddSubtask(ctx context.Context, taskID string, dto AddSubtaskDTO) (*Subtask, error)
	ToggleSubtask(ctx context.Context, subtaskID string) (*Task, error)
}

type taskService struct {
	repo         TaskRepository
	eventService event.EventService
	now          func() time.Time
}

func NewService(repo TaskRepository, eventService event.EventService) TaskService {
	return &taskService{
		repo:         repo,
		eventService: eventService,
		now:          time.Now,
	}
}

func parseUUID(log logrus.FieldLogger, id string, entityName string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		log.WithError(err).Warnf("Invalid %s ID", entityName)
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func (s *taskService) CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	priority := Priority(strings.TrimSpace(dto.Priority))
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	status := StatusNotStarted
	if raw := strings.TrimSpace(dto.Status); raw != "" {
		status = Status(raw)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	e, err := s.eventService.GetEvent(ctx, dto.EventID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &Task{
		ID:          uuid.New(),
		EventID:     e.ID,
		Name:        name,
		Description: strings.TrimSpace(dto.Description),
		Priority:    priority,
		DueDate:     dto.DueDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(t); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"task_id":  t.ID,
		"event_id": t.EventID,
	}).Info("Task created successfully")
	return t, nil
}

func (s *taskService) ListByEvent(ctx context.Context, eventID string) ([]*Task, error) {
	e, err := s.eventService.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByEvent(e.ID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list tasks by event")
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*Task, error) {
	log := config.WithContext(ctx)

	taskID, err := parseUUID(log, id, "task")
	if err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("task_id", id).Warn("Task not found")
			return nil, ErrTaskNotFound
		}
		log.WithError(err).Error("Error finding task by ID")
		return nil, err
	}
	return t, nil
}

func (s *taskService) ListSubtasks(ctx context.Context, taskID string) ([]Subtask, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return t.Subtasks, nil
}

func (s *taskService) AddSubtask(ctx context.Context, taskID string, dto AddSubtaskDTO) (*Subtask, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, ErrSubtaskNameRequired
	}

	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	st := &Subtask{
		ID:        uuid.New(),
		TaskID:    t.ID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateSubtask(st); err != nil {
		log.WithError(err).Error("Failed to create subtask")
		return nil, err
	}

	if _, err := s.recompute(ctx, t); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"task_id":    t.ID,
		"subtask_id": st.ID,
	}).Info("Subtask added")
	return st, nil
}

// ToggleSubtask flips a subtask's completion and returns the owning task with
// its refreshed completion percentage.
func (s *taskService) ToggleSubtask(ctx context.Context, subtaskID string) (*Task, error) {
	log := config.WithContext(ctx)

	id, err := parseUUID(log, subtaskID, "subtask")
	if err != nil {
		return nil, err
	}

	st, err := s.repo.FindSubtaskByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("subtask_id", subtaskID).Warn("Subtask not found")
			return nil, ErrSubtaskNotFound
		}
		log.WithError(err).Error("Error finding subtask by ID")
		return nil, err
	}

	now := s.now()
	st.IsCompleted = !st.IsCompleted
	if st.IsCompleted {
		st.CompletionDate = util.DateOf(now.In(config.Location))
	} else {
		st.CompletionDate = util.LocalDate{}
	}
	st.UpdatedAt = now

	if err := s.repo.UpdateSubtask(st); err != nil {
		log.WithError(err).Error("Failed to update subtask")
		return nil, err
	}

	t, err := s.GetTask(ctx, st.TaskID.String())
	if err != nil {
		return nil, err
	}
	return s.recompute(ctx, t)
}

// recompute refreshes the task's completion percentage from its stored
// subtasks. A task without subtasks keeps its status.
func (s *taskService) recompute(ctx context.Context, t *Task) (*Task, error) {
	log := config.WithContext(ctx)

	subtasks, err := s.repo.ListSubtasks(t.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list subtasks")
		return nil, err
	}

	t.Subtasks = subtasks
	t.CompletionPercentage = Completion(subtasks)
	if len(subtasks) > 0 {
		t.Status = StatusForCompletion(t.CompletionPercentage)
	}
	t.UpdatedAt = s.now()

	if err := s.repo.Update(t); err != nil {
		log.WithError(err).Error("Failed to update task completion")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"task_id":    t.ID,
		"completion": t.CompletionPercentage,
	}).Debug("Task completion updated")
	return t, nil
}
