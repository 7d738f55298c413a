package service

import (
	"context"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// TaskService handles checklist task business logic
type TaskService interface {
	GetTasks(ctx context.Context, userID, ticketID uuid.UUID) ([]dto.TaskResponse, error)
	GetTaskByID(ctx context.Context, userID, id uuid.UUID) (*dto.TaskResponse, error)
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	SoftDeleteTask(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteTask(ctx context.Context, userID, id uuid.UUID) error
}

type taskServiceImpl struct {
	taskRepo   repository.TaskRepository
	ticketRepo repository.TicketRepository
	metrics    *metrics.Metrics
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository, ticketRepo repository.TicketRepository, m *metrics.Metrics) TaskService {
	return &taskServiceImpl{taskRepo: taskRepo, ticketRepo: ticketRepo, metrics: m}
}

func (s *taskServiceImpl) GetTasks(ctx context.Context, userID, ticketID uuid.UUID) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, toTaskResponse(&tasks[i]))
	}
	return responses, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, userID, id uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	// the target ticket must exist and be reachable through the caller's boards
	if _, err := s.ticketRepo.FindByID(ctx, userID, req.TicketID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		TicketID: req.TicketID,
		Title:    req.Title,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, response.NewValidationError("No data provided")
	}

	if err := s.taskRepo.UpdateFields(ctx, userID, id, fields); err != nil {
		return nil, err
	}

	if s.metrics != nil && req.Completed != nil && *req.Completed {
		s.metrics.IncrementTasksCompleted()
	}

	return s.GetTaskByID(ctx, userID, id)
}

func (s *taskServiceImpl) SoftDeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	return s.taskRepo.SoftDelete(ctx, userID, id)
}

func (s *taskServiceImpl) HardDeleteTask(ctx context.Context, userID, id uuid.UUID) error {
	return s.taskRepo.HardDelete(ctx, userID, id)
}

func toTaskResponse(task *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        task.ID,
		TicketID:  task.TicketID,
		Title:     task.Title,
		Completed: task.Completed,
		IsDeleted: task.IsDeleted,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
