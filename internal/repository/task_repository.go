package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// TaskRepository handles checklist task data access, chain-scoped through
// tickets, columns and boards
type TaskRepository interface {
	ListByTicket(ctx context.Context, userID, ticketID uuid.UUID) ([]domain.Task, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	HardDelete(ctx context.Context, userID, id uuid.UUID) error
}

type taskRepositoryImpl struct {
	crud crudRepository[domain.Task]
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{
		crud: crudRepository[domain.Task]{db: db, scope: taskScope},
	}
}

func (r *taskRepositoryImpl) ListByTicket(ctx context.Context, userID, ticketID uuid.UUID) ([]domain.Task, error) {
	return r.crud.list(ctx, userID, map[string]interface{}{"ticket_id": ticketID}, "created_at ASC")
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	return r.crud.findByID(ctx, userID, id)
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.crud.create(ctx, task)
}

func (r *taskRepositoryImpl) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	return r.crud.updateFields(ctx, userID, id, fields)
}

func (r *taskRepositoryImpl) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.softDelete(ctx, userID, id)
}

func (r *taskRepositoryImpl) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.hardDelete(ctx, userID, id)
}
