package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// TicketRepository handles ticket data access, chain-scoped through
// columns and boards
type TicketRepository interface {
	ListByColumn(ctx context.Context, userID, columnID uuid.UUID) ([]domain.Ticket, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	HardDelete(ctx context.Context, userID, id uuid.UUID) error
}

type ticketRepositoryImpl struct {
	crud crudRepository[domain.Ticket]
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepositoryImpl{
		crud: crudRepository[domain.Ticket]{
			db:    db,
			scope: ticketScope,
			preloads: func(query *gorm.DB) *gorm.DB {
				return query.Preload("Tasks", "is_deleted = ?", false)
			},
		},
	}
}

func (r *ticketRepositoryImpl) ListByColumn(ctx context.Context, userID, columnID uuid.UUID) ([]domain.Ticket, error) {
	return r.crud.list(ctx, userID, map[string]interface{}{"column_id": columnID}, "created_at ASC")
}

func (r *ticketRepositoryImpl) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Ticket, error) {
	return r.crud.findByID(ctx, userID, id)
}

func (r *ticketRepositoryImpl) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.crud.create(ctx, ticket)
}

func (r *ticketRepositoryImpl) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	return r.crud.updateFields(ctx, userID, id, fields)
}

func (r *ticketRepositoryImpl) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.softDelete(ctx, userID, id)
}

func (r *ticketRepositoryImpl) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.hardDelete(ctx, userID, id)
}
