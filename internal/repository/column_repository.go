package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// ColumnRepository handles column data access. Ownership is enforced through
// the board: a column on someone else's board behaves as not found.
type ColumnRepository interface {
	ListByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Column, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Column, error)
	Create(ctx context.Context, column *domain.Column) error
	UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	HardDelete(ctx context.Context, userID, id uuid.UUID) error
}

type columnRepositoryImpl struct {
	crud crudRepository[domain.Column]
}

// NewColumnRepository creates a new column repository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{
		crud: crudRepository[domain.Column]{db: db, scope: columnScope},
	}
}

func (r *columnRepositoryImpl) ListByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Column, error) {
	return r.crud.list(ctx, userID, map[string]interface{}{"board_id": boardID}, `"index" ASC`)
}

func (r *columnRepositoryImpl) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Column, error) {
	return r.crud.findByID(ctx, userID, id)
}

func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.Column) error {
	return r.crud.create(ctx, column)
}

func (r *columnRepositoryImpl) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	return r.crud.updateFields(ctx, userID, id, fields)
}

func (r *columnRepositoryImpl) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.softDelete(ctx, userID, id)
}

func (r *columnRepositoryImpl) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.hardDelete(ctx, userID, id)
}
