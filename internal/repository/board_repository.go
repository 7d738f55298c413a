package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// BoardRepository handles board data access. Every method is scoped by the
// owning user's id.
type BoardRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Board, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error)
	Create(ctx context.Context, board *domain.Board) error
	UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
	HardDelete(ctx context.Context, userID, id uuid.UUID) error
}

type boardRepositoryImpl struct {
	crud crudRepository[domain.Board]
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{
		crud: crudRepository[domain.Board]{
			db:    db,
			scope: boardScope,
			preloads: func(query *gorm.DB) *gorm.DB {
				return query.Preload("Columns", "is_deleted = ?", false)
			},
		},
	}
}

func (r *boardRepositoryImpl) List(ctx context.Context, userID uuid.UUID) ([]domain.Board, error) {
	return r.crud.list(ctx, userID, nil, "created_at ASC")
}

func (r *boardRepositoryImpl) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error) {
	return r.crud.findByID(ctx, userID, id)
}

func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.crud.create(ctx, board)
}

func (r *boardRepositoryImpl) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	return r.crud.updateFields(ctx, userID, id, fields)
}

func (r *boardRepositoryImpl) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.softDelete(ctx, userID, id)
}

func (r *boardRepositoryImpl) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.crud.hardDelete(ctx, userID, id)
}
