package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// scopeFunc narrows a query to rows the given user owns. Implementations
// append WHERE conditions, typically an ownership subquery walking the
// foreign keys up to boards.user_id. An unowned id must end up
// indistinguishable from a missing one.
type scopeFunc func(db *gorm.DB, query *gorm.DB, userID uuid.UUID) *gorm.DB

// crudRepository implements the persistence contract shared by every
// board-family resource. Reads exclude soft-deleted rows; mutations do not,
// which keeps soft-delete idempotent. Ownership is folded into each
// statement so there is no check-then-act window.
type crudRepository[T any] struct {
	db       *gorm.DB
	scope    scopeFunc
	preloads func(*gorm.DB) *gorm.DB
}

func (r *crudRepository[T]) list(ctx context.Context, userID uuid.UUID, conds map[string]interface{}, order string) ([]T, error) {
	entities := make([]T, 0)
	query := r.db.WithContext(ctx).Model(new(T)).Where("is_deleted = ?", false)
	for column, value := range conds {
		query = query.Where(column+" = ?", value)
	}
	query = r.scope(r.db, query, userID)
	if r.preloads != nil {
		query = r.preloads(query)
	}
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *crudRepository[T]) findByID(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var entity T
	query := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("is_deleted = ?", false)
	query = r.scope(r.db, query, userID)
	if r.preloads != nil {
		query = r.preloads(query)
	}
	if err := query.First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepository[T]) create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *crudRepository[T]) updateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	query := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id)
	query = r.scope(r.db, query, userID)
	result := query.Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepository[T]) softDelete(ctx context.Context, userID, id uuid.UUID) error {
	return r.updateFields(ctx, userID, id, map[string]interface{}{"is_deleted": true})
}

func (r *crudRepository[T]) hardDelete(ctx context.Context, userID, id uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	query = r.scope(r.db, query, userID)
	result := query.Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Ownership scopes. Boards are owned directly; everything below them walks
// the foreign keys back up to boards.user_id with nested subqueries, so the
// scope works identically in SELECT, UPDATE and DELETE statements.

func boardScope(db *gorm.DB, query *gorm.DB, userID uuid.UUID) *gorm.DB {
	return query.Where("user_id = ?", userID)
}

func ownedBoardIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&domain.Board{}).Select("id").Where("user_id = ?", userID)
}

func columnScope(db *gorm.DB, query *gorm.DB, userID uuid.UUID) *gorm.DB {
	return query.Where("board_id IN (?)", ownedBoardIDs(db, userID))
}

func ownedColumnIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&domain.Column{}).Select("id").Where("board_id IN (?)", ownedBoardIDs(db, userID))
}

func ticketScope(db *gorm.DB, query *gorm.DB, userID uuid.UUID) *gorm.DB {
	return query.Where("column_id IN (?)", ownedColumnIDs(db, userID))
}

func ownedTicketIDs(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&domain.Ticket{}).Select("id").Where("column_id IN (?)", ownedColumnIDs(db, userID))
}

func taskScope(db *gorm.DB, query *gorm.DB, userID uuid.UUID) *gorm.DB {
	return query.Where("ticket_id IN (?)", ownedTicketIDs(db, userID))
}
