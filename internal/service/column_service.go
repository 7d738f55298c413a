package service

import (
	"context"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// ColumnService handles column business logic
type ColumnService interface {
	GetColumns(ctx context.Context, userID, boardID uuid.UUID) ([]dto.ColumnResponse, error)
	GetColumnByID(ctx context.Context, userID, id uuid.UUID) (*dto.ColumnResponse, error)
	CreateColumn(ctx context.Context, userID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error)
	UpdateColumn(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error)
	SoftDeleteColumn(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteColumn(ctx context.Context, userID, id uuid.UUID) error
}

type columnServiceImpl struct {
	columnRepo repository.ColumnRepository
	boardRepo  repository.BoardRepository
}

// NewColumnService creates a new column service
func NewColumnService(columnRepo repository.ColumnRepository, boardRepo repository.BoardRepository) ColumnService {
	return &columnServiceImpl{columnRepo: columnRepo, boardRepo: boardRepo}
}

func (s *columnServiceImpl) GetColumns(ctx context.Context, userID, boardID uuid.UUID) ([]dto.ColumnResponse, error) {
	columns, err := s.columnRepo.ListByBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ColumnResponse, 0, len(columns))
	for i := range columns {
		responses = append(responses, toColumnResponse(&columns[i]))
	}
	return responses, nil
}

func (s *columnServiceImpl) GetColumnByID(ctx context.Context, userID, id uuid.UUID) (*dto.ColumnResponse, error) {
	column, err := s.columnRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toColumnResponse(column)
	return &resp, nil
}

func (s *columnServiceImpl) CreateColumn(ctx context.Context, userID uuid.UUID, req *dto.CreateColumnRequest) (*dto.ColumnResponse, error) {
	// the target board must exist and belong to the caller
	if _, err := s.boardRepo.FindByID(ctx, userID, req.BoardID); err != nil {
		return nil, err
	}

	column := &domain.Column{
		BoardID: req.BoardID,
		Title:   req.Title,
		Index:   req.Index,
	}
	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, err
	}

	resp := toColumnResponse(column)
	return &resp, nil
}

func (s *columnServiceImpl) UpdateColumn(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateColumnRequest) (*dto.ColumnResponse, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, response.NewValidationError("No data provided")
	}

	if err := s.columnRepo.UpdateFields(ctx, userID, id, fields); err != nil {
		return nil, err
	}

	return s.GetColumnByID(ctx, userID, id)
}

func (s *columnServiceImpl) SoftDeleteColumn(ctx context.Context, userID, id uuid.UUID) error {
	return s.columnRepo.SoftDelete(ctx, userID, id)
}

func (s *columnServiceImpl) HardDeleteColumn(ctx context.Context, userID, id uuid.UUID) error {
	return s.columnRepo.HardDelete(ctx, userID, id)
}

func toColumnResponse(column *domain.Column) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        column.ID,
		BoardID:   column.BoardID,
		Title:     column.Title,
		Index:     column.Index,
		IsDeleted: column.IsDeleted,
		CreatedAt: column.CreatedAt,
		UpdatedAt: column.UpdatedAt,
	}
}
