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

// BoardService handles board business logic
type BoardService interface {
	GetBoards(ctx context.Context, userID uuid.UUID) ([]dto.BoardResponse, error)
	GetBoardByID(ctx context.Context, userID, id uuid.UUID) (*dto.BoardResponse, error)
	CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	SoftDeleteBoard(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteBoard(ctx context.Context, userID, id uuid.UUID) error
}

type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	metrics   *metrics.Metrics
}

// NewBoardService creates a new board service
func NewBoardService(boardRepo repository.BoardRepository, m *metrics.Metrics) BoardService {
	return &boardServiceImpl{boardRepo: boardRepo, metrics: m}
}

func (s *boardServiceImpl) GetBoards(ctx context.Context, userID uuid.UUID) ([]dto.BoardResponse, error) {
	boards, err := s.boardRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BoardResponse, 0, len(boards))
	for i := range boards {
		responses = append(responses, toBoardResponse(&boards[i]))
	}
	return responses, nil
}

func (s *boardServiceImpl) GetBoardByID(ctx context.Context, userID, id uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toBoardResponse(board)
	return &resp, nil
}

func (s *boardServiceImpl) CreateBoard(ctx context.Context, userID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	board := &domain.Board{
		UserID: userID,
		Title:  req.Title,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardsCreated()
	}

	resp := toBoardResponse(board)
	return &resp, nil
}

func (s *boardServiceImpl) UpdateBoard(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, response.NewValidationError("No data provided")
	}

	if err := s.boardRepo.UpdateFields(ctx, userID, id, fields); err != nil {
		return nil, err
	}

	return s.GetBoardByID(ctx, userID, id)
}

func (s *boardServiceImpl) SoftDeleteBoard(ctx context.Context, userID, id uuid.UUID) error {
	return s.boardRepo.SoftDelete(ctx, userID, id)
}

func (s *boardServiceImpl) HardDeleteBoard(ctx context.Context, userID, id uuid.UUID) error {
	return s.boardRepo.HardDelete(ctx, userID, id)
}

func toBoardResponse(board *domain.Board) dto.BoardResponse {
	columns := make([]dto.ColumnResponse, 0, len(board.Columns))
	for i := range board.Columns {
		columns = append(columns, toColumnResponse(&board.Columns[i]))
	}
	return dto.BoardResponse{
		ID:        board.ID,
		Title:     board.Title,
		IsDeleted: board.IsDeleted,
		Columns:   columns,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}
