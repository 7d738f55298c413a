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

// TicketService handles ticket business logic
type TicketService interface {
	GetTickets(ctx context.Context, userID, columnID uuid.UUID) ([]dto.TicketResponse, error)
	GetTicketByID(ctx context.Context, userID, id uuid.UUID) (*dto.TicketResponse, error)
	CreateTicket(ctx context.Context, userID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error)
	UpdateTicket(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	SoftDeleteTicket(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteTicket(ctx context.Context, userID, id uuid.UUID) error
}

type ticketServiceImpl struct {
	ticketRepo repository.TicketRepository
	columnRepo repository.ColumnRepository
	metrics    *metrics.Metrics
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo repository.TicketRepository, columnRepo repository.ColumnRepository, m *metrics.Metrics) TicketService {
	return &ticketServiceImpl{ticketRepo: ticketRepo, columnRepo: columnRepo, metrics: m}
}

func (s *ticketServiceImpl) GetTickets(ctx context.Context, userID, columnID uuid.UUID) ([]dto.TicketResponse, error) {
	tickets, err := s.ticketRepo.ListByColumn(ctx, userID, columnID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, toTicketResponse(&tickets[i]))
	}
	return responses, nil
}

func (s *ticketServiceImpl) GetTicketByID(ctx context.Context, userID, id uuid.UUID) (*dto.TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketServiceImpl) CreateTicket(ctx context.Context, userID uuid.UUID, req *dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	// the target column must exist and sit on one of the caller's boards
	if _, err := s.columnRepo.FindByID(ctx, userID, req.ColumnID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ColumnID:    req.ColumnID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementTicketsCreated()
	}

	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (s *ticketServiceImpl) UpdateTicket(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, response.NewValidationError("No data provided")
	}

	if err := s.ticketRepo.UpdateFields(ctx, userID, id, fields); err != nil {
		return nil, err
	}

	return s.GetTicketByID(ctx, userID, id)
}

func (s *ticketServiceImpl) SoftDeleteTicket(ctx context.Context, userID, id uuid.UUID) error {
	return s.ticketRepo.SoftDelete(ctx, userID, id)
}

func (s *ticketServiceImpl) HardDeleteTicket(ctx context.Context, userID, id uuid.UUID) error {
	return s.ticketRepo.HardDelete(ctx, userID, id)
}

func toTicketResponse(ticket *domain.Ticket) dto.TicketResponse {
	tasks := make([]dto.TaskResponse, 0, len(ticket.Tasks))
	for i := range ticket.Tasks {
		tasks = append(tasks, toTaskResponse(&ticket.Tasks[i]))
	}
	return dto.TicketResponse{
		ID:          ticket.ID,
		ColumnID:    ticket.ColumnID,
		Title:       ticket.Title,
		Description: ticket.Description,
		IsDeleted:   ticket.IsDeleted,
		Tasks:       tasks,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
