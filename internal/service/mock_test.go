package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// Function-field mocks: each method dispatches to the corresponding field
// when set and falls back to a zero-value answer otherwise.

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockBoardRepository struct {
	ListFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.Board, error)
	FindByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error)
	CreateFunc       func(ctx context.Context, board *domain.Board) error
	UpdateFieldsFunc func(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockBoardRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Board, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []domain.Board{}, nil
}

func (m *mockBoardRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *mockBoardRepository) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, userID, id, fields)
	}
	return nil
}

func (m *mockBoardRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockBoardRepository) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, userID, id)
	}
	return nil
}

type mockColumnRepository struct {
	ListByBoardFunc  func(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Column, error)
	FindByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Column, error)
	CreateFunc       func(ctx context.Context, column *domain.Column) error
	UpdateFieldsFunc func(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockColumnRepository) ListByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]domain.Column, error) {
	if m.ListByBoardFunc != nil {
		return m.ListByBoardFunc(ctx, userID, boardID)
	}
	return []domain.Column{}, nil
}

func (m *mockColumnRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Column, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockColumnRepository) Create(ctx context.Context, column *domain.Column) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, column)
	}
	return nil
}

func (m *mockColumnRepository) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, userID, id, fields)
	}
	return nil
}

func (m *mockColumnRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockColumnRepository) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, userID, id)
	}
	return nil
}

type mockTicketRepository struct {
	ListByColumnFunc func(ctx context.Context, userID, columnID uuid.UUID) ([]domain.Ticket, error)
	FindByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Ticket, error)
	CreateFunc       func(ctx context.Context, ticket *domain.Ticket) error
	UpdateFieldsFunc func(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTicketRepository) ListByColumn(ctx context.Context, userID, columnID uuid.UUID) ([]domain.Ticket, error) {
	if m.ListByColumnFunc != nil {
		return m.ListByColumnFunc(ctx, userID, columnID)
	}
	return []domain.Ticket{}, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ticket)
	}
	return nil
}

func (m *mockTicketRepository) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, userID, id, fields)
	}
	return nil
}

func (m *mockTicketRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockTicketRepository) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, userID, id)
	}
	return nil
}

type mockTaskRepository struct {
	ListByTicketFunc func(ctx context.Context, userID, ticketID uuid.UUID) ([]domain.Task, error)
	FindByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	CreateFunc       func(ctx context.Context, task *domain.Task) error
	UpdateFieldsFunc func(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error
	SoftDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
	HardDeleteFunc   func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockTaskRepository) ListByTicket(ctx context.Context, userID, ticketID uuid.UUID) ([]domain.Task, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, userID, ticketID)
	}
	return []domain.Task{}, nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) UpdateFields(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, userID, id, fields)
	}
	return nil
}

func (m *mockTaskRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockTaskRepository) HardDelete(ctx context.Context, userID, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, userID, id)
	}
	return nil
}

type mockAttachmentRepository struct {
	CreateFunc                func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListConfirmedByTicketFunc func(ctx context.Context, ticketID uuid.UUID) ([]domain.Attachment, error)
	ConfirmFunc               func(ctx context.Context, id, ticketID uuid.UUID) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	FindExpiredTempFunc       func(ctx context.Context, now time.Time, limit int) ([]domain.Attachment, error)
}

func (m *mockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListConfirmedByTicket(ctx context.Context, ticketID uuid.UUID) ([]domain.Attachment, error) {
	if m.ListConfirmedByTicketFunc != nil {
		return m.ListConfirmedByTicketFunc(ctx, ticketID)
	}
	return []domain.Attachment{}, nil
}

func (m *mockAttachmentRepository) Confirm(ctx context.Context, id, ticketID uuid.UUID) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, id, ticketID)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAttachmentRepository) FindExpiredTemp(ctx context.Context, now time.Time, limit int) ([]domain.Attachment, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx, now, limit)
	}
	return []domain.Attachment{}, nil
}
