package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// AttachmentRepository handles attachment metadata. Attachments are not part
// of the soft-delete family; rows are created as TEMP, confirmed onto a
// ticket, and physically removed on delete or expiry.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	ListConfirmedByTicket(ctx context.Context, ticketID uuid.UUID) ([]domain.Attachment, error)
	Confirm(ctx context.Context, id, ticketID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindExpiredTemp(ctx context.Context, now time.Time, limit int) ([]domain.Attachment, error)
}

type attachmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepositoryImpl{db: db}
}

func (r *attachmentRepositoryImpl) Create(ctx context.Context, attachment *domain.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *attachmentRepositoryImpl) ListConfirmedByTicket(ctx context.Context, ticketID uuid.UUID) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0)
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Where("status = ?", domain.AttachmentStatusConfirmed).
		Order("created_at ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *attachmentRepositoryImpl) Confirm(ctx context.Context, id, ticketID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Attachment{}).
		Where("id = ?", id).
		Where("status = ?", domain.AttachmentStatusTemp).
		Updates(map[string]interface{}{
			"ticket_id":  ticketID,
			"status":     domain.AttachmentStatusConfirmed,
			"expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *attachmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Attachment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *attachmentRepositoryImpl) FindExpiredTemp(ctx context.Context, now time.Time, limit int) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.AttachmentStatusTemp).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Limit(limit).
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
