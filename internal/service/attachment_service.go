package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// maxAttachmentSize caps uploads at 10 MiB
const maxAttachmentSize = 10 << 20

// AttachmentService handles ticket attachment uploads via presigned URLs
type AttachmentService interface {
	GeneratePresignedURL(ctx context.Context, userID, ticketID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	ConfirmAttachment(ctx context.Context, userID, ticketID, attachmentID uuid.UUID) (*dto.AttachmentResponse, error)
	ListAttachments(ctx context.Context, userID, ticketID uuid.UUID) ([]dto.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, userID, attachmentID uuid.UUID) error
}

type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	ticketRepo     repository.TicketRepository
	s3Client       client.S3ClientInterface
	metrics        *metrics.Metrics
}

// NewAttachmentService creates a new attachment service. With a nil S3
// client every operation reports the storage as unavailable.
func NewAttachmentService(attachmentRepo repository.AttachmentRepository, ticketRepo repository.TicketRepository, s3Client client.S3ClientInterface, m *metrics.Metrics) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		ticketRepo:     ticketRepo,
		s3Client:       s3Client,
		metrics:        m,
	}
}

func (s *attachmentServiceImpl) GeneratePresignedURL(ctx context.Context, userID, ticketID uuid.UUID, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	if s.s3Client == nil {
		return nil, errStorageUnavailable()
	}
	if req.FileSize > maxAttachmentSize {
		return nil, response.NewValidationError("File too large")
	}

	// the ticket must be reachable through the caller's boards
	if _, err := s.ticketRepo.FindByID(ctx, userID, ticketID); err != nil {
		return nil, err
	}

	fileKey := s.s3Client.GenerateFileKey(ticketID.String(), req.FileName)
	uploadURL, err := s.s3Client.GeneratePresignedURL(ctx, fileKey, req.ContentType)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(client.PresignTTL)
	attachment := &domain.Attachment{
		Status:      domain.AttachmentStatusTemp,
		FileName:    req.FileName,
		FileKey:     fileKey,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		UploadedBy:  userID,
		ExpiresAt:   &expiresAt,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, err
	}

	return &dto.PresignedURLResponse{
		AttachmentID: attachment.ID,
		UploadURL:    uploadURL,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *attachmentServiceImpl) ConfirmAttachment(ctx context.Context, userID, ticketID, attachmentID uuid.UUID) (*dto.AttachmentResponse, error) {
	if s.s3Client == nil {
		return nil, errStorageUnavailable()
	}

	if _, err := s.ticketRepo.FindByID(ctx, userID, ticketID); err != nil {
		return nil, err
	}

	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found")
		}
		return nil, err
	}
	// only the uploader may confirm their own pending slot
	if attachment.UploadedBy != userID {
		return nil, response.NewNotFoundError("Attachment not found")
	}

	if err := s.attachmentRepo.Confirm(ctx, attachmentID, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Attachment not found")
		}
		return nil, err
	}

	confirmed, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementAttachmentsUploaded()
	}

	resp := s.toAttachmentResponse(confirmed)
	return &resp, nil
}

func (s *attachmentServiceImpl) ListAttachments(ctx context.Context, userID, ticketID uuid.UUID) ([]dto.AttachmentResponse, error) {
	if s.s3Client == nil {
		return nil, errStorageUnavailable()
	}

	if _, err := s.ticketRepo.FindByID(ctx, userID, ticketID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.ListConfirmedByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for i := range attachments {
		responses = append(responses, s.toAttachmentResponse(&attachments[i]))
	}
	return responses, nil
}

func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, userID, attachmentID uuid.UUID) error {
	if s.s3Client == nil {
		return errStorageUnavailable()
	}

	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Attachment not found")
		}
		return err
	}

	// confirmed attachments require ownership of the ticket; unconfirmed
	// slots belong to whoever presigned them
	if attachment.TicketID != nil {
		if _, err := s.ticketRepo.FindByID(ctx, userID, *attachment.TicketID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFoundError("Attachment not found")
			}
			return err
		}
	} else if attachment.UploadedBy != userID {
		return response.NewNotFoundError("Attachment not found")
	}

	if err := s.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
		return err
	}

	return s.attachmentRepo.Delete(ctx, attachmentID)
}

func (s *attachmentServiceImpl) toAttachmentResponse(attachment *domain.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:          attachment.ID,
		FileName:    attachment.FileName,
		FileURL:     s.s3Client.GetFileURL(attachment.FileKey),
		FileSize:    attachment.FileSize,
		ContentType: attachment.ContentType,
		UploadedBy:  attachment.UploadedBy,
		UploadedAt:  attachment.CreatedAt,
	}
}

func errStorageUnavailable() *response.AppError {
	return response.NewAppError(response.ErrCodeUnavailable, "Attachment storage not configured", "")
}
