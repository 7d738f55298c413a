package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
)

// expiredBatchSize bounds one cleanup pass
const expiredBatchSize = 500

// CleanupJob removes expired temporary attachments. Presigned upload slots
// that were never confirmed leave TEMP rows behind; this purges them from
// S3 and the database.
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	logger         *zap.Logger
	metrics        *metrics.Metrics
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	attachmentRepo repository.AttachmentRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
	m *metrics.Metrics,
) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		logger:         logger,
		metrics:        m,
	}
}

// Schedule registers the job on an hourly cron and starts the scheduler
func (j *CleanupJob) Schedule() *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", j.Run)
	c.Start()
	return c
}

// Run executes one cleanup pass. Implements cron.Job's contract.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	expired, err := j.attachmentRepo.FindExpiredTemp(ctx, time.Now(), expiredBatchSize)
	if err != nil {
		j.logger.Error("failed to find expired temporary attachments", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	j.logger.Info("purging expired temporary attachments", zap.Int("count", len(expired)))

	purged := 0
	for _, attachment := range expired {
		if err := j.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
			// keep the row so the next pass can retry the object removal
			j.logger.Error("failed to delete file from S3",
				zap.String("attachment_id", attachment.ID.String()),
				zap.String("file_key", attachment.FileKey),
				zap.Error(err),
			)
			continue
		}

		if err := j.attachmentRepo.Delete(ctx, attachment.ID); err != nil {
			j.logger.Error("failed to delete attachment row",
				zap.String("attachment_id", attachment.ID.String()),
				zap.Error(err),
			)
			continue
		}

		purged++
		if j.metrics != nil {
			j.metrics.IncrementAttachmentsPurged()
		}
	}

	j.logger.Info("cleanup pass finished",
		zap.Int("purged", purged),
		zap.Int("failed", len(expired)-purged),
	)
}
