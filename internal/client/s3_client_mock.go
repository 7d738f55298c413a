package client

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc      func(ticketID, fileName string) string
	GeneratePresignedURLFunc func(ctx context.Context, key, contentType string) (string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string

	// DeletedKeys records every DeleteFile call for assertions
	DeletedKeys []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "eu-west-1",
	}
}

// GenerateFileKey generates a deterministic-shaped key for tests
func (m *MockS3Client) GenerateFileKey(ticketID, fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(ticketID, fileName)
	}
	now := time.Now()
	return fmt.Sprintf("attachments/%s/%s/%s/%s_%d%s",
		ticketID, now.Format("2006"), now.Format("01"), uuid.New().String(), now.Unix(), filepath.Ext(fileName))
}

// GeneratePresignedURL generates a mock presigned URL
func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, key, contentType string) (string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, key, contentType)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Signature=mocksignature123", m.Bucket, m.Region, key), nil
}

// DeleteFile records the deletion and succeeds
func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// GetFileURL returns the public URL for a file
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockS3Client implements S3ClientInterface
var _ S3ClientInterface = (*MockS3Client)(nil)
