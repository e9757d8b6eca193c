package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"arbos/internal/config"
	"arbos/internal/domain"
	"arbos/internal/port"
)

// AttachmentUploadInput is the DTO for attachment upload requests.
type AttachmentUploadInput struct {
	OwnerID   uuid.UUID
	ProjectID uuid.UUID
	TreeID    *uuid.UUID
	File      multipart.File
	Header    *multipart.FileHeader
}

// AttachmentService defines attachment management operations.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, ownerID, attID uuid.UUID) (*domain.Attachment, error)
	ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error)
	GetDownloadURL(ctx context.Context, ownerID, attID uuid.UUID) (string, error)
	Delete(ctx context.Context, ownerID, attID uuid.UUID) error
}

type attachmentService struct {
	attRepo     port.AttachmentRepository
	projectRepo port.ProjectRepository
	treeRepo    port.TreeRepository
	storage     port.ObjectStorage
	cfg         *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	attRepo port.AttachmentRepository,
	projectRepo port.ProjectRepository,
	treeRepo port.TreeRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		attRepo:     attRepo,
		projectRepo: projectRepo,
		treeRepo:    treeRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	if _, err := s.projectRepo.GetByID(ctx, input.OwnerID, input.ProjectID); err != nil {
		return nil, err
	}
	if input.TreeID != nil {
		if _, err := s.treeRepo.GetByID(ctx, input.OwnerID, *input.TreeID); err != nil {
			return nil, err
		}
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	attID := uuid.New()
	s3Key := fmt.Sprintf("projects/%s/attachments/%s/%s", input.ProjectID, attID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	att := &domain.Attachment{
		ID:           attID,
		ProjectID:    input.ProjectID,
		TreeID:       input.TreeID,
		OwnerID:      input.OwnerID,
		FileName:     attID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.AttachmentStatusPending,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) to project %s",
		input.Header.Filename, contentType, input.Header.Size, input.ProjectID)

	// Persist metadata with pending status
	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: S3 upload failed for %s: %v", att.ID, err)
		_ = s.attRepo.UpdateStatus(ctx, att.OwnerID, att.ID, domain.AttachmentStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.attRepo.UpdateStatus(ctx, att.OwnerID, att.ID, domain.AttachmentStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating attachment status: %w", err)
	}
	att.Status = domain.AttachmentStatusUploaded

	return att, nil
}

func (s *attachmentService) GetByID(ctx context.Context, ownerID, attID uuid.UUID) (*domain.Attachment, error) {
	return s.attRepo.GetByID(ctx, ownerID, attID)
}

func (s *attachmentService) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	return s.attRepo.ListByProject(ctx, ownerID, projectID, offset, limit)
}

func (s *attachmentService) ListByTree(ctx context.Context, ownerID, treeID uuid.UUID, offset, limit int) ([]domain.Attachment, int, error) {
	return s.attRepo.ListByTree(ctx, ownerID, treeID, offset, limit)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, ownerID, attID uuid.UUID) (string, error) {
	att, err := s.attRepo.GetByID(ctx, ownerID, attID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, att.S3Bucket, att.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, ownerID, attID uuid.UUID) error {
	att, err := s.attRepo.GetByID(ctx, ownerID, attID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, att.S3Bucket, att.S3Key); err != nil {
		log.Printf("attachmentService.Delete: S3 delete failed for %s: %v", att.ID, err)
	}
	return s.attRepo.Delete(ctx, ownerID, attID)
}
