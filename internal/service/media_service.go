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
	"time"

	"github.com/google/uuid"

	"sentrydesk/internal/config"
	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

// MediaUploadInput is the DTO for attachment upload requests.
type MediaUploadInput struct {
	TenantID   uuid.UUID
	WeekID     uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// MediaService defines attachment management operations.
type MediaService interface {
	Upload(ctx context.Context, input MediaUploadInput) (*domain.MediaAttachment, error)
	GetByID(ctx context.Context, tenantID, mediaID uuid.UUID) (*domain.MediaAttachment, error)
	ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.MediaAttachment, error)
	GetDownloadURL(ctx context.Context, tenantID, mediaID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, mediaID uuid.UUID) error
}

type mediaService struct {
	mediaRepo port.MediaRepository
	weekRepo  port.WeekRepository
	storage   port.ObjectStorage
	cfg       *config.S3Config
}

// NewMediaService creates a new MediaService implementation.
func NewMediaService(
	mediaRepo port.MediaRepository,
	weekRepo port.WeekRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) MediaService {
	return &mediaService{
		mediaRepo: mediaRepo,
		weekRepo:  weekRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (s *mediaService) Upload(ctx context.Context, input MediaUploadInput) (*domain.MediaAttachment, error) {
	if _, err := s.weekRepo.GetByID(ctx, input.TenantID, input.WeekID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	mediaType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedMediaType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrMediaTooLarge
	}

	// Sniff the first 512 bytes so a renamed file cannot spoof its type.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedMediaType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	mediaID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/weeks/%s/%s/%s", input.TenantID, input.WeekID, mediaID, input.Header.Filename)
	contentType := domain.AllowedMediaTypes[mediaType]

	media := &domain.MediaAttachment{
		ID:           mediaID,
		TenantID:     input.TenantID,
		WeekID:       input.WeekID,
		UploadedBy:   input.UploadedBy,
		FileName:     mediaID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     mediaType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.MediaStatusPending,
	}

	log.Printf("mediaService.Upload: uploading %s (%s, %d bytes) for week %s by user %s",
		input.Header.Filename, contentType, input.Header.Size, input.WeekID, input.UploadedBy)

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		log.Printf("mediaService.Upload: failed to create attachment metadata: %v", err)
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}

	if _, err := s.storage.Put(ctx, s3Key, input.File, contentType); err != nil {
		log.Printf("mediaService.Upload: S3 upload failed for attachment %s: %v", media.ID, err)
		_ = s.mediaRepo.UpdateStatus(ctx, media.TenantID, media.ID, domain.MediaStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.mediaRepo.UpdateStatus(ctx, media.TenantID, media.ID, domain.MediaStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating attachment status: %w", err)
	}
	media.Status = domain.MediaStatusUploaded

	return media, nil
}

func (s *mediaService) GetByID(ctx context.Context, tenantID, mediaID uuid.UUID) (*domain.MediaAttachment, error) {
	return s.mediaRepo.GetByID(ctx, tenantID, mediaID)
}

func (s *mediaService) ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.MediaAttachment, error) {
	return s.mediaRepo.ListByWeek(ctx, tenantID, weekID)
}

func (s *mediaService) GetDownloadURL(ctx context.Context, tenantID, mediaID uuid.UUID) (string, error) {
	media, err := s.mediaRepo.GetByID(ctx, tenantID, mediaID)
	if err != nil {
		return "", err
	}
	return s.storage.PresignGet(ctx, media.S3Key, time.Duration(s.cfg.PresignExpiry)*time.Second)
}

func (s *mediaService) Delete(ctx context.Context, tenantID, mediaID uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, tenantID, mediaID)
	if err != nil {
		return err
	}
	if err := s.storage.Remove(ctx, media.S3Key); err != nil {
		log.Printf("mediaService.Delete: S3 delete failed for attachment %s: %v", mediaID, err)
	}
	return s.mediaRepo.Delete(ctx, tenantID, mediaID)
}
