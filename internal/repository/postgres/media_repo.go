package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sentrydesk/internal/domain"
	"sentrydesk/internal/port"
)

type mediaRepo struct {
	db *sqlx.DB
}

// NewMediaRepo creates a new PostgreSQL-backed MediaRepository.
func NewMediaRepo(db *sqlx.DB) port.MediaRepository {
	return &mediaRepo{db: db}
}

// Create persists attachment metadata. The ID is assigned by the caller
// when it is already baked into the object key; otherwise a new one is
// generated here.
func (r *mediaRepo) Create(ctx context.Context, media *domain.MediaAttachment) error {
	if media.ID == uuid.Nil {
		media.ID = uuid.New()
	}
	now := time.Now().UTC()
	media.CreatedAt = now
	media.UpdatedAt = now

	query := `INSERT INTO media_attachments (
			id, tenant_id, week_id, uploaded_by,
			file_name, original_name, file_type, file_size,
			s3_bucket, s3_key, content_type, status,
			created_at, updated_at
		) VALUES (
			:id, :tenant_id, :week_id, :uploaded_by,
			:file_name, :original_name, :file_type, :file_size,
			:s3_bucket, :s3_key, :content_type, :status,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, media)
	if err != nil {
		return fmt.Errorf("mediaRepo.Create: %w", err)
	}
	return nil
}

func (r *mediaRepo) GetByID(ctx context.Context, tenantID, mediaID uuid.UUID) (*domain.MediaAttachment, error) {
	var media domain.MediaAttachment
	err := r.db.GetContext(ctx, &media,
		"SELECT * FROM media_attachments WHERE id = $1 AND tenant_id = $2 AND status != $3",
		mediaID, tenantID, domain.MediaStatusDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMediaNotFound
		}
		return nil, fmt.Errorf("mediaRepo.GetByID: %w", err)
	}
	return &media, nil
}

func (r *mediaRepo) ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.MediaAttachment, error) {
	var attachments []domain.MediaAttachment
	err := r.db.SelectContext(ctx, &attachments,
		`SELECT * FROM media_attachments
		WHERE tenant_id = $1 AND week_id = $2 AND status != $3
		ORDER BY created_at DESC`,
		tenantID, weekID, domain.MediaStatusDeleted)
	if err != nil {
		return nil, fmt.Errorf("mediaRepo.ListByWeek: %w", err)
	}
	return attachments, nil
}

func (r *mediaRepo) UpdateStatus(ctx context.Context, tenantID, mediaID uuid.UUID, status domain.MediaStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE media_attachments SET status = $1, updated_at = $2 WHERE id = $3 AND tenant_id = $4",
		status, time.Now().UTC(), mediaID, tenantID)
	if err != nil {
		return fmt.Errorf("mediaRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}

// Delete is a soft delete so the object storage cleanup can run later.
func (r *mediaRepo) Delete(ctx context.Context, tenantID, mediaID uuid.UUID) error {
	return r.UpdateStatus(ctx, tenantID, mediaID, domain.MediaStatusDeleted)
}
