package port

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
)

// MediaRepository defines the contract for attachment metadata persistence.
type MediaRepository interface {
	Create(ctx context.Context, media *domain.MediaAttachment) error
	GetByID(ctx context.Context, tenantID, mediaID uuid.UUID) (*domain.MediaAttachment, error)
	ListByWeek(ctx context.Context, tenantID, weekID uuid.UUID) ([]domain.MediaAttachment, error)
	UpdateStatus(ctx context.Context, tenantID, mediaID uuid.UUID, status domain.MediaStatus) error
	Delete(ctx context.Context, tenantID, mediaID uuid.UUID) error
}
