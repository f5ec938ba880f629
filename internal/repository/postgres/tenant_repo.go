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

type tenantRepo struct {
	db *sqlx.DB
}

// NewTenantRepo creates a new PostgreSQL-backed TenantRepository.
func NewTenantRepo(db *sqlx.DB) port.TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	tenant.ID = uuid.New()
	now := time.Now().UTC()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO tenants (id, name, slug, is_active, created_at, updated_at)
		VALUES (:id, :name, :slug, :is_active, :created_at, :updated_at)`, tenant)
	if isUniqueViolation(err, "slug") {
		return domain.ErrDuplicateTenantSlug
	}
	if err != nil {
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}
	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return r.getOne(ctx, "tenantRepo.GetByID", "SELECT * FROM tenants WHERE id = $1", id)
}

func (r *tenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getOne(ctx, "tenantRepo.GetBySlug", "SELECT * FROM tenants WHERE slug = $1", slug)
}

func (r *tenantRepo) getOne(ctx context.Context, op, query string, arg interface{}) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.db.GetContext(ctx, &tenant, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tenant, nil
}

func (r *tenantRepo) List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tenants"); err != nil {
		return nil, 0, fmt.Errorf("tenantRepo.List count: %w", err)
	}

	tenants := []domain.Tenant{}
	err := r.db.SelectContext(ctx, &tenants,
		"SELECT * FROM tenants ORDER BY name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("tenantRepo.List: %w", err)
	}
	return tenants, total, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.UpdatedAt = time.Now().UTC()

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE tenants
		SET name = :name, slug = :slug, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`, tenant)
	if isUniqueViolation(err, "slug") {
		return domain.ErrDuplicateTenantSlug
	}
	if err != nil {
		return fmt.Errorf("tenantRepo.Update: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tenants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("tenantRepo.Delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
