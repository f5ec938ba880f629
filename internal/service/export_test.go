package service

import (
	"context"

	"github.com/google/uuid"

	"sentrydesk/internal/domain"
)

// Exported for white-box tests in package service_test.
var GroupByTenant = groupByTenant

func (w *DigestWorker) SendTenantDigest(ctx context.Context, tenantID uuid.UUID, reports []domain.DailyReport) {
	w.sendTenantDigest(ctx, tenantID, reports)
}
