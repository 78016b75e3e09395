package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// tenantRepo is the concrete implementation of TenantRepository
type tenantRepo struct {
	db *database.DB
}

// NewTenantRepo creates a new tenant repository over the central database
func NewTenantRepo(db *database.DB) TenantRepository {
	return &tenantRepo{db: db}
}

// FindBySlug retrieves the tenant whose tenant_id matches the slug exactly
func (r *tenantRepo) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	query := `SELECT tenant_id, domain FROM domains WHERE tenant_id = ?`

	var tenant models.Tenant
	err := r.db.GetContext(ctx, &tenant, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tenant, nil
}

// FindPartial retrieves tenants whose tenant_id or domain contains the slug,
// the fallback resolution strategy when no exact match exists
func (r *tenantRepo) FindPartial(ctx context.Context, slug string) ([]models.Tenant, error) {
	query := `
		SELECT tenant_id, domain FROM domains
		WHERE tenant_id LIKE ? OR domain LIKE ?
		ORDER BY tenant_id
	`
	pattern := "%" + slug + "%"

	var tenants []models.Tenant
	if err := r.db.SelectContext(ctx, &tenants, query, pattern, pattern); err != nil {
		return nil, err
	}
	return tenants, nil
}

// RefundWindow reads the refund scheduler settings from the tenants data JSON
func (r *tenantRepo) RefundWindow(ctx context.Context, tenantID string) (*models.RefundWindow, error) {
	query := `
		SELECT
			JSON_UNQUOTE(JSON_EXTRACT(data, '$.enable_refund_scheduler')) AS enabled,
			JSON_UNQUOTE(JSON_EXTRACT(data, '$.refund_start_datetime'))   AS refund_start,
			JSON_UNQUOTE(JSON_EXTRACT(data, '$.refund_end_datetime'))     AS refund_end
		FROM tenants
		WHERE id = ?
	`

	var row struct {
		Enabled sql.NullString `db:"enabled"`
		Start   sql.NullString `db:"refund_start"`
		End     sql.NullString `db:"refund_end"`
	}
	err := r.db.GetContext(ctx, &row, query, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.RefundWindow{
		Enabled: row.Enabled.String == "true",
		Start:   formatRefundTime(row.Start.String),
		End:     formatRefundTime(row.End.String),
	}, nil
}

// formatRefundTime renders an ISO timestamp as DD-MM-YYYY HH:MM with the +2h
// display adjustment; unparseable values pass through untouched.
func formatRefundTime(raw string) string {
	if raw == "" || raw == "null" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Add(2 * time.Hour).Format("02-01-2006 15:04")
}
