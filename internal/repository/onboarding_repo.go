package repository

import (
	"context"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// onboardingRepo is the concrete implementation of OnboardingRepository
type onboardingRepo struct {
	db *database.DB
}

// NewOnboardingRepo creates a new onboarding repository over a tenant database
func NewOnboardingRepo(db *database.DB) OnboardingRepository {
	return &onboardingRepo{db: db}
}

// ListActive retrieves all non-deleted onboardings with their location, sale
// catalogue and event names, plus role and payment-method lists derived from
// the role rights JSON.
func (r *onboardingRepo) ListActive(ctx context.Context) ([]models.Onboarding, error) {
	query := `
		SELECT
			o.name AS onboarding_name,
			o.qr_code,
			l.name AS location_name,
			s.name AS sales_name,
			e.name AS event_name,
			TRIM(BOTH ', ' FROM CONCAT(
				CASE WHEN JSON_EXTRACT(r.rights, '$.top_up') = true THEN 'top_up, ' ELSE '' END,
				CASE WHEN JSON_EXTRACT(r.rights, '$.sales_manager') = true THEN 'sales, ' ELSE '' END,
				CASE WHEN JSON_EXTRACT(r.rights, '$.entrance') = true THEN 'entrance, ' ELSE '' END
			)) AS roles,
			CASE
				WHEN JSON_EXTRACT(r.rights, '$.sales_manager') = true OR JSON_EXTRACT(r.rights, '$.top_up') = true THEN
					TRIM(BOTH ', ' FROM CONCAT(
						CASE WHEN JSON_EXTRACT(r.rights, '$.card_transactions') = true THEN 'CARD, ' ELSE '' END,
						CASE WHEN JSON_EXTRACT(r.rights, '$.cash_transactions') = true THEN 'CASH, ' ELSE '' END,
						CASE WHEN JSON_EXTRACT(r.rights, '$.qr_transactions') = true THEN 'QR, ' ELSE '' END,
						CASE WHEN JSON_EXTRACT(r.rights, '$.rfid_transactions') = true THEN 'RFID, ' ELSE '' END
					))
				ELSE ''
			END AS payment_methods
		FROM onboardings o
		LEFT JOIN locations l ON o.location_id = l.id
		LEFT JOIN sale_catalogues s ON o.sale_catalogue_id = s.id
		LEFT JOIN events e ON o.event_id = e.id
		LEFT JOIN roleables rbl
			ON rbl.roleable_type = 'App\\Models\\Tenant\\Onboarding'
			AND rbl.roleable_id = o.id
		LEFT JOIN roles r
			ON rbl.role_id = r.id AND r.deleted_at IS NULL AND JSON_VALID(r.rights) = 1
		WHERE o.deleted_at IS NULL
	`

	var onboardings []models.Onboarding
	if err := r.db.SelectContext(ctx, &onboardings, query); err != nil {
		return nil, err
	}
	return onboardings, nil
}
