package repository

import (
	"context"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// currencyRepo is the concrete implementation of CurrencyRepository
type currencyRepo struct {
	db *database.DB
}

// NewCurrencyRepo creates a new currency repository over a tenant database
func NewCurrencyRepo(db *database.DB) CurrencyRepository {
	return &currencyRepo{db: db}
}

// ListVisible retrieves the currencies shown in the client app, cheapest
// burning weight first
func (r *currencyRepo) ListVisible(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT name, exchange_rate, burning_weight, staffx_order, clientx_order
		FROM currencies
		WHERE show_in_clientx = '1'
		ORDER BY burning_weight ASC
	`

	var currencies []models.Currency
	if err := r.db.SelectContext(ctx, &currencies, query); err != nil {
		return nil, err
	}
	return currencies, nil
}
