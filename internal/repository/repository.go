package repository

import (
	"context"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// TenantRepository defines lookups against the central database
type TenantRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	FindPartial(ctx context.Context, slug string) ([]models.Tenant, error)
	RefundWindow(ctx context.Context, tenantID string) (*models.RefundWindow, error)
}

// OnboardingRepository defines reads of a tenant's onboarding records
type OnboardingRepository interface {
	ListActive(ctx context.Context) ([]models.Onboarding, error)
}

// UserRepository defines the best-effort user lookup for the guest template
type UserRepository interface {
	FindByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error)
}

// CurrencyRepository defines reads of the tenant currency configuration
type CurrencyRepository interface {
	ListVisible(ctx context.Context) ([]models.Currency, error)
}

// EventRepository defines event schedule lookups
type EventRepository interface {
	FindByName(ctx context.Context, name string) (*models.Event, error)
}

// Central holds the repositories backed by the central database
type Central struct {
	Tenant TenantRepository
}

// NewCentral creates the central-database repositories
func NewCentral(db *database.DB) *Central {
	return &Central{
		Tenant: NewTenantRepo(db),
	}
}

// Tenant holds the repositories backed by one tenant-<id> database. They can
// only be constructed after the tenant has been resolved.
type Tenant struct {
	Onboarding OnboardingRepository
	User       UserRepository
	Currency   CurrencyRepository
	Event      EventRepository
}

// NewTenant creates the tenant-database repositories
func NewTenant(db *database.DB) *Tenant {
	return &Tenant{
		Onboarding: NewOnboardingRepo(db),
		User:       NewUserRepo(db),
		Currency:   NewCurrencyRepo(db),
		Event:      NewEventRepo(db),
	}
}
