package mocks

import (
	"context"
	"strings"

	"github.com/onboarding-qr-generator/internal/models"
)

// MockTenantRepository is a mock implementation of TenantRepository
type MockTenantRepository struct {
	Tenants      map[string]*models.Tenant
	Refund       *models.RefundWindow
	FindErr      error
	RefundErr    error
	RefundCalls  int
	PartialCalls int
}

func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{
		Tenants: make(map[string]*models.Tenant),
	}
}

func (m *MockTenantRepository) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Tenants[slug], nil
}

func (m *MockTenantRepository) FindPartial(ctx context.Context, slug string) ([]models.Tenant, error) {
	m.PartialCalls++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.Tenant
	for _, t := range m.Tenants {
		if strings.Contains(t.TenantID, slug) || strings.Contains(t.Domain, slug) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *MockTenantRepository) RefundWindow(ctx context.Context, tenantID string) (*models.RefundWindow, error) {
	m.RefundCalls++
	if m.RefundErr != nil {
		return nil, m.RefundErr
	}
	return m.Refund, nil
}

// MockOnboardingRepository is a mock implementation of OnboardingRepository
type MockOnboardingRepository struct {
	Onboardings []models.Onboarding
	ListErr     error
	ListCalls   int
}

func (m *MockOnboardingRepository) ListActive(ctx context.Context) ([]models.Onboarding, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Onboardings, nil
}

// MockUserRepository is a mock implementation of UserRepository. Lookups
// match on substring the way the real LIKE query does.
type MockUserRepository struct {
	Users     []models.User
	FindErr   error
	FindCalls int
	Prefixes  []string
}

func (m *MockUserRepository) FindByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error) {
	m.FindCalls++
	m.Prefixes = append(m.Prefixes, prefix)
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.User
	for _, u := range m.Users {
		if strings.Contains(u.Email, prefix) {
			out = append(out, u)
		}
	}
	return out, nil
}

// MockCurrencyRepository is a mock implementation of CurrencyRepository
type MockCurrencyRepository struct {
	Currencies []models.Currency
	ListErr    error
}

func (m *MockCurrencyRepository) ListVisible(ctx context.Context) ([]models.Currency, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Currencies, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	Events  map[string]*models.Event
	FindErr error
	Names   []string
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		Events: make(map[string]*models.Event),
	}
}

func (m *MockEventRepository) FindByName(ctx context.Context, name string) (*models.Event, error) {
	m.Names = append(m.Names, name)
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Events[name], nil
}
