package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/onboarding-qr-generator/internal/config"
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/repository"
)

// HandoutService defines the interface for handout assembly and generation
type HandoutService interface {
	Load(ctx context.Context, tenant *models.Tenant, variant models.TemplateVariant, whatsappURL string) (*models.Handout, []models.MissingUser, error)
	Generate(handout *models.Handout) (*GenerateResult, error)
	WriteMissingUsers(missing []models.MissingUser) (string, error)
}

// DocumentRenderer draws an assembled handout into w and returns the number
// of pages produced.
type DocumentRenderer interface {
	Render(h *models.Handout, w io.Writer) (int, error)
}

// GenerateResult describes one finished document.
type GenerateResult struct {
	RunID string
	Path  string
	Pages int
}

// Services holds all service interfaces
type Services struct {
	Handout HandoutService
}

// NewServices creates all services. The central repositories resolve the
// refund window; the tenant repositories carry everything else.
func NewServices(central *repository.Central, repos *repository.Tenant, renderer DocumentRenderer, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Handout: newHandoutService(central, repos, renderer, cfg, log),
	}
}
