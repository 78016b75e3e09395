package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/onboarding-qr-generator/internal/config"
	"github.com/onboarding-qr-generator/internal/identity"
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/repository"
)

// handoutService is the concrete implementation of HandoutService
type handoutService struct {
	central  *repository.Central
	repos    *repository.Tenant
	renderer DocumentRenderer
	cfg      *config.Config
	log      zerolog.Logger
}

// newHandoutService creates a new HandoutService
func newHandoutService(central *repository.Central, repos *repository.Tenant, renderer DocumentRenderer, cfg *config.Config, log zerolog.Logger) *handoutService {
	return &handoutService{
		central:  central,
		repos:    repos,
		renderer: renderer,
		cfg:      cfg,
		log:      log.With().Str("service", "handout").Logger(),
	}
}

// Load assembles everything one document needs: the tenant's active
// onboardings, the currency table, the event schedule, the refund window and,
// for the guest template, the matched platform users. Missing supporting data
// degrades to an absent section; only the onboarding read itself is fatal.
func (s *handoutService) Load(ctx context.Context, tenant *models.Tenant, variant models.TemplateVariant, whatsappURL string) (*models.Handout, []models.MissingUser, error) {
	s.log.Info().
		Str("tenant", tenant.TenantID).
		Str("template", string(variant)).
		Msg("Assembling handout")

	onboardings, err := s.repos.Onboarding.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load onboardings: %w", err)
	}
	if len(onboardings) == 0 {
		return nil, nil, fmt.Errorf("no active onboardings found for tenant %s", tenant.TenantID)
	}
	s.log.Info().Int("count", len(onboardings)).Msg("Loaded onboardings")

	h := &models.Handout{
		Tenant:      tenant,
		Variant:     variant,
		Onboardings: onboardings,
		Users:       make(map[string]*models.User),
		WhatsAppURL: whatsappURL,
		GeneratedAt: time.Now(),
	}

	if currencies, err := s.repos.Currency.ListVisible(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Currency lookup failed; section will be omitted")
	} else {
		h.Currencies = currencies
	}

	if name := firstEventName(onboardings); name != "" {
		if event, err := s.repos.Event.FindByName(ctx, name); err != nil {
			s.log.Warn().Err(err).Str("event", name).Msg("Event lookup failed; schedule will be omitted")
		} else {
			h.Event = event
		}
	}

	if refund, err := s.central.Tenant.RefundWindow(ctx, tenant.TenantID); err != nil {
		s.log.Warn().Err(err).Msg("Refund window lookup failed; refund info will be omitted")
	} else {
		h.Refund = refund
	}

	var missing []models.MissingUser
	if variant == models.TemplateGuest {
		missing = s.matchUsers(ctx, h)
	}

	return h, missing, nil
}

// matchUsers resolves the platform user behind each onboarding by deriving
// the candidate email from the onboarding name and searching on its local
// part. Unmatched onboardings come back as import rows.
func (s *handoutService) matchUsers(ctx context.Context, h *models.Handout) []models.MissingUser {
	var missing []models.MissingUser

	for i := range h.Onboardings {
		ob := &h.Onboardings[i]
		first, last := identity.ParseOnboardingName(ob.Name)
		email := identity.DeriveEmail(first, last, h.Tenant.Domain)
		prefix := identity.LocalPart(email)
		if prefix == "" {
			s.log.Warn().Str("onboarding", ob.Name).Msg("Could not derive an email; marked missing")
			missing = append(missing, models.MissingUser{FirstName: first, LastName: last, Email: email})
			continue
		}

		users, err := s.repos.User.FindByEmailPrefix(ctx, prefix)
		if err != nil {
			s.log.Warn().Err(err).Str("onboarding", ob.Name).Msg("User lookup failed; marked missing")
			missing = append(missing, models.MissingUser{FirstName: first, LastName: last, Email: email})
			continue
		}
		if len(users) == 0 {
			s.log.Debug().
				Str("onboarding", ob.Name).
				Str("email", email).
				Msg("No matching user")
			missing = append(missing, models.MissingUser{FirstName: first, LastName: last, Email: email})
			continue
		}

		// First match wins; the lookup orders by email
		user := users[0]
		h.Users[ob.Name] = &user
	}

	s.log.Info().
		Int("matched", len(h.Users)).
		Int("missing", len(missing)).
		Msg("User matching completed")

	return missing
}

// Generate renders the handout to its output file.
func (s *handoutService) Generate(h *models.Handout) (*GenerateResult, error) {
	runID := uuid.New().String()
	log := s.log.With().Str("run_id", runID).Logger()

	if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.cfg.Output.Dir, handoutFilename(h))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	pages, err := s.renderer.Render(h, f)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("pages", pages).
		Int("onboardings", len(h.Onboardings)).
		Msg("Handout generated")

	return &GenerateResult{RunID: runID, Path: path, Pages: pages}, nil
}

// WriteMissingUsers writes the import CSV for onboardings with no matching
// user. Nothing is written when every onboarding matched; the returned path
// is empty in that case.
func (s *handoutService) WriteMissingUsers(missing []models.MissingUser) (string, error) {
	if len(missing) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.MissingUsersFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create missing users file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"firstname", "lastname", "email"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, m := range missing {
		if err := writer.Write([]string{m.FirstName, m.LastName, m.Email}); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	s.log.Info().Int("count", len(missing)).Str("path", path).Msg("Missing users file written")
	return path, nil
}

// handoutFilename builds the output name for one tenant run.
func handoutFilename(h *models.Handout) string {
	kind := "app"
	if h.Variant == models.TemplateGuest {
		kind = "guest"
	}
	return fmt.Sprintf("onboarding_%s_%s_all.pdf", kind, h.Tenant.TenantID)
}

// firstEventName returns the event name carried by the onboarding rows.
func firstEventName(onboardings []models.Onboarding) string {
	for i := range onboardings {
		if onboardings[i].EventName.Valid && onboardings[i].EventName.String != "" {
			return onboardings[i].EventName.String
		}
	}
	return ""
}
