package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onboarding-qr-generator/internal/cli"
	"github.com/onboarding-qr-generator/internal/config"
	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/identity"
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/pdf"
	"github.com/onboarding-qr-generator/internal/repository"
	"github.com/onboarding-qr-generator/internal/service"
	"github.com/onboarding-qr-generator/pkg/logger"
)

func main() {
	slugFlag := flag.String("slug", "", "tenant slug (skips the slug prompt)")
	templateFlag := flag.String("template", "", "template variant: application or guest")
	whatsappFlag := flag.String("whatsapp", "", "WhatsApp support group link")
	outputFlag := flag.String("output", "", "output directory (overrides OUTPUT_DIR)")
	flag.Parse()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting onboarding QR handout generator...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *outputFlag != "" {
		cfg.Output.Dir = *outputFlag
	}

	// Rebuild the logger with the configured level and format
	log = logger.NewWithOptions(cfg.Log.Level, cfg.Log.Format)

	prompter := cli.New(os.Stdin, os.Stdout)
	ctx := context.Background()

	// Network check before any SQL; the operator may continue with a manual
	// tenant even when the database is unreachable.
	dbReachable := true
	if err := database.Probe(&cfg.Database, log); err != nil {
		log.Warn().Err(err).Msg("Database server unreachable")
		cont, perr := prompter.Confirm("Database niet bereikbaar. Doorgaan met handmatige invoer?")
		if perr != nil || !cont {
			log.Fatal().Msg("Aborted: database unreachable")
		}
		dbReachable = false
	}

	var central *repository.Central
	if dbReachable {
		centralDB, err := database.Connect(&cfg.Database, cfg.Database.CentralName, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to central database")
		}
		defer centralDB.Close()
		central = repository.NewCentral(centralDB)
	}

	tenant, err := resolveTenant(ctx, prompter, central, *slugFlag)
	if err != nil {
		if err == cli.ErrCancelled {
			log.Info().Msg("Cancelled")
			return
		}
		log.Fatal().Err(err).Msg("Failed to resolve tenant")
	}
	log.Info().Str("tenant", tenant.TenantID).Str("domain", tenant.Domain).Msg("Tenant resolved")

	variant, whatsappURL, err := collectOptions(prompter, dbReachable, *templateFlag, *whatsappFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot start generation")
	}

	// The tenant's own database carries the onboarding data
	tenantDB, err := database.Connect(&cfg.Database, cfg.Database.TenantDatabase(tenant.TenantID), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to tenant database")
	}
	defer tenantDB.Close()

	repos := repository.NewTenant(tenantDB)
	renderer := pdf.New(manualImagePath(cfg), log)
	services := service.NewServices(central, repos, renderer, cfg, log)

	handout, missing, err := services.Handout.Load(ctx, tenant, variant, whatsappURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to assemble handout")
	}

	if path, err := services.Handout.WriteMissingUsers(missing); err != nil {
		log.Error().Err(err).Msg("Failed to write missing users file")
	} else if path != "" {
		fmt.Printf("Missing users import: %s (%d rijen)\n", path, len(missing))
	}

	result, err := services.Handout.Generate(handout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate handout")
	}

	fmt.Printf("Klaar: %s (%d pagina's)\n", result.Path, result.Pages)
}

// resolveTenant finds the tenant by exact slug, partial match menu or manual
// entry, in that order.
func resolveTenant(ctx context.Context, prompter *cli.Prompter, central *repository.Central, slug string) (*models.Tenant, error) {
	var err error
	if slug == "" {
		slug, err = prompter.ReadSlug()
		if err != nil {
			return nil, err
		}
	}

	if central == nil {
		return prompter.ManualTenant(slug)
	}

	tenant, err := central.Tenant.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("tenant lookup failed: %w", err)
	}
	if tenant != nil {
		return tenant, nil
	}

	matches, err := central.Tenant.FindPartial(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("tenant search failed: %w", err)
	}
	if len(matches) == 0 {
		return prompter.ManualTenant(slug)
	}

	tenant, manual, err := prompter.ChooseTenant(matches)
	if err != nil {
		return nil, err
	}
	if manual {
		return prompter.ManualTenant(slug)
	}
	return tenant, nil
}

// collectOptions gathers the template and WhatsApp settings for the run. It
// refuses up front when the database is unreachable, so the operator is not
// walked through prompts for a generation that cannot start.
func collectOptions(prompter *cli.Prompter, dbReachable bool, templateFlag, whatsappFlag string) (models.TemplateVariant, string, error) {
	if !dbReachable {
		return "", "", fmt.Errorf("generation needs the tenant database; reconnect and retry")
	}

	variant, err := resolveTemplate(prompter, templateFlag)
	if err != nil {
		return "", "", err
	}
	whatsappURL, err := resolveWhatsApp(prompter, whatsappFlag)
	if err != nil {
		return "", "", err
	}
	return variant, whatsappURL, nil
}

func resolveTemplate(prompter *cli.Prompter, value string) (models.TemplateVariant, error) {
	switch value {
	case "":
		return prompter.ChooseTemplate()
	case string(models.TemplateApplication):
		return models.TemplateApplication, nil
	case string(models.TemplateGuest):
		return models.TemplateGuest, nil
	default:
		return "", fmt.Errorf("unknown template %q (want application or guest)", value)
	}
}

func resolveWhatsApp(prompter *cli.Prompter, value string) (string, error) {
	if value == "" {
		return prompter.WhatsAppURL()
	}
	if !identity.ValidWhatsAppURL(value) {
		return "", fmt.Errorf("invalid WhatsApp link %q", value)
	}
	return value, nil
}

func manualImagePath(cfg *config.Config) string {
	return filepath.Join(cfg.Output.AssetsDir, cfg.Output.TopUpManualImage)
}
