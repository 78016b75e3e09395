// Package cli implements the interactive terminal flow that resolves the
// tenant, template and WhatsApp settings for one generation run.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/onboarding-qr-generator/internal/identity"
	"github.com/onboarding-qr-generator/internal/models"
)

// menuLimit caps how many partial matches the tenant menu shows.
const menuLimit = 10

// ErrCancelled is returned when the operator aborts a prompt.
var ErrCancelled = fmt.Errorf("cancelled by operator")

// Prompter runs interactive prompts over a reader/writer pair, normally
// stdin/stdout.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// readLine reads one trimmed input line.
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ReadSlug asks for the tenant slug to search on.
func (p *Prompter) ReadSlug() (string, error) {
	for {
		p.printf("Tenant slug (of deel ervan): ")
		slug, err := p.readLine()
		if err != nil {
			return "", err
		}
		if slug != "" {
			return slug, nil
		}
		p.printf("Slug mag niet leeg zijn.\n")
	}
}

// ChooseTenant presents the partial matches and returns the chosen tenant.
// manual is true when the operator wants to enter the tenant by hand.
func (p *Prompter) ChooseTenant(matches []models.Tenant) (tenant *models.Tenant, manual bool, err error) {
	if len(matches) > menuLimit {
		p.printf("%d tenants gevonden; alleen de eerste %d worden getoond.\n", len(matches), menuLimit)
		matches = matches[:menuLimit]
	}

	p.printf("\nGevonden tenants:\n")
	for i, t := range matches {
		p.printf("  %d - %s (%s)\n", i+1, t.TenantID, t.Domain)
	}
	p.printf("  9 - Handmatige invoer\n")
	p.printf("  0 - Annuleren\n")

	for {
		p.printf("Keuze: ")
		choice, err := p.readLine()
		if err != nil {
			return nil, false, err
		}
		switch choice {
		case "0":
			return nil, false, ErrCancelled
		case "9":
			return nil, true, nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(matches) {
			p.printf("Ongeldige keuze.\n")
			continue
		}
		t := matches[n-1]
		return &t, false, nil
	}
}

// ManualTenant collects a tenant definition by hand, suggesting slug.com as
// the domain.
func (p *Prompter) ManualTenant(slug string) (*models.Tenant, error) {
	p.printf("Tenant ID [%s]: ", slug)
	id, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = slug
	}

	suggested := id + ".com"
	p.printf("Domein [%s]: ", suggested)
	domain, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if domain == "" {
		domain = suggested
	}

	return &models.Tenant{TenantID: id, Domain: domain, Manual: true}, nil
}

// ChooseTemplate asks which handout variant to generate.
func (p *Prompter) ChooseTemplate() (models.TemplateVariant, error) {
	p.printf("\nTemplate:\n")
	p.printf("  1 - Application (kassa toestellen)\n")
	p.printf("  2 - Guest (persoonlijke QR paren)\n")

	for {
		p.printf("Keuze [1]: ")
		choice, err := p.readLine()
		if err != nil {
			return "", err
		}
		switch choice {
		case "", "1":
			return models.TemplateApplication, nil
		case "2":
			return models.TemplateGuest, nil
		}
		p.printf("Ongeldige keuze.\n")
	}
}

// WhatsAppURL asks whether a support group exists and validates its link.
// An empty string means no badge will be rendered.
func (p *Prompter) WhatsAppURL() (string, error) {
	for {
		p.printf("\nWhatsApp support groep toevoegen? (j/n): ")
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		switch strings.ToLower(answer) {
		case "n", "nee", "no":
			return "", nil
		case "j", "ja", "y", "yes":
			return p.readWhatsAppURL()
		}
		p.printf("Antwoord met j of n.\n")
	}
}

func (p *Prompter) readWhatsAppURL() (string, error) {
	for {
		p.printf("WhatsApp groep link: ")
		url, err := p.readLine()
		if err != nil {
			return "", err
		}
		if identity.ValidWhatsAppURL(url) {
			return url, nil
		}
		p.printf("Geen geldige WhatsApp link (verwacht https://chat.whatsapp.com/... of https://wa.me/...).\n")
	}
}

// Confirm asks a yes/no question, returning true for yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		p.printf("%s (j/n): ", question)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "j", "ja", "y", "yes":
			return true, nil
		case "n", "nee", "no":
			return false, nil
		}
		p.printf("Antwoord met j of n.\n")
	}
}
