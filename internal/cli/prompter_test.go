package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/onboarding-qr-generator/internal/models"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadSlug(t *testing.T) {
	p, _ := newTestPrompter("summerfest\n")
	slug, err := p.ReadSlug()
	if err != nil {
		t.Fatalf("ReadSlug failed: %v", err)
	}
	if slug != "summerfest" {
		t.Errorf("slug = %q", slug)
	}
}

func TestReadSlugRejectsEmpty(t *testing.T) {
	p, out := newTestPrompter("\n  \nsummerfest\n")
	slug, err := p.ReadSlug()
	if err != nil {
		t.Fatalf("ReadSlug failed: %v", err)
	}
	if slug != "summerfest" {
		t.Errorf("slug = %q", slug)
	}
	if !strings.Contains(out.String(), "mag niet leeg") {
		t.Error("expected re-prompt message")
	}
}

func TestChooseTenant(t *testing.T) {
	matches := []models.Tenant{
		{TenantID: "summerfest", Domain: "summerfest.be"},
		{TenantID: "summercamp", Domain: "summercamp.com"},
	}

	tests := []struct {
		name       string
		input      string
		wantID     string
		wantManual bool
		wantErr    error
	}{
		{name: "pick second", input: "2\n", wantID: "summercamp"},
		{name: "manual entry", input: "9\n", wantManual: true},
		{name: "cancel", input: "0\n", wantErr: ErrCancelled},
		{name: "invalid then valid", input: "7\nx\n1\n", wantID: "summerfest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			tenant, manual, err := p.ChooseTenant(matches)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChooseTenant failed: %v", err)
			}
			if manual != tt.wantManual {
				t.Errorf("manual = %v, want %v", manual, tt.wantManual)
			}
			if tt.wantID != "" && (tenant == nil || tenant.TenantID != tt.wantID) {
				t.Errorf("tenant = %+v, want %s", tenant, tt.wantID)
			}
		})
	}
}

func TestChooseTenantCapsMenu(t *testing.T) {
	matches := make([]models.Tenant, 14)
	for i := range matches {
		matches[i] = models.Tenant{TenantID: "tenant", Domain: "tenant.com"}
	}

	p, out := newTestPrompter("1\n")
	if _, _, err := p.ChooseTenant(matches); err != nil {
		t.Fatalf("ChooseTenant failed: %v", err)
	}
	if !strings.Contains(out.String(), "14 tenants gevonden") {
		t.Error("expected cap notice for long match list")
	}
	if strings.Contains(out.String(), "  11 - ") {
		t.Error("menu should stop at 10 entries")
	}
}

func TestManualTenant(t *testing.T) {
	t.Run("defaults from slug", func(t *testing.T) {
		p, _ := newTestPrompter("\n\n")
		tenant, err := p.ManualTenant("summerfest")
		if err != nil {
			t.Fatalf("ManualTenant failed: %v", err)
		}
		if tenant.TenantID != "summerfest" || tenant.Domain != "summerfest.com" {
			t.Errorf("tenant = %+v", tenant)
		}
		if !tenant.Manual {
			t.Error("manual flag not set")
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		p, _ := newTestPrompter("fest2025\nfest2025.be\n")
		tenant, err := p.ManualTenant("summerfest")
		if err != nil {
			t.Fatalf("ManualTenant failed: %v", err)
		}
		if tenant.TenantID != "fest2025" || tenant.Domain != "fest2025.be" {
			t.Errorf("tenant = %+v", tenant)
		}
	})
}

func TestChooseTemplate(t *testing.T) {
	tests := []struct {
		input string
		want  models.TemplateVariant
	}{
		{"1\n", models.TemplateApplication},
		{"\n", models.TemplateApplication},
		{"2\n", models.TemplateGuest},
		{"x\n2\n", models.TemplateGuest},
	}
	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		got, err := p.ChooseTemplate()
		if err != nil {
			t.Fatalf("ChooseTemplate(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ChooseTemplate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWhatsAppURL(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		p, _ := newTestPrompter("n\n")
		url, err := p.WhatsAppURL()
		if err != nil {
			t.Fatalf("WhatsAppURL failed: %v", err)
		}
		if url != "" {
			t.Errorf("url = %q, want empty", url)
		}
	})

	t.Run("invalid link re-prompts", func(t *testing.T) {
		p, out := newTestPrompter("j\nhttp://example.com\nhttps://chat.whatsapp.com/AbC123\n")
		url, err := p.WhatsAppURL()
		if err != nil {
			t.Fatalf("WhatsAppURL failed: %v", err)
		}
		if url != "https://chat.whatsapp.com/AbC123" {
			t.Errorf("url = %q", url)
		}
		if !strings.Contains(out.String(), "Geen geldige WhatsApp link") {
			t.Error("expected validation message")
		}
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"j\n", true},
		{"yes\n", true},
		{"nee\n", false},
		{"?\nn\n", false},
	}
	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		got, err := p.Confirm("Doorgaan?")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
