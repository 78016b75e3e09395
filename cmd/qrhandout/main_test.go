package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/onboarding-qr-generator/internal/cli"
	"github.com/onboarding-qr-generator/internal/models"
)

func TestCollectOptionsRefusesWithoutDatabase(t *testing.T) {
	var out bytes.Buffer
	prompter := cli.New(strings.NewReader("2\nj\nhttps://wa.me/32470123456\n"), &out)

	_, _, err := collectOptions(prompter, false, "", "")
	if err == nil {
		t.Fatal("expected error when database is unreachable")
	}
	if out.Len() != 0 {
		t.Errorf("prompts were shown before refusing: %q", out.String())
	}
}

func TestCollectOptionsFromFlags(t *testing.T) {
	var out bytes.Buffer
	prompter := cli.New(strings.NewReader(""), &out)

	variant, url, err := collectOptions(prompter, true, "guest", "https://wa.me/32470123456")
	if err != nil {
		t.Fatalf("collectOptions failed: %v", err)
	}
	if variant != models.TemplateGuest {
		t.Errorf("variant = %q, want guest", variant)
	}
	if url != "https://wa.me/32470123456" {
		t.Errorf("url = %q", url)
	}
	if out.Len() != 0 {
		t.Errorf("flags should skip prompts, got %q", out.String())
	}
}

func TestCollectOptionsPrompts(t *testing.T) {
	var out bytes.Buffer
	prompter := cli.New(strings.NewReader("1\nn\n"), &out)

	variant, url, err := collectOptions(prompter, true, "", "")
	if err != nil {
		t.Fatalf("collectOptions failed: %v", err)
	}
	if variant != models.TemplateApplication {
		t.Errorf("variant = %q, want application", variant)
	}
	if url != "" {
		t.Errorf("url = %q, want empty", url)
	}
}

func TestResolveTemplateRejectsUnknown(t *testing.T) {
	prompter := cli.New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := resolveTemplate(prompter, "poster"); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestResolveWhatsAppRejectsInvalidFlag(t *testing.T) {
	prompter := cli.New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := resolveWhatsApp(prompter, "https://example.com/group"); err == nil {
		t.Error("expected error for non-WhatsApp link")
	}
}
