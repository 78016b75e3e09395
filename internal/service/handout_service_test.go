package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/onboarding-qr-generator/internal/config"
	"github.com/onboarding-qr-generator/internal/mocks"
	"github.com/onboarding-qr-generator/internal/models"
	"github.com/onboarding-qr-generator/internal/repository"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Output: config.OutputConfig{
			Dir:              dir,
			AssetsDir:        filepath.Join(dir, "assets"),
			TopUpManualImage: "TOPUPMANUAL.png",
			MissingUsersFile: "missing_users_import.csv",
		},
	}
}

type testRepos struct {
	tenant     *mocks.MockTenantRepository
	onboarding *mocks.MockOnboardingRepository
	user       *mocks.MockUserRepository
	currency   *mocks.MockCurrencyRepository
	event      *mocks.MockEventRepository
}

func newTestService(t *testing.T) (*handoutService, *testRepos, *mocks.MockRenderer) {
	t.Helper()
	r := &testRepos{
		tenant:     mocks.NewMockTenantRepository(),
		onboarding: &mocks.MockOnboardingRepository{},
		user:       &mocks.MockUserRepository{},
		currency:   &mocks.MockCurrencyRepository{},
		event:      mocks.NewMockEventRepository(),
	}
	renderer := &mocks.MockRenderer{Pages: 2}

	central := &repository.Central{Tenant: r.tenant}
	tenant := &repository.Tenant{
		Onboarding: r.onboarding,
		User:       r.user,
		Currency:   r.currency,
		Event:      r.event,
	}
	svc := newHandoutService(central, tenant, renderer, testConfig(t), zerolog.Nop())
	return svc, r, renderer
}

func testTenant() *models.Tenant {
	return &models.Tenant{TenantID: "summerfest", Domain: "summerfest.be"}
}

func TestLoadNoOnboardings(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Load(context.Background(), testTenant(), models.TemplateApplication, "")
	if err == nil {
		t.Fatal("expected error for tenant without onboardings")
	}
}

func TestLoadOnboardingError(t *testing.T) {
	svc, repos, _ := newTestService(t)
	repos.onboarding.ListErr = errors.New("connection lost")

	_, _, err := svc.Load(context.Background(), testTenant(), models.TemplateApplication, "")
	if err == nil || !strings.Contains(err.Error(), "failed to load onboardings") {
		t.Fatalf("expected onboarding load error, got %v", err)
	}
}

func TestLoadApplication(t *testing.T) {
	svc, repos, _ := newTestService(t)
	repos.onboarding.Onboardings = []models.Onboarding{
		{Name: "Kassa 1", QRCode: "qr-1", EventName: ns("Summer Fest"), Roles: ns("sales")},
	}
	repos.currency.Currencies = []models.Currency{{Name: "Token", ExchangeRate: 2.5}}
	repos.event.Events["Summer Fest"] = &models.Event{Name: "Summer Fest"}
	repos.tenant.Refund = &models.RefundWindow{Enabled: true, Start: "01-07-2025 10:00"}

	h, missing, err := svc.Load(context.Background(), testTenant(), models.TemplateApplication, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Onboardings) != 1 {
		t.Errorf("onboardings = %d, want 1", len(h.Onboardings))
	}
	if len(h.Currencies) != 1 {
		t.Errorf("currencies = %d, want 1", len(h.Currencies))
	}
	if h.Event == nil || h.Event.Name != "Summer Fest" {
		t.Errorf("event not resolved: %+v", h.Event)
	}
	if h.Refund == nil || !h.Refund.Enabled {
		t.Errorf("refund window not resolved: %+v", h.Refund)
	}
	// Application template never matches users
	if missing != nil {
		t.Errorf("missing = %v, want nil", missing)
	}
	if repos.user.FindCalls != 0 {
		t.Errorf("user lookups = %d, want 0", repos.user.FindCalls)
	}
}

func TestLoadSupportingDataDegrades(t *testing.T) {
	svc, repos, _ := newTestService(t)
	repos.onboarding.Onboardings = []models.Onboarding{
		{Name: "Kassa 1", QRCode: "qr-1", EventName: ns("Summer Fest")},
	}
	repos.currency.ListErr = errors.New("table missing")
	repos.event.FindErr = errors.New("table missing")
	repos.tenant.RefundErr = errors.New("bad json")

	h, _, err := svc.Load(context.Background(), testTenant(), models.TemplateApplication, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if h.Currencies != nil {
		t.Error("currencies should be absent after lookup failure")
	}
	if h.Event != nil {
		t.Error("event should be absent after lookup failure")
	}
	if h.Refund != nil {
		t.Error("refund window should be absent after lookup failure")
	}
}

func TestLoadGuestMatchesUsers(t *testing.T) {
	svc, repos, _ := newTestService(t)
	repos.onboarding.Onboardings = []models.Onboarding{
		{Name: "Alice | Smith", QRCode: "qr-1"},
		{Name: "Bob | Jones", QRCode: "qr-2"},
	}
	repos.user.Users = []models.User{
		{FirstName: "Alice", LastName: "Smith", Email: "alicesmith@summerfest.be", QRCode: "user-qr-1"},
	}

	h, missing, err := svc.Load(context.Background(), testTenant(), models.TemplateGuest, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := h.Users["Alice | Smith"]; got == nil || got.QRCode != "user-qr-1" {
		t.Errorf("Alice not matched: %+v", got)
	}
	if h.Users["Bob | Jones"] != nil {
		t.Error("Bob should not have matched")
	}

	if len(missing) != 1 {
		t.Fatalf("missing = %d, want 1", len(missing))
	}
	if missing[0].FirstName != "Bob" || missing[0].LastName != "Jones" {
		t.Errorf("missing row = %+v", missing[0])
	}
	if missing[0].Email != "bobjones@summerfest.be" {
		t.Errorf("missing email = %q, want derived address", missing[0].Email)
	}

	// Lookups run on the derived local part
	if len(repos.user.Prefixes) != 2 || repos.user.Prefixes[0] != "alicesmith" {
		t.Errorf("lookup prefixes = %v", repos.user.Prefixes)
	}
}

func TestLoadGuestUserLookupErrorMarksMissing(t *testing.T) {
	svc, repos, _ := newTestService(t)
	repos.onboarding.Onboardings = []models.Onboarding{
		{Name: "Alice | Smith", QRCode: "qr-1"},
	}
	repos.user.FindErr = errors.New("query timeout")

	h, missing, err := svc.Load(context.Background(), testTenant(), models.TemplateGuest, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Users) != 0 {
		t.Errorf("users = %d, want 0", len(h.Users))
	}
	if len(missing) != 1 {
		t.Errorf("missing = %d, want 1", len(missing))
	}
}

func TestGenerate(t *testing.T) {
	svc, _, renderer := newTestService(t)
	renderer.Pages = 4

	h := &models.Handout{
		Tenant:      testTenant(),
		Variant:     models.TemplateApplication,
		Onboardings: []models.Onboarding{{Name: "Kassa 1"}},
	}

	result, err := svc.Generate(h)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Pages != 4 {
		t.Errorf("pages = %d, want 4", result.Pages)
	}
	if result.RunID == "" {
		t.Error("run ID is empty")
	}
	if filepath.Base(result.Path) != "onboarding_app_summerfest_all.pdf" {
		t.Errorf("path = %q", result.Path)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("output file is empty")
	}
}

func TestGenerateGuestFilename(t *testing.T) {
	h := &models.Handout{Tenant: testTenant(), Variant: models.TemplateGuest}
	if got := handoutFilename(h); got != "onboarding_guest_summerfest_all.pdf" {
		t.Errorf("handoutFilename() = %q", got)
	}
}

func TestGenerateRenderError(t *testing.T) {
	svc, _, renderer := newTestService(t)
	renderer.RenderErr = errors.New("bad geometry")

	h := &models.Handout{Tenant: testTenant(), Variant: models.TemplateApplication}
	if _, err := svc.Generate(h); err == nil {
		t.Fatal("expected render error")
	}
}

func TestWriteMissingUsers(t *testing.T) {
	svc, _, _ := newTestService(t)

	missing := []models.MissingUser{
		{FirstName: "Bob", LastName: "Jones", Email: "bobjones@summerfest.be"},
		{FirstName: "Carol", LastName: "", Email: "carol@summerfest.be"},
	}

	path, err := svc.WriteMissingUsers(missing)
	if err != nil {
		t.Fatalf("WriteMissingUsers failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("csv not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3: %q", len(lines), string(data))
	}
	if lines[0] != "firstname,lastname,email" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Bob,Jones,bobjones@summerfest.be" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestWriteMissingUsersEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)

	path, err := svc.WriteMissingUsers(nil)
	if err != nil {
		t.Fatalf("WriteMissingUsers failed: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty when nothing is missing", path)
	}
}
