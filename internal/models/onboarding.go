package models

import (
	"database/sql"
	"strings"
	"time"
)

// Onboarding is one QR-code record of a tenant, joined with its location,
// sale catalogue, event and role rights.
type Onboarding struct {
	Name           string         `db:"onboarding_name"`
	QRCode         string         `db:"qr_code"`
	LocationName   sql.NullString `db:"location_name"`
	SalesName      sql.NullString `db:"sales_name"`
	EventName      sql.NullString `db:"event_name"`
	Roles          sql.NullString `db:"roles"`
	PaymentMethods sql.NullString `db:"payment_methods"`
}

// HasTopUpRole reports whether the record carries top-up rights, which makes
// the renderer append a TOPUP manual page after the onboarding page.
func (o *Onboarding) HasTopUpRole() bool {
	roles := strings.ToLower(o.Roles.String)
	return strings.Contains(roles, "top_up") ||
		strings.Contains(roles, "topup") ||
		strings.Contains(roles, "top-up")
}

// ShowPaymentMethods reports whether the payment methods line belongs on the
// page: top-up stations never show it.
func (o *Onboarding) ShowPaymentMethods() bool {
	if o.PaymentMethods.String == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(o.Roles.String), "top_up")
}

// Event holds the schedule of the event shown on the overview page.
type Event struct {
	Name          string       `db:"name"`
	StartDatetime sql.NullTime `db:"start_datetime"`
	EndDatetime   sql.NullTime `db:"end_datetime"`
}

// Currency is one tenant currency visible in the client app.
type Currency struct {
	Name          string  `db:"name"`
	ExchangeRate  float64 `db:"exchange_rate"`
	BurningWeight float64 `db:"burning_weight"`
	StaffOrder    int     `db:"staffx_order"`
	ClientOrder   int     `db:"clientx_order"`
}

// TemplateVariant selects which of the two handout layouts is rendered.
type TemplateVariant string

const (
	// TemplateApplication is the kassa/terminal configuration layout.
	TemplateApplication TemplateVariant = "application"
	// TemplateGuest is the dual-QR layout for guest users.
	TemplateGuest TemplateVariant = "guest"
)

// Handout is everything one PDF run needs, assembled up front so the
// renderer does no database work.
type Handout struct {
	Tenant      *Tenant
	Variant     TemplateVariant
	Onboardings []Onboarding
	// Users maps onboarding name to the matched platform user (guest only).
	Users       map[string]*User
	Currencies  []Currency
	Event       *Event
	Refund      *RefundWindow
	WhatsAppURL string
	GeneratedAt time.Time
}
