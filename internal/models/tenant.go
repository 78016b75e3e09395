package models

// Tenant is one row of the central domains table: a customer organization
// identified by slug with its client-facing domain.
type Tenant struct {
	TenantID string `db:"tenant_id"`
	Domain   string `db:"domain"`

	// Manual is set when the operator entered the tenant by hand because no
	// domains row matched the slug.
	Manual bool `db:"-"`
}

// RefundWindow holds the refund scheduler settings read from the central
// tenants table. Start and End are already formatted for display.
type RefundWindow struct {
	Enabled bool
	Start   string
	End     string
}
