// Package identity derives and validates the candidate email used to match
// an onboarding record to a platform user.
package identity

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	whatsappPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^https://chat\.whatsapp\.com/`),
		regexp.MustCompile(`^https://wa\.me/`),
		regexp.MustCompile(`^whatsapp://send`),
	}
)

// ParseOnboardingName splits an onboarding name of the form
// "First | Last" into its name parts. Names without the separator become a
// first name with an empty last name; segments past the second are dropped.
func ParseOnboardingName(name string) (first, last string) {
	parts := strings.Split(name, " | ")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(name), ""
}

// CleanEmailText strips everything but ASCII alphanumerics and lowercases
// the rest, matching how tenant accounts are provisioned.
func CleanEmailText(s string) string {
	return strings.ToLower(nonAlnumRegex.ReplaceAllString(s, ""))
}

// DeriveEmail builds the candidate address for a name pair on the tenant
// domain. The derivation is deterministic and idempotent.
func DeriveEmail(first, last, domain string) string {
	return CleanEmailText(first) + CleanEmailText(last) + "@" + domain
}

// LocalPart returns the part of an address before the @.
func LocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// ValidEmail reports whether s looks like a deliverable address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidWhatsAppURL reports whether s is a WhatsApp group or chat link.
func ValidWhatsAppURL(s string) bool {
	if s == "" {
		return false
	}
	for _, p := range whatsappPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
