package models

// User represents a platform user matched by derived email. The lookup inner
// joins on RFID tags, so a matched user always carries a non-empty QRCode.
type User struct {
	FirstName string `db:"firstname"`
	LastName  string `db:"lastname"`
	Email     string `db:"email"`
	QRCode    string `db:"qr_code"`
}

// MissingUser is one row of the manual-import CSV written for onboardings
// that no platform user could be matched to.
type MissingUser struct {
	FirstName string
	LastName  string
	Email     string
}
