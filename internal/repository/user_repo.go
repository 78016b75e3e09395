package repository

import (
	"context"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository over a tenant database
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// FindByEmailPrefix retrieves users whose email contains the derived local
// part. Only users holding an RFID tag with a QR code qualify (inner join);
// personal mail domains are excluded so only tenant-issued accounts match.
func (r *userRepo) FindByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error) {
	query := `
		SELECT
			u.firstname,
			u.lastname,
			u.email,
			rt.qr_code
		FROM users u
		INNER JOIN user_rfid_tags urt ON u.id = urt.user_id
		INNER JOIN rfid_tags rt ON urt.rfid_tag_id = rt.id
		WHERE u.email LIKE ?
		AND u.email NOT LIKE '%@gmail.com'
		AND u.email NOT LIKE '%@hotmail.com'
		AND u.email NOT LIKE '%@outlook.com'
		AND u.email NOT LIKE '%@yahoo.com'
		AND u.email NOT LIKE '%@live.com'
		AND u.email NOT LIKE '%@msn.com'
		AND rt.qr_code IS NOT NULL
		AND rt.qr_code != ''
		ORDER BY u.email
	`

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, "%"+prefix+"%"); err != nil {
		return nil, err
	}
	return users, nil
}
