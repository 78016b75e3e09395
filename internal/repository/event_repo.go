package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/onboarding-qr-generator/internal/database"
	"github.com/onboarding-qr-generator/internal/models"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

// NewEventRepo creates a new event repository over a tenant database
func NewEventRepo(db *database.DB) EventRepository {
	return &eventRepo{db: db}
}

// FindByName retrieves the event schedule for the overview page
func (r *eventRepo) FindByName(ctx context.Context, name string) (*models.Event, error) {
	query := `SELECT name, start_datetime, end_datetime FROM events WHERE name = ?`

	var event models.Event
	err := r.db.GetContext(ctx, &event, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}
