package repository

import (
	"database/sql"
	"fmt"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

const rsvpColumns = "id, guest_id, attendance, meal_choice, dietary_restrictions, message, created_at"

// RSVPRepository handles database operations for RSVP responses
type RSVPRepository struct {
	db *database.DB
}

// NewRSVPRepository creates a new RSVP repository
func NewRSVPRepository(db *database.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// ListAll retrieves every RSVP in creation order
func (r *RSVPRepository) ListAll() ([]models.RSVP, error) {
	query := "SELECT " + rsvpColumns + " FROM rsvps ORDER BY created_at, id"
	return r.queryRSVPs(query)
}

// ListByGuest retrieves a guest's RSVPs in creation order
func (r *RSVPRepository) ListByGuest(guestID string) ([]models.RSVP, error) {
	query := "SELECT " + rsvpColumns + " FROM rsvps WHERE guest_id = ? ORDER BY created_at, id"
	return r.queryRSVPs(query, guestID)
}

// CreateBatch inserts all RSVPs in one transaction; either every record lands or none does
func (r *RSVPRepository) CreateBatch(rsvps []models.RSVP) error {
	return r.db.WithTx(func(tx *database.Tx) error {
		for i := range rsvps {
			if err := InsertRSVP(tx, &rsvps[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// InsertRSVP writes an RSVP through any DBTX
func InsertRSVP(q database.DBTX, rsvp *models.RSVP) error {
	query := "INSERT INTO rsvps (" + rsvpColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)"
	_, err := q.Exec(query,
		rsvp.ID,
		rsvp.GuestID,
		rsvp.Attendance,
		nullString(rsvp.MealChoice),
		nullString(rsvp.DietaryRestrictions),
		nullString(rsvp.Message),
		rsvp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create rsvp: %w", err)
	}
	return nil
}

func (r *RSVPRepository) queryRSVPs(query string, args ...interface{}) ([]models.RSVP, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		var rsvp models.RSVP
		var meal, dietary, message sql.NullString
		err := rows.Scan(
			&rsvp.ID,
			&rsvp.GuestID,
			&rsvp.Attendance,
			&meal,
			&dietary,
			&message,
			&rsvp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvp.MealChoice = meal.String
		rsvp.DietaryRestrictions = dietary.String
		rsvp.Message = message.String
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}

	return rsvps, nil
}
