package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

const guestColumns = "id, party_id, party_code, name, email, created_at"

// GuestRepository handles database operations for the guest directory
type GuestRepository struct {
	db *database.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *database.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// ListAll retrieves every guest ordered by party then name
func (r *GuestRepository) ListAll() ([]models.Guest, error) {
	query := "SELECT " + guestColumns + " FROM guests ORDER BY party_id, name, id"
	return r.queryGuests(query)
}

// ListByParty retrieves the members of a party ordered by name
func (r *GuestRepository) ListByParty(partyID string) ([]models.Guest, error) {
	query := "SELECT " + guestColumns + " FROM guests WHERE party_id = ? ORDER BY name, id"
	return r.queryGuests(query, partyID)
}

// GetByID retrieves a guest by ID, returning nil if it does not exist
func (r *GuestRepository) GetByID(id string) (*models.Guest, error) {
	query := "SELECT " + guestColumns + " FROM guests WHERE id = ?"
	guest, err := scanGuest(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return guest, nil
}

// Create inserts a single guest
func (r *GuestRepository) Create(guest *models.Guest) error {
	return InsertGuest(r.db, guest)
}

// CreateBatch inserts all guests in one transaction
func (r *GuestRepository) CreateBatch(guests []models.Guest) error {
	return r.db.WithTx(func(tx *database.Tx) error {
		for i := range guests {
			if err := InsertGuest(tx, &guests[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a guest, reporting whether a row was deleted.
// RSVPs referencing the guest are left in place.
func (r *GuestRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM guests WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete guest: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete guest: %w", err)
	}
	return affected > 0, nil
}

// PartyExists checks whether any guest carries partyID
func (r *GuestRepository) PartyExists(partyID string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM guests WHERE party_id = ?", partyID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check party: %w", err)
	}
	return count > 0, nil
}

// PartyCode returns the code carried by the party's members, or "" if none
func (r *GuestRepository) PartyCode(partyID string) (string, error) {
	query := "SELECT party_code FROM guests WHERE party_id = ? AND party_code IS NOT NULL ORDER BY created_at, id LIMIT 1"
	var code sql.NullString
	err := r.db.QueryRow(query, partyID).Scan(&code)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get party code: %w", err)
	}
	return code.String, nil
}

// FindPartyIDByCode returns the party using code, compared case-insensitively, or "" if unused
func (r *GuestRepository) FindPartyIDByCode(code string) (string, error) {
	query := "SELECT party_id FROM guests WHERE UPPER(party_code) = ? LIMIT 1"
	var partyID string
	err := r.db.QueryRow(query, strings.ToUpper(code)).Scan(&partyID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up party code: %w", err)
	}
	return partyID, nil
}

// UpdatePartyCode sets the code on every member of a party
func (r *GuestRepository) UpdatePartyCode(partyID, code string) (int64, error) {
	result, err := r.db.Exec("UPDATE guests SET party_code = ? WHERE party_id = ?", nullString(code), partyID)
	if err != nil {
		return 0, fmt.Errorf("failed to update party code: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to update party code: %w", err)
	}
	return affected, nil
}

// InsertGuest writes a guest through any DBTX so callers can batch inside a transaction
func InsertGuest(q database.DBTX, guest *models.Guest) error {
	query := "INSERT INTO guests (" + guestColumns + ") VALUES (?, ?, ?, ?, ?, ?)"
	_, err := q.Exec(query,
		guest.ID,
		guest.PartyID,
		nullString(guest.PartyCode),
		guest.Name,
		nullString(guest.Email),
		guest.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (r *GuestRepository) queryGuests(query string, args ...interface{}) ([]models.Guest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, *guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	return guests, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(s scanner) (*models.Guest, error) {
	var guest models.Guest
	var partyCode, email sql.NullString
	err := s.Scan(
		&guest.ID,
		&guest.PartyID,
		&partyCode,
		&guest.Name,
		&email,
		&guest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	guest.PartyCode = partyCode.String
	guest.Email = email.String
	return &guest, nil
}
