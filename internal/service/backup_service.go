package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/repository"
)

const backupVersion = "1.0"

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string        `json:"version"`
	ExportedAt   time.Time     `json:"exported_at"`
	DatabaseType string        `json:"database_type"`
	Guests       []GuestBackup `json:"guests"`
	RSVPs        []RSVPBackup  `json:"rsvps"`
	Admins       []string      `json:"admins"`
}

// GuestBackup represents a guest record for backup
type GuestBackup struct {
	ID        string    `json:"id"`
	PartyID   string    `json:"party_id"`
	PartyCode string    `json:"party_code,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RSVPBackup represents an RSVP record for backup
type RSVPBackup struct {
	ID                  string    `json:"id"`
	GuestID             string    `json:"guest_id"`
	Attendance          string    `json:"attendance"`
	MealChoice          string    `json:"meal_choice,omitempty"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	Message             string    `json:"message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db     *database.DB
	guests *repository.GuestRepository
	rsvps  *repository.RSVPRepository
	roles  *repository.RoleRepository
	options
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, opts ...Option) *BackupService {
	return &BackupService{
		db:      db,
		guests:  repository.NewGuestRepository(db),
		rsvps:   repository.NewRSVPRepository(db),
		roles:   repository.NewRoleRepository(db),
		options: newOptions(opts),
	}
}

// Export writes a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	s.log.Info().Str("path", outputPath).Msg("Database exported")
	return nil
}

// ExportToWriter writes a complete backup as indented JSON
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup, err := s.collect()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	s.log.Info().Int("guests", len(backup.Guests)).Int("rsvps", len(backup.RSVPs)).Int("admins", len(backup.Admins)).Msg("Export complete")
	return nil
}

func (s *BackupService) collect() (*BackupData, error) {
	backup := &BackupData{
		Version:      backupVersion,
		ExportedAt:   s.now().UTC(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	var g errgroup.Group
	g.Go(func() error {
		guests, err := s.guests.ListAll()
		if err != nil {
			return fmt.Errorf("failed to export guests: %w", err)
		}
		for _, guest := range guests {
			backup.Guests = append(backup.Guests, GuestBackup(guest))
		}
		return nil
	})
	g.Go(func() error {
		rsvps, err := s.rsvps.ListAll()
		if err != nil {
			return fmt.Errorf("failed to export rsvps: %w", err)
		}
		for _, rsvp := range rsvps {
			backup.RSVPs = append(backup.RSVPs, RSVPBackup(rsvp))
		}
		return nil
	})
	g.Go(func() error {
		admins, err := s.roles.ListByRole(models.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to export roles: %w", err)
		}
		for _, a := range admins {
			backup.Admins = append(backup.Admins, a.UserID)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return backup, nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a backup in a single transaction; any failure imports nothing
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != backupVersion {
		return fmt.Errorf("unsupported backup version %q", backup.Version)
	}

	s.log.Info().Str("version", backup.Version).Time("exported_at", backup.ExportedAt).Msg("Starting database import")

	err := s.db.WithTx(func(tx *database.Tx) error {
		for _, gb := range backup.Guests {
			guest := models.Guest(gb)
			if err := guest.Validate(); err != nil {
				return fmt.Errorf("invalid guest %s: %w", gb.ID, err)
			}
			if err := repository.InsertGuest(tx, &guest); err != nil {
				return err
			}
		}
		for _, rb := range backup.RSVPs {
			rsvp := models.RSVP(rb)
			if err := rsvp.Validate(); err != nil {
				return fmt.Errorf("invalid rsvp %s: %w", rb.ID, err)
			}
			if err := repository.InsertRSVP(tx, &rsvp); err != nil {
				return err
			}
		}
		for _, userID := range backup.Admins {
			if _, err := tx.Exec(tx.GetDialect().GrantRoleQuery(), userID, models.RoleAdmin); err != nil {
				return fmt.Errorf("failed to import role for %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Int("guests", len(backup.Guests)).Int("rsvps", len(backup.RSVPs)).Int("admins", len(backup.Admins)).Msg("Database import completed")
	return nil
}
