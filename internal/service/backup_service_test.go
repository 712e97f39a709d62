package service

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
	"weddingrsvp/internal/repository"
	"weddingrsvp/internal/validation"
)

func openBackupTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "backup.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.RunMigrations("../../migrations")
	require.NoError(t, err)
	return db
}

func TestBackupRoundTrip(t *testing.T) {
	src := openBackupTestDB(t)

	partyID := uuid.NewString()
	jane := newTestGuest(partyID, "Jane Doe", "DOE123")
	john := newTestGuest(partyID, "John Doe", "DOE123")
	require.NoError(t, repository.NewGuestRepository(src).CreateBatch([]models.Guest{jane, john}))
	require.NoError(t, repository.NewRSVPRepository(src).CreateBatch([]models.RSVP{
		newTestRSVP(jane.ID, models.AttendanceAttending, validation.MealBeef, "hi", testEpoch),
	}))
	require.NoError(t, repository.NewRoleRepository(src).Grant("admin-1", models.RoleAdmin))

	var buf bytes.Buffer
	require.NoError(t, NewBackupService(src).ExportToWriter(&buf))
	assert.Contains(t, buf.String(), `"version": "1.0"`)

	dst := openBackupTestDB(t)
	require.NoError(t, NewBackupService(dst).ImportFromReader(&buf))

	guests, err := repository.NewGuestRepository(dst).ListAll()
	require.NoError(t, err)
	assert.Len(t, guests, 2)

	rsvps, err := repository.NewRSVPRepository(dst).ListAll()
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, jane.ID, rsvps[0].GuestID)

	isAdmin, err := repository.NewRoleRepository(dst).HasRole("admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestBackupImportRejectsBadInput(t *testing.T) {
	db := openBackupTestDB(t)
	svc := NewBackupService(db)

	assert.Error(t, svc.ImportFromReader(strings.NewReader(`{"version":"9.9"}`)))
	assert.Error(t, svc.ImportFromReader(strings.NewReader(`not json`)))

	// A bad record aborts the whole import
	bad := `{"version":"1.0","guests":[
		{"id":"` + uuid.NewString() + `","party_id":"` + uuid.NewString() + `","name":"Ok Guest","created_at":"2025-06-14T15:00:00Z"},
		{"id":"nope","party_id":"nope","name":"","created_at":"2025-06-14T15:00:00Z"}]}`
	assert.Error(t, svc.ImportFromReader(strings.NewReader(bad)))

	guests, err := repository.NewGuestRepository(db).ListAll()
	require.NoError(t, err)
	assert.Empty(t, guests)
}
