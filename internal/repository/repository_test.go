package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/internal/database"
	"weddingrsvp/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.RunMigrations("../../migrations")
	require.NoError(t, err)
	return db
}

func newGuest(partyID, name string) models.Guest {
	return models.Guest{
		ID:        uuid.NewString(),
		PartyID:   partyID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func TestGuestRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewGuestRepository(db)

	partyA := uuid.NewString()
	partyB := uuid.NewString()

	jane := newGuest(partyA, "Jane Doe")
	jane.Email = "jane@example.com"
	john := newGuest(partyA, "John Doe")
	alice := newGuest(partyB, "Alice Smith")

	require.NoError(t, repo.CreateBatch([]models.Guest{john, jane}))
	require.NoError(t, repo.Create(&alice))

	t.Run("ListAll orders by party then name", func(t *testing.T) {
		guests, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, guests, 3)

		// Same party members are adjacent and sorted by name
		var names []string
		for _, g := range guests {
			if g.PartyID == partyA {
				names = append(names, g.Name)
			}
		}
		assert.Equal(t, []string{"Jane Doe", "John Doe"}, names)
	})

	t.Run("nullable columns round trip", func(t *testing.T) {
		got, err := repo.GetByID(jane.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "jane@example.com", got.Email)
		assert.Equal(t, "", got.PartyCode)
		assert.False(t, got.CreatedAt.IsZero())

		missing, err := repo.GetByID(uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("party code", func(t *testing.T) {
		affected, err := repo.UpdatePartyCode(partyA, "ABC234")
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		code, err := repo.PartyCode(partyA)
		require.NoError(t, err)
		assert.Equal(t, "ABC234", code)

		owner, err := repo.FindPartyIDByCode("abc234")
		require.NoError(t, err)
		assert.Equal(t, partyA, owner)

		owner, err = repo.FindPartyIDByCode("ZZZZ99")
		require.NoError(t, err)
		assert.Equal(t, "", owner)

		code, err = repo.PartyCode(partyB)
		require.NoError(t, err)
		assert.Equal(t, "", code)
	})

	t.Run("ListByParty", func(t *testing.T) {
		members, err := repo.ListByParty(partyA)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "ABC234", members[0].PartyCode)
	})

	t.Run("PartyExists", func(t *testing.T) {
		ok, err := repo.PartyExists(partyB)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.PartyExists(uuid.NewString())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(alice.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(alice.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestGuestRepositoryBatchIsAtomic(t *testing.T) {
	db := openTestDB(t)
	repo := NewGuestRepository(db)

	party := uuid.NewString()
	first := newGuest(party, "First Guest")
	dup := first
	dup.Name = "Duplicate"

	err := repo.CreateBatch([]models.Guest{first, dup})
	require.Error(t, err)

	guests, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, guests)
}

func TestRSVPRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewRSVPRepository(db)

	guestID := uuid.NewString()
	now := time.Now().UTC()

	rsvps := []models.RSVP{
		{
			ID:                  uuid.NewString(),
			GuestID:             guestID,
			Attendance:          models.AttendanceAttending,
			MealChoice:          "beef",
			DietaryRestrictions: "no nuts",
			Message:             "Congrats!",
			CreatedAt:           now,
		},
		{
			ID:         uuid.NewString(),
			GuestID:    uuid.NewString(),
			Attendance: models.AttendanceNotAttending,
			CreatedAt:  now.Add(time.Second),
		},
	}
	require.NoError(t, repo.CreateBatch(rsvps))

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "beef", all[0].MealChoice)
	assert.Equal(t, "no nuts", all[0].DietaryRestrictions)
	assert.Equal(t, "Congrats!", all[0].Message)
	assert.Equal(t, "", all[1].MealChoice)

	byGuest, err := repo.ListByGuest(guestID)
	require.NoError(t, err)
	assert.Len(t, byGuest, 1)
}

func TestRSVPRepositoryRejectsUnknownAttendance(t *testing.T) {
	db := openTestDB(t)
	repo := NewRSVPRepository(db)

	good := models.RSVP{ID: uuid.NewString(), GuestID: uuid.NewString(), Attendance: models.AttendanceNotAttending, CreatedAt: time.Now().UTC()}
	bad := models.RSVP{ID: uuid.NewString(), GuestID: uuid.NewString(), Attendance: "maybe", CreatedAt: time.Now().UTC()}

	require.Error(t, repo.CreateBatch([]models.RSVP{good, bad}))

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRoleRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewRoleRepository(db)

	ok, err := repo.HasRole("user-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Grant("user-1", models.RoleAdmin))
	require.NoError(t, repo.Grant("user-1", models.RoleAdmin))

	ok, err = repo.HasRole("user-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	admins, err := repo.ListByRole(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "user-1", admins[0].UserID)
}
