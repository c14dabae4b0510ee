package services

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/findify-app/findify-be/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	// A second pool connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func newUserService(t *testing.T) (*UserService, *EventService) {
	t.Helper()
	db := newTestDB(t)
	events := NewEventService(db)
	return NewUserService(db, events), events
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.CreateUser("alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Empty(t, user.PasswordHash, "hash must not be returned")

	stored, err := svc.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestCreateUser_MissingFields(t *testing.T) {
	svc, _ := newUserService(t)

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@x.com", "p"},
		{"a", "", "p"},
		{"a", "a@x.com", ""},
	} {
		_, err := svc.CreateUser(tc.username, tc.email, tc.password)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCreateUser_DuplicateConflicts(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.CreateUser("alice", "alice@example.com", "p1")
	require.NoError(t, err)

	_, err = svc.CreateUser("bob", "alice@example.com", "p2")
	require.ErrorIs(t, err, ErrConflict, "duplicate email")

	_, err = svc.CreateUser("alice", "other@example.com", "p2")
	require.ErrorIs(t, err, ErrConflict, "duplicate username")

	var count int
	require.NoError(t, svc.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	require.Equal(t, 1, count, "no second record may be created")
}

func TestAuthenticateUser(t *testing.T) {
	svc, _ := newUserService(t)

	created, err := svc.CreateUser("alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	user, err := svc.AuthenticateUser("alice@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.Empty(t, user.PasswordHash)

	_, err = svc.AuthenticateUser("alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateUser("nobody@example.com", "hunter2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUsername(t *testing.T) {
	svc, _ := newUserService(t)

	alice, err := svc.CreateUser("alice", "alice@example.com", "p")
	require.NoError(t, err)
	_, err = svc.CreateUser("bob", "bob@example.com", "p")
	require.NoError(t, err)

	updated, err := svc.UpdateUsername(alice.ID, "alice2")
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)

	_, err = svc.UpdateUsername(alice.ID, "bob")
	require.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateUsername(alice.ID, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateUsername("missing-id", "carol")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateContact(t *testing.T) {
	svc, _ := newUserService(t)

	alice, err := svc.CreateUser("alice", "alice@example.com", "p")
	require.NoError(t, err)

	updated, err := svc.UpdateContact(alice.ID, "555-0101")
	require.NoError(t, err)
	require.Equal(t, "555-0101", updated.ContactNo)

	_, err = svc.UpdateContact("missing-id", "555")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccount_CascadesToItems(t *testing.T) {
	db := newTestDB(t)
	events := NewEventService(db)
	users := NewUserService(db, events)
	lost := NewLostItemService(db, events)
	found := NewFoundItemService(db, events)

	alice, err := users.CreateUser("alice", "alice@example.com", "p")
	require.NoError(t, err)
	bob, err := users.CreateUser("bob", "bob@example.com", "p")
	require.NoError(t, err)

	_, err = lost.CreateLostItem(alice.ID, testLostItem("Wallet"))
	require.NoError(t, err)
	_, err = found.CreateFoundItem(alice.ID, testFoundItem("Keys"))
	require.NoError(t, err)
	keep, err := lost.CreateLostItem(bob.ID, testLostItem("Umbrella"))
	require.NoError(t, err)

	err = users.DeleteAccount(alice.ID, "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, users.DeleteAccount(alice.ID, "p"))

	_, err = users.GetUserByID(alice.ID)
	require.ErrorIs(t, err, ErrNotFound)

	aliceLost, err := lost.ListLostItemsByOwner(alice.ID)
	require.NoError(t, err)
	require.Empty(t, aliceLost)
	aliceFound, err := found.ListFoundItemsByOwner(alice.ID)
	require.NoError(t, err)
	require.Empty(t, aliceFound)

	bobLost, err := lost.ListLostItemsByOwner(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobLost, 1)
	require.Equal(t, keep.ID, bobLost[0].ID)

	err = users.DeleteAccount(alice.ID, "p")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventsRecorded(t *testing.T) {
	svc, events := newUserService(t)

	alice, err := svc.CreateUser("alice", "alice@example.com", "p")
	require.NoError(t, err)

	recent, err := events.GetRecentEventsByUser(alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "user.signup", recent[0].Type)
	require.Equal(t, "info", recent[0].Level)
	require.NotNil(t, recent[0].UserID)
	require.Equal(t, alice.ID, *recent[0].UserID)

	other, err := events.GetRecentEventsByUser("someone-else", 10)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestIsUniqueViolation(t *testing.T) {
	require.False(t, isUniqueViolation(nil))
	require.False(t, isUniqueViolation(errors.New("no such table")))
	require.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
}
