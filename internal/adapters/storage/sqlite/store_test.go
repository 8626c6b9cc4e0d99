package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *Store, id domain.UserID) {
	t.Helper()
	require.NoError(t, store.CreateUser(context.Background(), &domain.User{
		ID:           id,
		Name:         "Igor",
		Email:        string(id) + "@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}))
}

func TestCreateAndGetEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "user-1")

	now := time.Now().UTC().Truncate(time.Second)
	entry := &domain.MoodEntry{
		ID:                "entry-1",
		UserID:            "user-1",
		Date:              now,
		MoodLevel:         2,
		Emoji:             "😔",
		Color:             "#E68161",
		Note:              "dia difícil",
		ContextualAnswers: domain.ContextualAnswers{"worry": true, "energy": "low"},
		ReflectionStatus:  domain.ReflectionPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, store.CreateEntry(ctx, entry))

	got, err := store.GetEntry(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.UserID, got.UserID)
	assert.Equal(t, 2, got.MoodLevel)
	assert.Equal(t, "dia difícil", got.Note)
	assert.Equal(t, domain.ReflectionPending, got.ReflectionStatus)
	assert.Empty(t, got.ReflectionText)
	assert.Nil(t, got.ReflectionGeneratedAt)
	assert.True(t, got.ContextualAnswers.Bool("worry", true))
	assert.Equal(t, "low", got.ContextualAnswers.String("energy"))
	assert.True(t, got.Date.Equal(now))
}

func TestGetEntryNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetReflection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "user-1")

	now := time.Now().UTC()
	require.NoError(t, store.CreateEntry(ctx, &domain.MoodEntry{
		ID: "entry-1", UserID: "user-1", Date: now,
		MoodLevel: 3, Emoji: "😐", Color: "#77797C",
		ReflectionStatus: domain.ReflectionPending,
		CreatedAt:        now, UpdatedAt: now,
	}))

	require.NoError(t, store.SetReflection(ctx, "entry-1", "texto gerado", domain.ReflectionCompleted))

	got, err := store.GetEntry(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReflectionCompleted, got.ReflectionStatus)
	assert.Equal(t, "texto gerado", got.ReflectionText)
	require.NotNil(t, got.ReflectionGeneratedAt, "generated timestamp set together with the text")

	// Missing rows surface as not-found, not as silent no-ops.
	assert.ErrorIs(t, store.SetReflection(ctx, "missing", "x", domain.ReflectionCompleted), domain.ErrNotFound)
}

func TestSetReflectionStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "user-1")

	now := time.Now().UTC()
	require.NoError(t, store.CreateEntry(ctx, &domain.MoodEntry{
		ID: "entry-1", UserID: "user-1", Date: now,
		MoodLevel: 3, Emoji: "😐", Color: "#77797C",
		ReflectionStatus: domain.ReflectionPending,
		CreatedAt:        now, UpdatedAt: now,
	}))

	require.NoError(t, store.SetReflectionStatus(ctx, "entry-1", domain.ReflectionFailed))

	got, err := store.GetEntry(ctx, "entry-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReflectionFailed, got.ReflectionStatus)
	assert.Empty(t, got.ReflectionText, "failed entries carry no text")

	assert.ErrorIs(t, store.SetReflectionStatus(ctx, "missing", domain.ReflectionFailed), domain.ErrNotFound)
}

func TestListEntriesByUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "user-1")
	seedUser(t, store, "user-2")

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []domain.EntryID{"a", "b", "c"} {
		require.NoError(t, store.CreateEntry(ctx, &domain.MoodEntry{
			ID: id, UserID: "user-1", Date: base.Add(time.Duration(i) * time.Hour),
			MoodLevel: 3, Emoji: "😐", Color: "#77797C",
			ReflectionStatus: domain.ReflectionPending,
			CreatedAt:        base, UpdatedAt: base,
		}))
	}
	require.NoError(t, store.CreateEntry(ctx, &domain.MoodEntry{
		ID: "other", UserID: "user-2", Date: base,
		MoodLevel: 4, Emoji: "😊", Color: "#32B8C6",
		ReflectionStatus: domain.ReflectionPending,
		CreatedAt:        base, UpdatedAt: base,
	}))

	entries, err := store.ListEntriesByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.EntryID("c"), entries[0].ID, "newest first")
	assert.Equal(t, domain.EntryID("a"), entries[2].ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &domain.User{
		ID: "user-1", Name: "Igor", Email: "igor@example.com",
		PasswordHash: "$2a$10$hash", CreatedAt: time.Now(),
	}
	require.NoError(t, store.CreateUser(ctx, user))

	dup := &domain.User{
		ID: "user-2", Name: "Other", Email: "igor@example.com",
		PasswordHash: "$2a$10$other", CreatedAt: time.Now(),
	}
	assert.ErrorIs(t, store.CreateUser(ctx, dup), domain.ErrEmailTaken)
}

func TestGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "user-1")

	byEmail, err := store.GetUserByEmail(ctx, "user-1@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-1"), byEmail.ID)

	byID, err := store.GetUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, byEmail.Email, byID.Email)

	_, err = store.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
