package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Completer defines how the application talks to a text-completion
// model. Complete never fails outward: on any error (missing
// credential, timeout, bad response) it returns fallback.
type Completer interface {
	Complete(ctx context.Context, system, user, fallback string) string
}

// EntryStore defines mood entry persistence.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *MoodEntry) error
	GetEntry(ctx context.Context, id EntryID) (*MoodEntry, error)
	ListEntriesByUser(ctx context.Context, userID UserID) ([]*MoodEntry, error)

	// SetReflection persists text, status and the generation timestamp
	// in a single write, so a reader never observes completed status
	// without its text.
	SetReflection(ctx context.Context, id EntryID, text string, status ReflectionStatus) error

	// SetReflectionStatus updates only the status field.
	SetReflectionStatus(ctx context.Context, id EntryID, status ReflectionStatus) error
}

// UserStore defines account persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id UserID) (*User, error)
}
