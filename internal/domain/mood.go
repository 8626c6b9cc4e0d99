package domain

import "time"

// ContextualAnswers maps a follow-up question id (e.g. "interest",
// "worry", "energy") to the user's answer (boolean or small enum).
// Answers come straight from the client JSON, so values are untyped.
type ContextualAnswers map[string]any

// Bool reports whether the answer for key is the given boolean.
// A missing or non-boolean answer never matches.
func (a ContextualAnswers) Bool(key string, want bool) bool {
	if a == nil {
		return false
	}
	v, ok := a[key].(bool)
	return ok && v == want
}

// String returns the string answer for key, or "" when absent.
func (a ContextualAnswers) String(key string) string {
	if a == nil {
		return ""
	}
	s, _ := a[key].(string)
	return s
}

// MoodEntry is one daily mood record. The core fields are immutable
// after creation; only the reflection fields are mutated, and only by
// the reflection pipeline.
type MoodEntry struct {
	ID     EntryID   `json:"id"`
	UserID UserID    `json:"user_id"`
	Date   time.Time `json:"date"`

	MoodLevel int    `json:"mood_level"` // 1..5
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	Note      string `json:"note,omitempty"`

	ContextualAnswers ContextualAnswers `json:"contextual_answers,omitempty"`

	ReflectionStatus      ReflectionStatus `json:"reflection_status"`
	ReflectionText        string           `json:"reflection_text,omitempty"`
	ReflectionGeneratedAt *time.Time       `json:"reflection_generated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReflectionRequest is the ephemeral input for one reflection run.
// It fully determines the output, modulo the model's own nondeterminism.
type ReflectionRequest struct {
	MoodLevel         int
	ContextualAnswers ContextualAnswers
	Note              string
}

// Technique is a named coping strategy associated with a domain label.
// Fallback is the static reflection used when generation is unavailable.
type Technique struct {
	Name        string
	Description string
	Fallback    string
}

// User is an account holder. PasswordHash is a bcrypt hash, never the
// raw password.
type User struct {
	ID           UserID    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
