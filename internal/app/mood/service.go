package mood

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IgorKammerGrahl/MoodTrack/internal/app/reflection"
	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
	"github.com/IgorKammerGrahl/MoodTrack/internal/observability"
)

var ErrInvalidMoodLevel = errors.New("mood level must be between 1 and 5")

// Service holds the mood entry use cases. Entry creation is the
// trigger of the reflection pipeline: the row is written with status
// pending before the reflection work is scheduled, so a crash between
// the two leaves an observable pending entry rather than a silent gap.
type Service struct {
	entries      domain.EntryStore
	dispatcher   *reflection.Dispatcher
	orchestrator *reflection.Orchestrator
	now          func() time.Time
}

func NewService(entries domain.EntryStore, dispatcher *reflection.Dispatcher, orchestrator *reflection.Orchestrator) *Service {
	return &Service{
		entries:      entries,
		dispatcher:   dispatcher,
		orchestrator: orchestrator,
		now:          time.Now,
	}
}

type CreateEntryInput struct {
	UserID            domain.UserID
	MoodLevel         int
	Emoji             string
	Color             string
	Note              string
	ContextualAnswers domain.ContextualAnswers
	Date              time.Time // zero value means "now"
}

// CreateEntry inserts the entry synchronously and schedules its
// reflection off the request path. The returned entry is the state the
// client sees immediately: reflection still pending.
func (s *Service) CreateEntry(ctx context.Context, in CreateEntryInput) (*domain.MoodEntry, error) {
	if in.MoodLevel < 1 || in.MoodLevel > 5 {
		return nil, ErrInvalidMoodLevel
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	entry := &domain.MoodEntry{
		ID:                domain.EntryID(uuid.NewString()),
		UserID:            in.UserID,
		Date:              date,
		MoodLevel:         in.MoodLevel,
		Emoji:             in.Emoji,
		Color:             in.Color,
		Note:              in.Note,
		ContextualAnswers: in.ContextualAnswers,
		ReflectionStatus:  domain.ReflectionPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	log := observability.LoggerFromContext(ctx).With(
		"user_id", in.UserID,
		"entry_id", entry.ID,
	)

	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		log.Error("failed to create mood entry", "error", err)
		return nil, err
	}

	req := domain.ReflectionRequest{
		MoodLevel:         in.MoodLevel,
		ContextualAnswers: in.ContextualAnswers,
		Note:              in.Note,
	}
	entryID := entry.ID

	s.dispatcher.Dispatch("reflection", func(ctx context.Context) error {
		return s.orchestrator.Run(ctx, entryID, req)
	})

	log.Info("mood entry created", "mood_level", in.MoodLevel)
	return entry, nil
}

// GetEntry fetches one entry, hiding other users' rows behind not-found.
func (s *Service) GetEntry(ctx context.Context, userID domain.UserID, id domain.EntryID) (*domain.MoodEntry, error) {
	entry, err := s.entries.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context, userID domain.UserID) ([]*domain.MoodEntry, error) {
	return s.entries.ListEntriesByUser(ctx, userID)
}
