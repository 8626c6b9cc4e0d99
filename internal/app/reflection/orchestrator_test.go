package reflection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

// fakeCompleter counts invocations and returns a canned reply, or the
// fallback when Reply is empty (same contract as the real gateway with
// no credential).
type fakeCompleter struct {
	Reply string
	Calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user, fallback string) string {
	f.Calls++
	if f.Reply == "" {
		return fallback
	}
	return f.Reply
}

// fakeStore records reflection writes and can fail them on demand.
type fakeStore struct {
	text   string
	status domain.ReflectionStatus

	failSetReflection bool
	failSetStatus     bool
}

func (f *fakeStore) CreateEntry(ctx context.Context, e *domain.MoodEntry) error { return nil }
func (f *fakeStore) GetEntry(ctx context.Context, id domain.EntryID) (*domain.MoodEntry, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeStore) ListEntriesByUser(ctx context.Context, id domain.UserID) ([]*domain.MoodEntry, error) {
	return nil, nil
}

func (f *fakeStore) SetReflection(ctx context.Context, id domain.EntryID, text string, status domain.ReflectionStatus) error {
	if f.failSetReflection {
		return errors.New("write failed")
	}
	f.text = text
	f.status = status
	return nil
}

func (f *fakeStore) SetReflectionStatus(ctx context.Context, id domain.EntryID, status domain.ReflectionStatus) error {
	if f.failSetStatus {
		return errors.New("status write failed")
	}
	f.status = status
	return nil
}

func TestRunCrisisOverride(t *testing.T) {
	completer := &fakeCompleter{Reply: "should never be used"}
	store := &fakeStore{}
	orch := NewOrchestrator(completer, store)

	err := orch.Run(context.Background(), "entry-1", domain.ReflectionRequest{
		MoodLevel: 2,
		Note:      "não aguento mais",
	})

	require.NoError(t, err)
	assert.Equal(t, CrisisMessage, store.text)
	assert.Equal(t, domain.ReflectionCompleted, store.status)
	assert.Zero(t, completer.Calls, "model must never be called on the crisis path")
}

func TestRunNoCredentialFallsBack(t *testing.T) {
	completer := &fakeCompleter{} // empty reply = fallback behavior
	store := &fakeStore{}
	orch := NewOrchestrator(completer, store)

	err := orch.Run(context.Background(), "entry-2", domain.ReflectionRequest{
		MoodLevel: 4,
		Note:      "tudo bem hoje",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReflectionCompleted, store.status)
	assert.Equal(t, TechniqueFor(domain.DomainGeneralLowMood).Fallback, store.text)
	assert.Equal(t, 1, completer.Calls)
}

func TestRunClassifiesAndPersistsModelText(t *testing.T) {
	completer := &fakeCompleter{Reply: "texto gerado"}
	store := &fakeStore{}
	orch := NewOrchestrator(completer, store)

	err := orch.Run(context.Background(), "entry-3", domain.ReflectionRequest{
		MoodLevel:         2,
		ContextualAnswers: domain.ContextualAnswers{"energy": "low"},
	})

	require.NoError(t, err)
	assert.Equal(t, "texto gerado", store.text)
	assert.Equal(t, domain.ReflectionCompleted, store.status)
}

func TestRunPersistFailureMarksFailed(t *testing.T) {
	completer := &fakeCompleter{Reply: "texto gerado"}
	store := &fakeStore{failSetReflection: true}
	orch := NewOrchestrator(completer, store)

	err := orch.Run(context.Background(), "entry-4", domain.ReflectionRequest{MoodLevel: 3})

	require.NoError(t, err, "a recorded failed status is a handled outcome")
	assert.Equal(t, domain.ReflectionFailed, store.status)
	assert.Empty(t, store.text)
}

func TestRunBothWritesFailing(t *testing.T) {
	store := &fakeStore{failSetReflection: true, failSetStatus: true}
	orch := NewOrchestrator(&fakeCompleter{Reply: "x"}, store)

	err := orch.Run(context.Background(), "entry-5", domain.ReflectionRequest{MoodLevel: 3})

	// The error surfaces only to the dispatcher's log; it must carry
	// the entry id for triage.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry-5")
}

func TestRunCrisisPersistFailureMarksFailed(t *testing.T) {
	completer := &fakeCompleter{}
	store := &fakeStore{failSetReflection: true}
	orch := NewOrchestrator(completer, store)

	err := orch.Run(context.Background(), "entry-6", domain.ReflectionRequest{
		MoodLevel: 1,
		Note:      "quero morrer",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReflectionFailed, store.status)
	assert.Zero(t, completer.Calls)
}

func TestRunTwiceIsDeterministic(t *testing.T) {
	completer := &fakeCompleter{Reply: "texto gerado"}
	store := &fakeStore{}
	orch := NewOrchestrator(completer, store)

	req := domain.ReflectionRequest{MoodLevel: 3, ContextualAnswers: domain.ContextualAnswers{"worry": true}}
	require.NoError(t, orch.Run(context.Background(), "entry-7", req))
	first := store.text
	require.NoError(t, orch.Run(context.Background(), "entry-7", req))

	assert.Equal(t, first, store.text, "second run overwrites with the same deterministic result")
	assert.Equal(t, domain.ReflectionCompleted, store.status)
}

func TestGenerateBuildsNotePlaceholder(t *testing.T) {
	p := BuildPrompt(domain.ReflectionRequest{MoodLevel: 3}, domain.DomainGeneralLowMood, TechniqueFor(domain.DomainGeneralLowMood))

	assert.Contains(t, p.User, "Nenhuma nota fornecida")
	assert.Contains(t, p.User, "Nível de Humor: 3/5")
	assert.Contains(t, p.System, "Autocompaixão")
	assert.False(t, strings.Contains(p.User, `""`), "no empty interpolation")
}
