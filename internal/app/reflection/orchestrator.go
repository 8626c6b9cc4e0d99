package reflection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
	"github.com/IgorKammerGrahl/MoodTrack/internal/observability"
)

// Orchestrator runs the reflection pipeline for one mood entry:
// crisis check, domain classification, technique selection, model call
// and status persistence.
type Orchestrator struct {
	completer domain.Completer
	entries   domain.EntryStore
}

func NewOrchestrator(completer domain.Completer, entries domain.EntryStore) *Orchestrator {
	return &Orchestrator{
		completer: completer,
		entries:   entries,
	}
}

// Generate produces the reflection text for a request without touching
// the store. The crisis check runs before anything else: a flagged note
// returns the safety message and the model is never called.
func (o *Orchestrator) Generate(ctx context.Context, req domain.ReflectionRequest) string {
	if DetectCrisis(req.Note) {
		return CrisisMessage
	}

	label := ClassifyDomain(req.ContextualAnswers)
	tech := TechniqueFor(label)
	p := BuildPrompt(req, label, tech)

	return o.completer.Complete(ctx, p.System, p.User, tech.Fallback)
}

// Run executes one reflection for the entry and records a terminal
// status. Failures never propagate as the model's or store's raw
// errors to the creating request; a non-nil return means even the
// corrective failed-status write could not be recorded, and is only
// consumed by the Dispatcher's log.
func (o *Orchestrator) Run(ctx context.Context, entryID domain.EntryID, req domain.ReflectionRequest) error {
	log := observability.EntryLogger(ctx, string(entryID))

	if DetectCrisis(req.Note) {
		if err := o.entries.SetReflection(ctx, entryID, CrisisMessage, domain.ReflectionCompleted); err != nil {
			// This write failing defeats the safety guarantee.
			log.Error("CRITICAL: crisis response could not be persisted", "error", err)
			return o.markFailed(ctx, entryID, log)
		}
		log.Info("crisis response persisted", "status", domain.ReflectionCompleted)
		return nil
	}

	label := ClassifyDomain(req.ContextualAnswers)
	tech := TechniqueFor(label)
	p := BuildPrompt(req, label, tech)

	text := o.completer.Complete(ctx, p.System, p.User, tech.Fallback)

	if err := o.entries.SetReflection(ctx, entryID, text, domain.ReflectionCompleted); err != nil {
		log.Error("failed to persist reflection", "error", err)
		return o.markFailed(ctx, entryID, log)
	}

	log.Info("reflection completed", "domain", label, "technique", tech.Name)
	return nil
}

// markFailed attempts the corrective failed-status write after a
// persistence error. If that also fails there is nothing left to do
// but report it upward for the Dispatcher to log.
func (o *Orchestrator) markFailed(ctx context.Context, entryID domain.EntryID, log *slog.Logger) error {
	if err := o.entries.SetReflectionStatus(ctx, entryID, domain.ReflectionFailed); err != nil {
		log.Error("failed to record failed status", "error", err)
		return fmt.Errorf("entry %s: recording failed status: %w", entryID, err)
	}
	log.Info("entry marked failed")
	return nil
}
