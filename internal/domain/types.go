package domain

import "time"

type UserID string
type EntryID string

// ReflectionStatus tracks the lifecycle of an entry's AI reflection.
// Transitions are forward-only: none -> pending -> completed|failed.
type ReflectionStatus string

const (
	ReflectionNone      ReflectionStatus = "none"
	ReflectionPending   ReflectionStatus = "pending"
	ReflectionCompleted ReflectionStatus = "completed"
	ReflectionFailed    ReflectionStatus = "failed"
)

// DomainLabel is a coarse psychological category inferred from the
// contextual follow-up answers of a mood entry.
type DomainLabel string

const (
	DomainAnhedonia            DomainLabel = "anhedonia"
	DomainExcessiveWorry       DomainLabel = "excessive_worry"
	DomainFatigue              DomainLabel = "fatigue"
	DomainCognitiveDysfunction DomainLabel = "cognitive_dysfunction"
	DomainGeneralLowMood       DomainLabel = "general_low_mood"
)

type Timestamp = time.Time
