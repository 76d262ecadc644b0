package domain

import "context"

// StyleSource provides pizza style presets. Implementations can be in-memory
// (hardcoded), file-based, or API-backed.
type StyleSource interface {
	List(ctx context.Context) ([]StyleSummary, error)
	Get(ctx context.Context, id string) (*StylePreset, error)
	// Defaults returns the preset's default parameters, falling back to the
	// custom style for unknown ids. Never an error.
	Defaults(ctx context.Context, id string) RecipeParameters
}

// KVStore is a small key-value persistence port for the timer snapshot and
// user preferences. Implementations can be in-memory, SQLite, or any other
// single-record backend.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, play a chime, or both.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// IntentParser converts raw user input into an intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
