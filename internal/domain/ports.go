package domain

import "context"

// CompletionClient is the remote text-completion service. It takes a system
// instruction and the raw user message and returns the model's reply text.
type CompletionClient interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// Extractor turns one free-text message into a Reservation. Implementations
// must never fail: on any internal error they return a best-effort record.
type Extractor interface {
	Extract(ctx context.Context, message string) Reservation
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
