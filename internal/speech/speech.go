// Package speech converts script lines into audio buffers.
//
// A Backend is one concrete speech provider; the Adapter wraps a backend
// with per-instance voice caching and validation so a job fails fast on an
// unknown voice instead of burning synthesis calls.
package speech

import "context"

// Voice is one selectable speaker offered by a backend.
type Voice struct {
	ID   string `json:"voice_id"`
	Name string `json:"name"`
}

// Backend is a text-to-speech provider.
type Backend interface {
	// Speak renders one line of text with the given voice and returns an
	// encoded audio buffer.
	Speak(ctx context.Context, text, voiceID string) ([]byte, error)

	// ListVoices returns the voices this backend can speak with.
	ListVoices(ctx context.Context) ([]Voice, error)
}
