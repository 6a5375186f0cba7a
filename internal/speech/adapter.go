package speech

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"podcast_producer/internal/domain"
)

// Adapter wraps a Backend with voice validation. The voice list is fetched
// once per adapter instance and cached; construct one adapter per job run.
type Adapter struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	voices []Voice
	loaded bool
}

func NewAdapter(backend Backend, logger *slog.Logger) *Adapter {
	return &Adapter{
		backend: backend,
		logger:  logger,
	}
}

// Voices returns the cached voice list, fetching it on first use.
func (a *Adapter) Voices(ctx context.Context) ([]Voice, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded {
		return a.voices, nil
	}

	voices, err := a.backend.ListVoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}

	a.voices = voices
	a.loaded = true
	return voices, nil
}

// ValidateVoice reports whether the backend offers the given voice id. An
// unknown id yields a domain.InvalidVoiceError enumerating valid voices.
func (a *Adapter) ValidateVoice(ctx context.Context, voiceID string) error {
	voices, err := a.Voices(ctx)
	if err != nil {
		return err
	}

	available := make([]string, 0, len(voices))
	for _, v := range voices {
		if v.ID == voiceID {
			return nil
		}
		available = append(available, fmt.Sprintf("%s (%s)", v.Name, v.ID))
	}

	return &domain.InvalidVoiceError{Voice: voiceID, Available: available}
}

// Synthesize renders one line of text. The voice id must be present in the
// cached voice list.
func (a *Adapter) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if err := a.ValidateVoice(ctx, voiceID); err != nil {
		return nil, err
	}

	buf, err := a.backend.Speak(ctx, text, voiceID)
	if err != nil {
		return nil, fmt.Errorf("speak: %w", err)
	}

	a.logger.Debug("synthesized line",
		"voice", voiceID,
		"chars", len(text),
		"bytes", len(buf),
	)
	return buf, nil
}
