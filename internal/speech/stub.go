package speech

import (
	"context"
	"log/slog"

	"podcast_producer/internal/audio"
)

// stubMSPerChar sizes stub audio so longer lines produce longer buffers.
const stubMSPerChar = 50

// Stub is a deterministic offline backend used when no speech API key is
// configured and in tests. It offers a fixed voice set and speaks silence.
type Stub struct {
	logger *slog.Logger
}

func NewStub(logger *slog.Logger) *Stub {
	return &Stub{logger: logger}
}

// ListVoices returns the fixed development voice set.
func (s *Stub) ListVoices(_ context.Context) ([]Voice, error) {
	return []Voice{
		{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel"},
		{ID: "ErXwobaYiN019PkySvjV", Name: "Adam"},
		{ID: "EXAVITQu4vr4xnSDxMaL", Name: "Nicole"},
		{ID: "D38z5RcWu1voky8WS1ja", Name: "Emily"},
		{ID: "VR6AewLTigWG4xSOukaG", Name: "Sam"},
	}, nil
}

// Speak returns silent audio proportional to the text length.
func (s *Stub) Speak(_ context.Context, text, voiceID string) ([]byte, error) {
	durationMS := len(text) * stubMSPerChar

	s.logger.Debug("stub synthesis",
		"voice", voiceID,
		"chars", len(text),
		"duration_ms", durationMS,
	)
	return audio.WrapPCM(audio.Silence(durationMS), audio.SampleRate)
}
