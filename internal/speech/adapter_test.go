package speech

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast_producer/internal/domain"
)

type fakeBackend struct {
	voices     []Voice
	listErr    error
	listCalls  int
	speakErr   error
	speakCalls int
}

func (f *fakeBackend) ListVoices(_ context.Context) ([]Voice, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.voices, nil
}

func (f *fakeBackend) Speak(_ context.Context, text, _ string) ([]byte, error) {
	f.speakCalls++
	if f.speakErr != nil {
		return nil, f.speakErr
	}
	return []byte(text), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAdapter_VoicesCachedPerInstance(t *testing.T) {
	backend := &fakeBackend{voices: []Voice{{ID: "v1", Name: "Rachel"}}}
	a := NewAdapter(backend, testLogger())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		voices, err := a.Voices(ctx)
		require.NoError(t, err)
		require.Len(t, voices, 1)
	}

	assert.Equal(t, 1, backend.listCalls)
}

func TestAdapter_ListFailureNotCached(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("unreachable")}
	a := NewAdapter(backend, testLogger())

	ctx := context.Background()
	_, err := a.Voices(ctx)
	require.Error(t, err)

	backend.listErr = nil
	backend.voices = []Voice{{ID: "v1", Name: "Rachel"}}

	voices, err := a.Voices(ctx)
	require.NoError(t, err)
	assert.Len(t, voices, 1)
	assert.Equal(t, 2, backend.listCalls)
}

func TestAdapter_ValidateVoice(t *testing.T) {
	backend := &fakeBackend{voices: []Voice{
		{ID: "v1", Name: "Rachel"},
		{ID: "v2", Name: "Adam"},
	}}
	a := NewAdapter(backend, testLogger())

	ctx := context.Background()
	assert.NoError(t, a.ValidateVoice(ctx, "v1"))
	assert.NoError(t, a.ValidateVoice(ctx, "v2"))

	err := a.ValidateVoice(ctx, "nope")
	var invalid *domain.InvalidVoiceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "nope", invalid.Voice)
	assert.Equal(t, []string{"Rachel (v1)", "Adam (v2)"}, invalid.Available)
	assert.Contains(t, err.Error(), "Rachel (v1)")
}

func TestAdapter_SynthesizeValidatesFirst(t *testing.T) {
	backend := &fakeBackend{voices: []Voice{{ID: "v1", Name: "Rachel"}}}
	a := NewAdapter(backend, testLogger())

	ctx := context.Background()

	_, err := a.Synthesize(ctx, "hello", "unknown")
	var invalid *domain.InvalidVoiceError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, backend.speakCalls)

	buf, err := a.Synthesize(ctx, "hello", "v1")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), buf)
	assert.Equal(t, 1, backend.speakCalls)
}

func TestAdapter_SynthesizeWrapsSpeakError(t *testing.T) {
	backend := &fakeBackend{
		voices:   []Voice{{ID: "v1", Name: "Rachel"}},
		speakErr: domain.ErrSourceUnavailable,
	}
	a := NewAdapter(backend, testLogger())

	_, err := a.Synthesize(context.Background(), "hello", "v1")
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
