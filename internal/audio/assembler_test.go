package audio

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast_producer/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAssembler_PreciseMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp3")
	a := NewAssembler(testLogger(), true)

	buffers := [][]byte{wavOf(t, 100, 20), wavOf(t, 200, 20)}
	require.NoError(t, a.MergeToFile(buffers, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	samples := decodeSamples(t, data)
	assert.Len(t, samples, 20+GapMS*SampleRate/1000+20)
}

func TestAssembler_FallsBackOnUndecodableBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp3")
	a := NewAssembler(testLogger(), true)

	garbage := []byte("not a wav container")
	good := wavOf(t, 100, 20)

	require.NoError(t, a.MergeToFile([][]byte{good, garbage}, path))

	// Degraded output: raw byte concatenation with the fixed filler.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := append(append(append([]byte{}, good...), make([]byte, concatGapBytes)...), garbage...)
	assert.Equal(t, want, data)
}

func TestAssembler_PreciseDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp3")
	a := NewAssembler(testLogger(), false)

	b1 := []byte("one")
	b2 := []byte("two")
	require.NoError(t, a.MergeToFile([][]byte{b1, b2}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := append(append(append([]byte{}, b1...), make([]byte, concatGapBytes)...), b2...)
	assert.Equal(t, want, data)
}

func TestAssembler_UnwritablePath(t *testing.T) {
	a := NewAssembler(testLogger(), true)

	err := a.MergeToFile([][]byte{wavOf(t, 1, 10)}, filepath.Join(t.TempDir(), "missing", "out.mp3"))

	var writeErr *domain.ArtifactWriteError
	require.ErrorAs(t, err, &writeErr)
}
