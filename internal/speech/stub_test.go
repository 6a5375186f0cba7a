package speech

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast_producer/internal/audio"
)

func TestStub_ListVoices(t *testing.T) {
	voices, err := NewStub(testLogger()).ListVoices(context.Background())

	require.NoError(t, err)
	require.Len(t, voices, 5)

	names := make([]string, len(voices))
	for i, v := range voices {
		names[i] = v.Name
		assert.NotEmpty(t, v.ID)
	}
	assert.Equal(t, []string{"Rachel", "Adam", "Nicole", "Emily", "Sam"}, names)
}

func TestStub_SpeakScalesWithText(t *testing.T) {
	s := NewStub(testLogger())
	ctx := context.Background()

	short, err := s.Speak(ctx, "hi", "21m00Tcm4TlvDq8ikWAM")
	require.NoError(t, err)
	long, err := s.Speak(ctx, "a considerably longer line of dialogue", "21m00Tcm4TlvDq8ikWAM")
	require.NoError(t, err)

	assert.Greater(t, len(long), len(short))
}

func TestStub_SpeakProducesValidWAV(t *testing.T) {
	buf, err := NewStub(testLogger()).Speak(context.Background(), "hello", "ErXwobaYiN019PkySvjV")
	require.NoError(t, err)

	dec := wav.NewDecoder(bytes.NewReader(buf))
	require.True(t, dec.IsValidFile())

	pcmBuf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, audio.SampleRate, pcmBuf.Format.SampleRate)

	// 5 chars at 50 ms each.
	assert.Len(t, pcmBuf.Data, 250*audio.SampleRate/1000)
	for _, s := range pcmBuf.Data {
		require.Zero(t, s)
	}
}
