package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast_producer/internal/domain"
)

// wavOf wraps the given constant-valued samples in a WAV container.
func wavOf(t *testing.T, value int16, numSamples int) []byte {
	t.Helper()

	pcm := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(value))
	}

	buf, err := WrapPCM(pcm, SampleRate)
	require.NoError(t, err)
	return buf
}

func decodeSamples(t *testing.T, b []byte) []int {
	t.Helper()

	dec := wav.NewDecoder(bytes.NewReader(b))
	require.True(t, dec.IsValidFile())
	pcmBuf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return pcmBuf.Data
}

func TestSampleMerger_OrderAndGap(t *testing.T) {
	first := wavOf(t, 1000, 100)
	second := wavOf(t, -2000, 50)

	var out seekBuffer
	err := NewSampleMerger().Merge([][]byte{first, second}, &out)
	require.NoError(t, err)

	data := decodeSamples(t, out.buf)

	gapSamples := GapMS * SampleRate / 1000
	require.Len(t, data, 100+gapSamples+50)

	for i := 0; i < 100; i++ {
		require.Equal(t, 1000, data[i], "sample %d", i)
	}
	for i := 100; i < 100+gapSamples; i++ {
		require.Zero(t, data[i], "gap sample %d", i)
	}
	for i := 100 + gapSamples; i < len(data); i++ {
		require.Equal(t, -2000, data[i], "sample %d", i)
	}
}

func TestSampleMerger_SingleBufferNoGap(t *testing.T) {
	var out seekBuffer
	err := NewSampleMerger().Merge([][]byte{wavOf(t, 42, 10)}, &out)
	require.NoError(t, err)

	assert.Len(t, decodeSamples(t, out.buf), 10)
}

func TestSampleMerger_DropsEmptyBuffers(t *testing.T) {
	var out seekBuffer
	err := NewSampleMerger().Merge([][]byte{nil, wavOf(t, 1, 10), {}, wavOf(t, 2, 10)}, &out)
	require.NoError(t, err)

	// One gap only: the empties contribute nothing.
	assert.Len(t, decodeSamples(t, out.buf), 10+GapMS*SampleRate/1000+10)
}

func TestSampleMerger_GarbageBufferFailsBeforeWriting(t *testing.T) {
	var out seekBuffer
	err := NewSampleMerger().Merge([][]byte{wavOf(t, 1, 10), []byte("not audio at all")}, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Empty(t, out.buf, "no partial output on decode failure")
}

func TestConcatMerger_ByteLayout(t *testing.T) {
	b1 := []byte("first-buffer")
	b2 := []byte("second-buffer")

	var out seekBuffer
	err := NewConcatMerger().Merge([][]byte{b1, b2}, &out)
	require.NoError(t, err)

	want := append(append(append([]byte{}, b1...), make([]byte, concatGapBytes)...), b2...)
	assert.Equal(t, want, out.buf)
}

func TestConcatMerger_DropsEmptyBuffers(t *testing.T) {
	b := []byte("only")

	var out seekBuffer
	err := NewConcatMerger().Merge([][]byte{nil, b, {}}, &out)
	require.NoError(t, err)

	assert.Equal(t, b, out.buf)
}

func TestConcatMerger_NoBuffers(t *testing.T) {
	var out seekBuffer
	err := NewConcatMerger().Merge(nil, &out)
	require.NoError(t, err)

	assert.Empty(t, out.buf)
}
