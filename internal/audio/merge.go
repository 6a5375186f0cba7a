package audio

import (
	"bytes"
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"podcast_producer/internal/domain"
)

// GapMS is the silence inserted between consecutive non-empty buffers.
const GapMS = 300

// concatGapBytes approximates the 300 ms gap on the degraded path. It is a
// raw zero-byte filler sized for the nominal 44.1 kHz rate and is not
// validated against the actual encoding of the concatenated buffers; the
// result can be a technically malformed container. Known limitation.
const concatGapBytes = 13230

// Merger merges an ordered sequence of audio buffers into one output
// stream. Implementations must preserve input order and insert the fixed
// gap between consecutive non-empty buffers only.
type Merger interface {
	Merge(buffers [][]byte, w io.WriteSeeker) error
}

// SampleMerger is the precise path: it decodes each WAV buffer,
// concatenates at the sample level with true silence in between, and
// encodes the result once.
type SampleMerger struct{}

func NewSampleMerger() *SampleMerger {
	return &SampleMerger{}
}

func (m *SampleMerger) Merge(buffers [][]byte, w io.WriteSeeker) error {
	nonEmpty := dropEmpty(buffers)

	sampleRate := SampleRate
	channels := NumChannels

	// Decode everything up front so a bad buffer is detected before any
	// output is written and the caller can still fall back.
	decoded := make([]*gaudio.IntBuffer, 0, len(nonEmpty))
	for i, b := range nonEmpty {
		buf, err := decodeWAV(b)
		if err != nil {
			return fmt.Errorf("buffer %d: %w: %v", i, domain.ErrDecode, err)
		}
		decoded = append(decoded, buf)
	}
	if len(decoded) > 0 {
		sampleRate = decoded[0].Format.SampleRate
		channels = decoded[0].Format.NumChannels
	}

	gap := make([]int, GapMS*sampleRate/1000*channels)

	var data []int
	for i, buf := range decoded {
		if i > 0 {
			data = append(data, gap...)
		}
		data = append(data, buf.Data...)
	}

	out := gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, BitDepth, channels, 1)
	if err := enc.Write(&out); err != nil {
		return fmt.Errorf("encode merged audio: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

func decodeWAV(b []byte) (*gaudio.IntBuffer, error) {
	dec := wav.NewDecoder(bytes.NewReader(b))
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav container")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read pcm: %w", err)
	}
	return buf, nil
}

// ConcatMerger is the degraded path: it byte-concatenates buffers with a
// fixed zero filler between them and never inspects buffer contents.
type ConcatMerger struct{}

func NewConcatMerger() *ConcatMerger {
	return &ConcatMerger{}
}

func (m *ConcatMerger) Merge(buffers [][]byte, w io.WriteSeeker) error {
	gap := make([]byte, concatGapBytes)

	for i, b := range dropEmpty(buffers) {
		if i > 0 {
			if _, err := w.Write(gap); err != nil {
				return fmt.Errorf("write gap: %w", err)
			}
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write buffer: %w", err)
		}
	}
	return nil
}

func dropEmpty(buffers [][]byte) [][]byte {
	out := make([][]byte, 0, len(buffers))
	for _, b := range buffers {
		if len(b) > 0 {
			out = append(out, b)
		}
	}
	return out
}
