package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WrapPCM wraps raw 16-bit LE mono PCM in a WAV container so buffers from
// the tone generator and the speech backend are self-contained.
func WrapPCM(pcm []byte, sampleRate int) ([]byte, error) {
	buf := gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           pcmToInts(pcm),
		SourceBitDepth: BitDepth,
	}

	var sb seekBuffer
	enc := wav.NewEncoder(&sb, sampleRate, BitDepth, NumChannels, 1)
	if err := enc.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close wav encoder: %w", err)
	}
	return sb.buf, nil
}

func pcmToInts(pcm []byte) []int {
	data := make([]int, len(pcm)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}
	return data
}

// seekBuffer is an in-memory io.WriteSeeker for the WAV encoder, which
// seeks back to patch chunk sizes on Close.
type seekBuffer struct {
	buf []byte
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	if need := s.pos + len(p); need > len(s.buf) {
		grown := make([]byte, need)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:], p)
	s.pos += len(p)
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(s.pos) + offset
	case io.SeekEnd:
		pos = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("negative seek position")
	}
	s.pos = int(pos)
	return pos, nil
}
