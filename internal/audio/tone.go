package audio

import (
	"encoding/binary"
	"math"
)

// Audio parameters shared by the tone generator and the fallback buffers.
// Everything in this package is 16-bit little-endian mono PCM.
const (
	SampleRate  = 44100
	BitDepth    = 16
	NumChannels = 1

	toneAmplitude = 0.5
	maxFadeMS     = 100
)

// FadeMS returns the fade-in/out length applied to a tone of the given
// duration: a tenth of the duration, capped at 100 ms.
func FadeMS(durationMS int) int {
	fade := durationMS / 10
	if fade > maxFadeMS {
		fade = maxFadeMS
	}
	return fade
}

// Tone generates a mono sine wave as raw PCM with linear fade-in and
// fade-out. Output is deterministic for a given (duration, frequency) pair.
func Tone(durationMS int, frequencyHz float64) []byte {
	numSamples := durationMS * SampleRate / 1000
	samples := make([]int16, numSamples)

	for i := range samples {
		v := toneAmplitude * math.Sin(2*math.Pi*frequencyHz*float64(i)/SampleRate)
		samples[i] = int16(v * math.MaxInt16)
	}

	fadeSamples := FadeMS(durationMS) * SampleRate / 1000
	if fadeSamples > numSamples/2 {
		fadeSamples = numSamples / 2
	}
	for i := 0; i < fadeSamples; i++ {
		factor := float64(i) / float64(fadeSamples)
		samples[i] = int16(factor * float64(samples[i]))
		samples[numSamples-1-i] = int16(factor * float64(samples[numSamples-1-i]))
	}

	out := make([]byte, numSamples*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// Silence generates raw PCM silence of the given duration.
func Silence(durationMS int) []byte {
	return make([]byte, durationMS*SampleRate/1000*2)
}

const (
	fallbackToneMS = 500
	fallbackToneHz = 440
)

// FallbackTone is the short buffer substituted for a line whose synthesis
// failed, wrapped in a WAV container like every other pipeline buffer.
func FallbackTone() []byte {
	buf, err := WrapPCM(Tone(fallbackToneMS, fallbackToneHz), SampleRate)
	if err != nil {
		return Tone(fallbackToneMS, fallbackToneHz)
	}
	return buf
}
