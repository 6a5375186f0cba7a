package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnavailable marks a script or speech backend that is unreachable
// or rate limited. It is recovered locally with a degraded fallback and never
// fails a job by itself.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrDecode marks an audio buffer the precise merge path could not decode.
// The merge falls back to byte concatenation instead of failing.
var ErrDecode = errors.New("audio decode failed")

// ErrJobNotFound is returned by the job store for unknown ids.
var ErrJobNotFound = errors.New("job not found")

// ErrInvalidTransition is returned by the job store when a status update
// would move the lifecycle backwards or mutate a terminal job.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidVoiceError is fatal to a job: the requested voice id is not among
// the voices the speech backend offers.
type InvalidVoiceError struct {
	Voice     string
	Available []string
}

func (e *InvalidVoiceError) Error() string {
	return fmt.Sprintf("invalid voice id %q, available voices: %s",
		e.Voice, strings.Join(e.Available, ", "))
}

// ArtifactWriteError is fatal to a job: the final audio or its sidecar could
// not be written.
type ArtifactWriteError struct {
	Path string
	Err  error
}

func (e *ArtifactWriteError) Error() string {
	return fmt.Sprintf("write artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactWriteError) Unwrap() error {
	return e.Err
}
