package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"podcast_producer/internal/domain"
)

// Assembler merges ordered audio buffers into a single artifact file. It
// prefers the precise sample-level path and falls back to byte
// concatenation when a buffer cannot be decoded.
type Assembler struct {
	precise  Merger
	degraded Merger
	logger   *slog.Logger
}

// NewAssembler builds an assembler. With preciseEnabled false the
// sample-level path is skipped entirely and every merge uses byte
// concatenation.
func NewAssembler(logger *slog.Logger, preciseEnabled bool) *Assembler {
	a := &Assembler{
		degraded: NewConcatMerger(),
		logger:   logger,
	}
	if preciseEnabled {
		a.precise = NewSampleMerger()
	}
	return a
}

// MergeToFile writes the merged audio to path. An I/O failure is fatal and
// wrapped as an artifact write error; a decode failure on the precise path
// is recovered by re-running the merge on the degraded path.
func (a *Assembler) MergeToFile(buffers [][]byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.ArtifactWriteError{Path: path, Err: err}
	}
	defer f.Close()

	if a.precise != nil {
		err := a.precise.Merge(buffers, f)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDecode) {
			return &domain.ArtifactWriteError{Path: path, Err: err}
		}

		a.logger.Warn("precise merge failed, falling back to concatenation",
			"path", path,
			"error", err,
		)
		if err := rewind(f); err != nil {
			return &domain.ArtifactWriteError{Path: path, Err: err}
		}
	}

	if err := a.degraded.Merge(buffers, f); err != nil {
		return &domain.ArtifactWriteError{Path: path, Err: err}
	}
	return nil
}

func rewind(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}
