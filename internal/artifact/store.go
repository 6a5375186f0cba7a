// Package artifact manages the on-disk outputs of a job: the final audio
// file, a JSON sidecar with metadata and transcript, and an advisory
// processing marker.
//
// The marker only signals that a job is in flight; the job store is the
// authoritative record. A marker orphaned by process death means
// "processing, unknown liveness", not "failed".
package artifact

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"podcast_producer/internal/domain"
)

const (
	audioExt   = ".mp3"
	sidecarExt = ".json"
	markerExt  = ".processing"
)

// Store keeps job artifacts under one base directory, keyed by job id.
type Store struct {
	baseDir string
	baseURL string
	logger  *slog.Logger
}

// NewStore creates the base directory if needed.
func NewStore(baseDir, baseURL string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Store{
		baseDir: baseDir,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// AudioPath is the filesystem location of the job's final audio.
func (s *Store) AudioPath(id string) string {
	return filepath.Join(s.baseDir, id+audioExt)
}

// AudioURL is the location handed to callers once the job completes.
func (s *Store) AudioURL(id string) string {
	return s.baseURL + "/" + id + audioExt
}

type sidecar struct {
	Metadata   *domain.Metadata `json:"metadata"`
	Transcript string           `json:"transcript"`
}

// WriteSidecar persists metadata and transcript next to the audio file so a
// crash after script assembly still leaves recoverable textual output.
func (s *Store) WriteSidecar(id string, meta *domain.Metadata, transcript string) error {
	path := filepath.Join(s.baseDir, id+sidecarExt)

	data, err := json.MarshalIndent(sidecar{Metadata: meta, Transcript: transcript}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sidecar: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &domain.ArtifactWriteError{Path: path, Err: err}
	}
	return nil
}

// ReadSidecar loads a previously written sidecar.
func (s *Store) ReadSidecar(id string) (*domain.Metadata, string, error) {
	path := filepath.Join(s.baseDir, id+sidecarExt)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read sidecar: %w", err)
	}

	var sc sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, "", fmt.Errorf("unmarshal sidecar: %w", err)
	}
	return sc.Metadata, sc.Transcript, nil
}

// CreateMarker writes the advisory processing marker.
func (s *Store) CreateMarker(id string) error {
	path := filepath.Join(s.baseDir, id+markerExt)
	if err := os.WriteFile(path, []byte("processing"), 0o644); err != nil {
		return &domain.ArtifactWriteError{Path: path, Err: err}
	}
	return nil
}

// RemoveMarker deletes the marker. A missing marker is not an error.
func (s *Store) RemoveMarker(id string) error {
	path := filepath.Join(s.baseDir, id+markerExt)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove marker: %w", err)
	}
	return nil
}

// MarkerExists reports whether a processing marker is present.
func (s *Store) MarkerExists(id string) bool {
	_, err := os.Stat(filepath.Join(s.baseDir, id+markerExt))
	return err == nil
}
