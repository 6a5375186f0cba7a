package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"podcast_producer/internal/domain"
)

// JobStore is the authoritative record of job state. Writes are per-id
// upserts with last-write-wins semantics; partial updates must not clobber
// unspecified fields.
type JobStore interface {
	Upsert(ctx context.Context, job *domain.Job) error
	UpdateStatus(ctx context.Context, id string, upd domain.JobUpdate) error
}

// DocumentSource fetches raw source material for topics. An empty result is
// valid.
type DocumentSource interface {
	FetchDocuments(ctx context.Context, topics []string) ([]domain.Document, error)
}

// ScriptAssembler turns topics and documents into segments, a transcript
// and episode metadata.
type ScriptAssembler interface {
	Assemble(ctx context.Context, topics []string, docs []domain.Document, targetDurationSeconds int) (*domain.Script, error)
}

// SpeechSynthesizer renders one line of text as an audio buffer and
// validates voice ids against the backend's voice list.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	ValidateVoice(ctx context.Context, voiceID string) error
}

// ArtifactStore owns the on-disk outputs of a job.
type ArtifactStore interface {
	AudioPath(id string) string
	AudioURL(id string) string
	WriteSidecar(id string, meta *domain.Metadata, transcript string) error
	CreateMarker(id string) error
	RemoveMarker(id string) error
}

// AudioMerger merges ordered audio buffers into one artifact file.
type AudioMerger interface {
	MergeToFile(buffers [][]byte, path string) error
}

// EventPublisher emits job lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.JobEvent) error
	Close() error
}
