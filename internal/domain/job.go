package domain

import "time"

// JobStatus is the lifecycle state of a podcast generation job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// CanTransition reports whether a status change is allowed. The lifecycle
// only moves forward: queued -> processing -> completed|failed.
func CanTransition(from, to JobStatus) bool {
	switch from {
	case StatusQueued:
		return to == StatusProcessing || to == StatusFailed
	case StatusProcessing:
		return to == StatusCompleted || to == StatusFailed
	default:
		return false
	}
}

// Terminal reports whether a job in this status is immutable.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// JobRequest is the input accepted by the orchestrator. It arrives on the
// intake queue from the admission layer.
type JobRequest struct {
	ID                    string   `json:"id"`
	Topics                []string `json:"topics"`
	TargetDurationSeconds int      `json:"target_duration_seconds"`
	HostVoice             string   `json:"host_voice"`
	CoHostVoice           string   `json:"co_host_voice"`
	Language              string   `json:"language"`
}

// Job is one podcast generation request and its persisted state.
type Job struct {
	ID                    string
	Topics                []string
	TargetDurationSeconds int
	HostVoice             string
	CoHostVoice           string
	Language              string
	Status                JobStatus
	Message               *string
	Transcript            *string
	AudioURL              *string
	Metadata              *Metadata
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// JobUpdate is a partial update applied to a persisted job. Nil fields are
// left untouched by the store.
type JobUpdate struct {
	Status     JobStatus
	Message    *string
	Transcript *string
	AudioURL   *string
	Metadata   *Metadata
}

// JobEvent is published on the events exchange when a job reaches a
// terminal status.
type JobEvent struct {
	JobID     string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Message   string    `json:"message,omitempty"`
	AudioURL  string    `json:"audio_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
