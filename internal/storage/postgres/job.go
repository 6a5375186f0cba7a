package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podcast_producer/internal/domain"
)

// JobStore persists job records. Writes are per-id upserts: a duplicate
// submission of the same id is last-write-wins and needs no cross-job lock.
type JobStore struct {
	db *sqlx.DB
}

func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

type jobRow struct {
	ID                    string         `db:"id"`
	Topics                pq.StringArray `db:"topics"`
	TargetDurationSeconds int            `db:"target_duration_seconds"`
	HostVoice             string         `db:"host_voice"`
	CoHostVoice           string         `db:"co_host_voice"`
	Language              string         `db:"language"`
	Status                string         `db:"status"`
	Message               *string        `db:"message"`
	Transcript            *string        `db:"transcript"`
	AudioURL              *string        `db:"audio_url"`
	Metadata              []byte         `db:"metadata"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

// Upsert inserts the job or, on a duplicate id, overwrites its request
// fields and status.
func (s *JobStore) Upsert(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			id, topics, target_duration_seconds, host_voice, co_host_voice,
			language, status, message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			topics = EXCLUDED.topics,
			target_duration_seconds = EXCLUDED.target_duration_seconds,
			host_voice = EXCLUDED.host_voice,
			co_host_voice = EXCLUDED.co_host_voice,
			language = EXCLUDED.language,
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			updated_at = now()`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		pq.StringArray(job.Topics),
		job.TargetDurationSeconds,
		job.HostVoice,
		job.CoHostVoice,
		job.Language,
		string(job.Status),
		job.Message,
	)
	if err != nil {
		return fmt.Errorf("upsert job: %w", err)
	}
	return nil
}

// UpdateStatus applies a partial update. Nil fields keep their stored
// values. The write is guarded by the status lifecycle: the row is only
// touched when its current status may move to the requested one, so the
// lifecycle never reverses and terminal jobs stay immutable.
func (s *JobStore) UpdateStatus(ctx context.Context, id string, upd domain.JobUpdate) error {
	var metadata []byte
	if upd.Metadata != nil {
		var err error
		metadata, err = json.Marshal(upd.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
	}

	query := `
		UPDATE jobs SET
			status = $2,
			message = COALESCE($3, message),
			transcript = COALESCE($4, transcript),
			audio_url = COALESCE($5, audio_url),
			metadata = COALESCE($6, metadata),
			updated_at = now()
		WHERE id = $1 AND status = ANY($7)`

	res, err := s.db.ExecContext(ctx, query,
		id,
		string(upd.Status),
		upd.Message,
		upd.Transcript,
		upd.AudioURL,
		metadata,
		allowedFrom(upd.Status),
	)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		if err := s.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)", id); err != nil {
			return fmt.Errorf("check job exists: %w", err)
		}
		if !exists {
			return domain.ErrJobNotFound
		}
		return fmt.Errorf("to %s: %w", upd.Status, domain.ErrInvalidTransition)
	}
	return nil
}

// allowedFrom lists the statuses a stored job may hold for a write of the
// target status to be accepted: every status the lifecycle admits, plus an
// idempotent rewrite of the same non-terminal status (partial updates while
// processing).
func allowedFrom(target domain.JobStatus) pq.StringArray {
	all := []domain.JobStatus{
		domain.StatusQueued,
		domain.StatusProcessing,
		domain.StatusCompleted,
		domain.StatusFailed,
	}

	var from pq.StringArray
	for _, s := range all {
		if domain.CanTransition(s, target) || (s == target && !s.Terminal()) {
			from = append(from, string(s))
		}
	}
	return from
}

// Get loads one job by id.
func (s *JobStore) Get(ctx context.Context, id string) (*domain.Job, error) {
	var row jobRow
	query := `
		SELECT id, topics, target_duration_seconds, host_voice, co_host_voice,
		       language, status, message, transcript, audio_url, metadata,
		       created_at, updated_at
		FROM jobs
		WHERE id = $1`

	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	return row.toDomain()
}

func (r *jobRow) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		ID:                    r.ID,
		Topics:                r.Topics,
		TargetDurationSeconds: r.TargetDurationSeconds,
		HostVoice:             r.HostVoice,
		CoHostVoice:           r.CoHostVoice,
		Language:              r.Language,
		Status:                domain.JobStatus(r.Status),
		Message:               r.Message,
		Transcript:            r.Transcript,
		AudioURL:              r.AudioURL,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}

	if len(r.Metadata) > 0 {
		var meta domain.Metadata
		if err := json.Unmarshal(r.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		job.Metadata = &meta
	}

	return job, nil
}
