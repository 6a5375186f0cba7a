// Package service drives the podcast generation pipeline for one job:
// script production, per-line speech synthesis and final audio assembly,
// with the job's persisted status kept consistent with what is on disk.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"podcast_producer/internal/audio"
	"podcast_producer/internal/domain"
	"podcast_producer/internal/script"
)

// Orchestrator runs one job end to end and owns its state machine. All
// collaborators are injected; the orchestrator itself holds no mutable
// state, so one instance can serve concurrent jobs.
type Orchestrator struct {
	jobs      JobStore
	docs      DocumentSource
	scripts   ScriptAssembler
	speech    SpeechSynthesizer
	artifacts ArtifactStore
	merger    AudioMerger
	events    EventPublisher
	logger    *slog.Logger
}

func NewOrchestrator(
	jobs JobStore,
	docs DocumentSource,
	scripts ScriptAssembler,
	speech SpeechSynthesizer,
	artifacts ArtifactStore,
	merger AudioMerger,
	events EventPublisher,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		jobs:      jobs,
		docs:      docs,
		scripts:   scripts,
		speech:    speech,
		artifacts: artifacts,
		merger:    merger,
		events:    events,
		logger:    logger,
	}
}

// Run executes the whole pipeline for one job. It never returns an error:
// any fault ends with the job persisted as failed, and a job is never left
// in processing when a fault is observed.
func (o *Orchestrator) Run(ctx context.Context, req domain.JobRequest) {
	logger := o.logger.With("job_id", req.ID)
	start := time.Now()

	logger.Info("starting job",
		"topics", req.Topics,
		"duration", req.TargetDurationSeconds,
	)

	job := &domain.Job{
		ID:                    req.ID,
		Topics:                req.Topics,
		TargetDurationSeconds: req.TargetDurationSeconds,
		HostVoice:             req.HostVoice,
		CoHostVoice:           req.CoHostVoice,
		Language:              req.Language,
		Status:                domain.StatusProcessing,
	}
	if err := o.jobs.Upsert(ctx, job); err != nil {
		// The marker below still tells status readers the job is in
		// flight; the store is retried on the terminal write.
		logger.Error("persist processing status failed", "error", err)
	}
	if err := o.artifacts.CreateMarker(req.ID); err != nil {
		logger.Warn("create processing marker failed", "error", err)
	}

	scr, audioURL, err := o.generate(ctx, req, logger)
	if err != nil {
		o.fail(ctx, req.ID, err, logger)
		return
	}

	o.complete(ctx, req.ID, scr, audioURL, logger)
	logger.Info("job completed", "duration", time.Since(start))
}

// generate performs the fallible pipeline steps and returns the assembled
// script and the artifact location.
func (o *Orchestrator) generate(ctx context.Context, req domain.JobRequest, logger *slog.Logger) (*domain.Script, string, error) {
	if err := o.validateVoices(ctx, req, logger); err != nil {
		return nil, "", err
	}

	docs, err := o.docs.FetchDocuments(ctx, req.Topics)
	if err != nil {
		return nil, "", fmt.Errorf("fetch documents: %w", err)
	}
	logger.Info("fetched source material", "documents", len(docs))

	scr, err := o.scripts.Assemble(ctx, req.Topics, docs, req.TargetDurationSeconds)
	if err != nil {
		return nil, "", fmt.Errorf("assemble script: %w", err)
	}

	// Textual output is persisted before any synthesis so a crash from
	// here on still leaves the transcript recoverable.
	if err := o.artifacts.WriteSidecar(req.ID, &scr.Metadata, scr.Transcript); err != nil {
		return nil, "", err
	}
	if err := o.jobs.UpdateStatus(ctx, req.ID, domain.JobUpdate{
		Status:     domain.StatusProcessing,
		Transcript: &scr.Transcript,
		Metadata:   &scr.Metadata,
	}); err != nil {
		logger.Warn("persist transcript failed", "error", err)
	}

	buffers := o.synthesize(ctx, req, scr, logger)
	logger.Info("synthesized audio", "buffers", len(buffers))

	path := o.artifacts.AudioPath(req.ID)
	if err := o.merger.MergeToFile(buffers, path); err != nil {
		return nil, "", fmt.Errorf("merge audio: %w", err)
	}

	return scr, o.artifacts.AudioURL(req.ID), nil
}

// validateVoices checks both requested voices. An unknown voice is fatal;
// an unreachable voice list is not: synthesis degrades per line instead.
func (o *Orchestrator) validateVoices(ctx context.Context, req domain.JobRequest, logger *slog.Logger) error {
	for _, voice := range []string{req.HostVoice, req.CoHostVoice} {
		err := o.speech.ValidateVoice(ctx, voice)
		if err == nil {
			continue
		}

		var invalid *domain.InvalidVoiceError
		if errors.As(err, &invalid) {
			return invalid
		}
		logger.Warn("voice validation unavailable, continuing",
			"voice", voice,
			"error", err,
		)
	}
	return nil
}

// synthesize renders the fixed intro, every segment in order and the fixed
// outro. Empty lines and lines identical to the previously spoken one are
// skipped across segment boundaries. A failed line is replaced by a short
// tone instead of aborting the job.
func (o *Orchestrator) synthesize(ctx context.Context, req domain.JobRequest, scr *domain.Script, logger *slog.Logger) [][]byte {
	var buffers [][]byte
	lastLine := ""

	speakLine := func(l domain.Line) {
		text := strings.TrimSpace(l.Text)
		if text == "" || text == lastLine {
			return
		}

		voice := req.HostVoice
		if l.Speaker != script.HostName {
			voice = req.CoHostVoice
		}

		buf, err := o.speech.Synthesize(ctx, text, voice)
		if err != nil {
			logger.Warn("line synthesis failed, substituting tone",
				"speaker", l.Speaker,
				"error", err,
			)
			buf = audio.FallbackTone()
		}

		buffers = append(buffers, buf)
		lastLine = text
	}

	for _, l := range script.IntroLines() {
		speakLine(l)
	}
	for _, seg := range scr.Segments {
		for _, l := range seg.Lines {
			speakLine(l)
		}
	}
	for _, l := range script.OutroLines() {
		speakLine(l)
	}

	return buffers
}

func (o *Orchestrator) complete(ctx context.Context, id string, scr *domain.Script, audioURL string, logger *slog.Logger) {
	msg := "Podcast generation completed successfully."
	err := o.jobs.UpdateStatus(ctx, id, domain.JobUpdate{
		Status:     domain.StatusCompleted,
		Message:    &msg,
		Transcript: &scr.Transcript,
		AudioURL:   &audioURL,
		Metadata:   &scr.Metadata,
	})
	if err != nil {
		logger.Error("persist completed status failed", "error", err)
	}

	if err := o.artifacts.RemoveMarker(id); err != nil {
		logger.Warn("remove processing marker failed", "error", err)
	}

	o.publish(ctx, domain.JobEvent{
		JobID:    id,
		Status:   domain.StatusCompleted,
		AudioURL: audioURL,
	}, logger)
}

// fail persists the failed status best-effort: a fault while recording the
// failure is logged and not raised further.
func (o *Orchestrator) fail(ctx context.Context, id string, cause error, logger *slog.Logger) {
	logger.Error("job failed", "error", cause)

	if err := o.artifacts.RemoveMarker(id); err != nil {
		logger.Warn("remove processing marker failed", "error", err)
	}

	msg := "Podcast generation failed: " + cause.Error()
	err := o.jobs.UpdateStatus(ctx, id, domain.JobUpdate{
		Status:  domain.StatusFailed,
		Message: &msg,
	})
	if err != nil {
		logger.Error("persist failed status failed", "error", err)
	}

	o.publish(ctx, domain.JobEvent{
		JobID:   id,
		Status:  domain.StatusFailed,
		Message: msg,
	}, logger)
}

func (o *Orchestrator) publish(ctx context.Context, event domain.JobEvent, logger *slog.Logger) {
	if o.events == nil {
		return
	}
	if err := o.events.Publish(ctx, event); err != nil {
		logger.Warn("publish job event failed",
			"status", event.Status,
			"error", err,
		)
	}
}
