// Package script turns raw source material into an ordered, speaker-tagged
// podcast script.
package script

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"podcast_producer/internal/domain"
)

const (
	// HostName and CoHostName are the two fixed speakers of the show.
	HostName   = "Alex"
	CoHostName = "Sarah"

	// CatchAllTopic buckets documents whose topic is not in the request.
	CatchAllTopic = "general"

	// similarityThreshold is the Jaccard ratio above which two adjacent
	// lines are treated as duplicates.
	similarityThreshold = 0.5

	maxFallbackArticles = 3
)

// IntroLines returns the fixed show opening. The intro always ends with the
// co-host, which seeds the last-speaker rule for transcript stitching.
func IntroLines() []domain.Line {
	return []domain.Line{
		{Speaker: HostName, Text: "Hello and welcome to TechTalk, your source for the latest in technology! I'm Alex, and with me today is Sarah."},
		{Speaker: CoHostName, Text: "Hi everyone! We've got some fascinating stories to discuss today."},
	}
}

// OutroLines returns the fixed show closing.
func OutroLines() []domain.Line {
	return []domain.Line{
		{Speaker: HostName, Text: "And that wraps up our tech roundup for today. Thanks for joining us!"},
		{Speaker: CoHostName, Text: "Don't forget to subscribe and leave us a review. See you next time!"},
	}
}

// DialogueWriter renders one topic's material as a two-host conversation in
// "Speaker: text" lines.
type DialogueWriter interface {
	WriteDialogue(ctx context.Context, topic string, docs []domain.Document, targetWords int) (string, error)
}

// FallbackWriter is an offline DialogueWriter producing the deterministic
// summary dialogue directly. Used when no LLM API key is configured.
type FallbackWriter struct{}

func (FallbackWriter) WriteDialogue(_ context.Context, topic string, docs []domain.Document, _ int) (string, error) {
	return fallbackDialogue(topic, docs), nil
}

// Assembler produces segments, a transcript and episode metadata from
// fetched documents.
type Assembler struct {
	writer DialogueWriter
	logger *slog.Logger
}

func NewAssembler(writer DialogueWriter, logger *slog.Logger) *Assembler {
	return &Assembler{
		writer: writer,
		logger: logger,
	}
}

type topicGroup struct {
	topic string
	docs  []domain.Document
}

// Assemble builds the script for the requested topics. A writer failure on
// one topic degrades to a deterministic summary of that topic's sources and
// never fails the whole script.
func (a *Assembler) Assemble(ctx context.Context, topics []string, docs []domain.Document, targetDurationSeconds int) (*domain.Script, error) {
	groups := groupByTopic(topics, docs)

	targetWords := domain.TargetWordCount(targetDurationSeconds)
	wordsPerTopic := 0
	if len(groups) > 0 {
		wordsPerTopic = targetWords / len(groups)
	}

	a.logger.Info("assembling script",
		"topics", len(groups),
		"documents", len(docs),
		"target_words", targetWords,
		"words_per_topic", wordsPerTopic,
	)

	segments := make([]domain.Segment, 0, len(groups))
	for _, g := range groups {
		raw, err := a.writer.WriteDialogue(ctx, g.topic, g.docs, wordsPerTopic)
		if err != nil {
			a.logger.Warn("dialogue writer failed, using fallback summary",
				"topic", g.topic,
				"error", err,
			)
			raw = fallbackDialogue(g.topic, g.docs)
		}

		segments = append(segments, domain.Segment{
			Topic:   g.topic,
			Lines:   parseDialogue(raw),
			Sources: sourcesOf(g.docs),
		})
	}

	transcript := Stitch(segments)

	meta := domain.Metadata{
		Topics:          topicNames(groups),
		ArticleCount:    len(docs),
		TargetWordCount: targetWords,
		Sources:         collectSources(segments),
		RecordedAt:      time.Now().UTC(),
	}

	return &domain.Script{
		Segments:   segments,
		Transcript: transcript,
		Metadata:   meta,
	}, nil
}

// groupByTopic buckets documents under the requested topics, in request
// order. Documents with an unknown topic land in the catch-all bucket,
// which sorts last.
func groupByTopic(topics []string, docs []domain.Document) []topicGroup {
	index := make(map[string]int, len(topics))
	groups := make([]topicGroup, 0, len(topics)+1)
	for _, t := range topics {
		if _, ok := index[t]; ok {
			continue
		}
		index[t] = len(groups)
		groups = append(groups, topicGroup{topic: t})
	}

	var catchAll []domain.Document
	for _, d := range docs {
		if i, ok := index[d.Topic]; ok {
			groups[i].docs = append(groups[i].docs, d)
		} else {
			catchAll = append(catchAll, d)
		}
	}
	if len(catchAll) > 0 {
		groups = append(groups, topicGroup{topic: CatchAllTopic, docs: catchAll})
	}

	return groups
}

// parseDialogue splits writer output into speaker-tagged lines, dropping a
// line when the same speaker spoke immediately before or when it is too
// similar to the previous kept line.
func parseDialogue(raw string) []domain.Line {
	var (
		lines       []domain.Line
		lastSpeaker string
		lastText    string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		speaker, text, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		speaker = strings.TrimSpace(speaker)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if speaker == lastSpeaker {
			continue
		}
		if Similarity(text, lastText) > similarityThreshold {
			continue
		}

		lines = append(lines, domain.Line{Speaker: speaker, Text: text})
		lastSpeaker = speaker
		lastText = text
	}

	return lines
}

// Stitch joins intro, segments and outro into the full transcript. A
// running last-speaker is carried across segment boundaries so the
// concatenation never yields two consecutive lines from one speaker.
func Stitch(segments []domain.Segment) string {
	var blocks []string
	lastSpeaker := ""

	appendLines := func(lines []domain.Line) {
		var kept []string
		for _, l := range lines {
			if l.Speaker == lastSpeaker {
				continue
			}
			kept = append(kept, fmt.Sprintf("%s: %s", l.Speaker, l.Text))
			lastSpeaker = l.Speaker
		}
		if len(kept) > 0 {
			blocks = append(blocks, strings.Join(kept, "\n\n"))
		}
	}

	appendLines(IntroLines())
	for _, seg := range segments {
		appendLines(seg.Lines)
	}
	appendLines(OutroLines())

	return strings.Join(blocks, "\n\n")
}

// fallbackDialogue builds a minimal deterministic conversation from the
// topic's source titles when the dialogue writer is unavailable.
func fallbackDialogue(topic string, docs []domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Let's talk about %s.\n", HostName, topic)

	n := len(docs)
	if n > maxFallbackArticles {
		n = maxFallbackArticles
	}
	for i := 0; i < n; i++ {
		speaker := CoHostName
		if i%2 == 1 {
			speaker = HostName
		}
		d := docs[i]
		fmt.Fprintf(&b, "%s: %s, according to %s. %s\n", speaker, d.Title, d.SourceName, leadSentences(d))
	}

	if n == 0 {
		fmt.Fprintf(&b, "%s: We'll keep an eye on that story as it develops.\n", CoHostName)
	}

	return b.String()
}

// leadSentences takes the first two sentences of a document's body, falling
// back to its description.
func leadSentences(d domain.Document) string {
	text := d.Body
	if text == "" {
		text = d.Description
	}

	sentences := strings.SplitN(text, ". ", 3)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	lead := strings.Join(sentences, ". ")
	if lead != "" && !strings.HasSuffix(lead, ".") {
		lead += "."
	}
	return lead
}

func sourcesOf(docs []domain.Document) []domain.Source {
	sources := make([]domain.Source, 0, len(docs))
	for _, d := range docs {
		sources = append(sources, domain.Source{
			URL:        d.URL,
			Title:      d.Title,
			SourceName: d.SourceName,
		})
	}
	return sources
}

// collectSources flattens segment sources, deduplicating by URL with
// last-write-wins.
func collectSources(segments []domain.Segment) []domain.Source {
	index := make(map[string]int)
	var out []domain.Source
	for _, seg := range segments {
		for _, src := range seg.Sources {
			if i, ok := index[src.URL]; ok {
				out[i] = src
				continue
			}
			index[src.URL] = len(out)
			out = append(out, src)
		}
	}
	return out
}

func topicNames(groups []topicGroup) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.topic
	}
	return names
}
