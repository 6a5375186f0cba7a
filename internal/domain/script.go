package domain

import "time"

// WordsPerMinute is the speaking rate used to size scripts.
const WordsPerMinute = 150

// TargetWordCount converts a target duration into a script word budget,
// rounding down to whole words.
func TargetWordCount(durationSeconds int) int {
	return durationSeconds * WordsPerMinute / 60
}

// Document is one unit of raw source material fetched for a topic.
type Document struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	SourceName  string    `json:"source_name"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Topic       string    `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
}

// Source points at an article that contributed to the script.
type Source struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	SourceName string `json:"source"`
}

// Line is one spoken line attributed to a host.
type Line struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Segment is the portion of the script covering one topic.
type Segment struct {
	Topic   string   `json:"topic"`
	Lines   []Line   `json:"lines"`
	Sources []Source `json:"sources"`
}

// Metadata describes a produced episode.
type Metadata struct {
	Topics          []string  `json:"topics"`
	ArticleCount    int       `json:"article_count"`
	TargetWordCount int       `json:"target_word_count"`
	Sources         []Source  `json:"sources"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// Script is the output of script assembly: the per-topic segments, the
// stitched transcript and the episode metadata.
type Script struct {
	Segments   []Segment
	Transcript string
	Metadata   Metadata
}
