// Package llm implements script.DialogueWriter on an Anthropic chat agent.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aktagon/llmkit/anthropic/agents"

	"podcast_producer/internal/domain"
	"podcast_producer/internal/script"
)

const systemPromptTemplate = `You are writing a podcast script for two hosts named %s and %s. Create a natural conversation about the topic based on the provided articles. The segment should be about %d words, written in a conversational style.
Important rules:
1. Hosts should NEVER repeat what was just said
2. Each line should build on the previous one
3. Alternate between speakers naturally
4. Each speaker should acknowledge what the other just said before adding new information
5. Cite sources naturally within the conversation
Format the output with '%s:' and '%s:' prefixes, one line per utterance.`

// Config holds writer tuning parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// Writer generates dual-speaker dialogue with a chat agent.
type Writer struct {
	agent  *agents.ChatAgent
	cfg    Config
	logger *slog.Logger
}

// New creates a dialogue writer. A fresh agent keeps each job's
// conversation history isolated.
func New(apiKey string, cfg Config, logger *slog.Logger) (*Writer, error) {
	agent, err := agents.New(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create chat agent: %w", err)
	}
	return &Writer{
		agent:  agent,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// WriteDialogue renders one topic's documents as a conversation between the
// two hosts.
func (w *Writer) WriteDialogue(_ context.Context, topic string, docs []domain.Document, targetWords int) (string, error) {
	systemPrompt := fmt.Sprintf(systemPromptTemplate,
		script.HostName, script.CoHostName, targetWords, script.HostName, script.CoHostName)

	prompt := fmt.Sprintf(
		"Here are articles about %s:\n\n%s\n\nCreate a conversational podcast segment following the rules above.",
		topic, articleContext(docs),
	)

	response, err := w.agent.Chat(prompt, &agents.ChatOptions{
		SystemPrompt: systemPrompt,
		MaxTokens:    w.cfg.MaxTokens,
		Temperature:  w.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: dialogue chat: %v", domain.ErrSourceUnavailable, err)
	}

	w.logger.Debug("dialogue generated",
		"topic", topic,
		"target_words", targetWords,
		"chars", len(response.Text),
	)
	return strings.TrimSpace(response.Text), nil
}

func articleContext(docs []domain.Document) string {
	const maxDocs = 5

	var parts []string
	for i, d := range docs {
		if i == maxDocs {
			break
		}
		body := d.Body
		if body == "" {
			body = d.Description
		}
		parts = append(parts, fmt.Sprintf("ARTICLE %d:\nTitle: %s\nSource: %s\nContent: %s", i+1, d.Title, d.SourceName, body))
	}
	if len(parts) == 0 {
		return "No articles were found for this topic. Improvise a short, honest segment noting that coverage is thin today."
	}
	return strings.Join(parts, "\n\n")
}
