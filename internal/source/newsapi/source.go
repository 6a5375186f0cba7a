// Package newsapi fetches raw source material for topics from a
// NewsAPI-compatible endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"podcast_producer/internal/domain"
)

const SourceID = "newsapi"

// Config holds news source configuration.
type Config struct {
	BaseURL          string
	APIKey           string
	Language         string
	ArticlesPerTopic int
	DaysBack         int
	Timeout          time.Duration
	MaxAttempts      int
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
}

// Source fetches documents per topic over HTTP with retry. With no API key
// configured it serves deterministic mock documents so the pipeline works
// offline.
type Source struct {
	httpClient       *http.Client
	baseURL          string
	apiKey           string
	language         string
	articlesPerTopic int
	daysBack         int
	maxAttempts      int
	initialBackoff   time.Duration
	maxBackoff       time.Duration
	logger           *slog.Logger
}

// New creates a new NewsAPI source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:          cfg.BaseURL,
		apiKey:           cfg.APIKey,
		language:         cfg.Language,
		articlesPerTopic: cfg.ArticlesPerTopic,
		daysBack:         cfg.DaysBack,
		maxAttempts:      cfg.MaxAttempts,
		initialBackoff:   cfg.InitialBackoff,
		maxBackoff:       cfg.MaxBackoff,
		logger:           logger.With("source", SourceID),
	}
}

// FetchDocuments fetches articles for every topic. A topic whose fetch
// fails after retries is logged and skipped; the result is deduplicated by
// URL with last-write-wins. An empty result is valid.
func (s *Source) FetchDocuments(ctx context.Context, topics []string) ([]domain.Document, error) {
	if s.apiKey == "" {
		s.logger.Warn("no news api key configured, serving mock documents")
		return s.mockDocuments(topics), nil
	}

	var all []domain.Document
	for _, topic := range topics {
		docs, err := s.fetchTopic(ctx, topic)
		if err != nil {
			if ctx.Err() != nil {
				return dedupeByURL(all), ctx.Err()
			}
			s.logger.Warn("fetch topic failed, skipping",
				"topic", topic,
				"error", err,
			)
			continue
		}

		s.logger.Debug("fetched topic",
			"topic", topic,
			"articles", len(docs),
		)
		all = append(all, docs...)
	}

	return dedupeByURL(all), nil
}

func (s *Source) fetchTopic(ctx context.Context, topic string) ([]domain.Document, error) {
	var docs []domain.Document
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		docs, err = s.doRequest(ctx, topic)
		if err == nil {
			return docs, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"topic", topic,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, topic string) ([]domain.Document, error) {
	from := time.Now().AddDate(0, 0, -s.daysBack).Format("2006-01-02")

	q := url.Values{}
	q.Set("q", topic)
	q.Set("from", from)
	q.Set("language", s.language)
	q.Set("sortBy", "relevancy")
	q.Set("pageSize", fmt.Sprintf("%d", s.articlesPerTopic))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v2/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: rate limited", domain.ErrSourceUnavailable)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || apiResp.Status != "ok" {
		return nil, fmt.Errorf("api status %d (%s): %s", resp.StatusCode, apiResp.Code, apiResp.Message)
	}

	return s.transform(topic, apiResp.Articles), nil
}

func (s *Source) transform(topic string, articles []apiArticle) []domain.Document {
	docs := make([]domain.Document, 0, len(articles))
	for _, a := range articles {
		publishedAt, _ := time.Parse(time.RFC3339, a.PublishedAt)

		docs = append(docs, domain.Document{
			URL:         a.URL,
			Title:       a.Title,
			SourceName:  a.Source.Name,
			Description: deref(a.Description),
			Body:        deref(a.Content),
			Topic:       topic,
			PublishedAt: publishedAt,
		})
	}
	return docs
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

// mockDocuments generates a deterministic document set for development.
func (s *Source) mockDocuments(topics []string) []domain.Document {
	const perTopic = 5

	var docs []domain.Document
	for _, topic := range topics {
		for i := 0; i < perTopic; i++ {
			docs = append(docs, domain.Document{
				URL:         fmt.Sprintf("https://mock-news.example/article/%s-%d", url.PathEscape(topic), i),
				Title:       fmt.Sprintf("Latest developments in %s - Article %d", topic, i+1),
				SourceName:  fmt.Sprintf("Mock Source %d", i),
				Description: fmt.Sprintf("This is a mock article about %s with important information and updates.", topic),
				Body:        fmt.Sprintf("This article discusses %s in detail with analysis and expert opinions.", topic),
				Topic:       topic,
				PublishedAt: time.Now().UTC(),
			})
		}
	}
	return docs
}

func dedupeByURL(docs []domain.Document) []domain.Document {
	index := make(map[string]int, len(docs))
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if i, ok := index[d.URL]; ok {
			out[i] = d
			continue
		}
		index[d.URL] = len(out)
		out = append(out, d)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
