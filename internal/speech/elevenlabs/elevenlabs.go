// Package elevenlabs implements speech.Backend against the ElevenLabs REST
// API. Audio is requested as raw 44.1 kHz PCM and wrapped in a WAV
// container so every buffer handed to the merge stage is self-contained.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"podcast_producer/internal/audio"
	"podcast_producer/internal/domain"
	"podcast_producer/internal/speech"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	modelID        = "eleven_multilingual_v2"
	outputFormat   = "pcm_44100"
)

// Config holds ElevenLabs client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is an ElevenLabs speech backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// New creates a new ElevenLabs client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.With("backend", "elevenlabs"),
	}
}

type speakRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Speak renders one line of text via the text-to-speech endpoint.
func (c *Client) Speak(ctx context.Context, text, voiceID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s", c.baseURL, voiceID, outputFormat)

	body, err := json.Marshal(speakRequest{Text: text, ModelID: modelID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("text-to-speech failed: %s", readAPIError(resp))
	}

	pcm, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio body: %w", err)
	}

	return audio.WrapPCM(pcm, audio.SampleRate)
}

type voicesResponse struct {
	Voices []speech.Voice `json:"voices"`
}

// ListVoices fetches the voices available to the configured API key.
func (c *Client) ListVoices(ctx context.Context) ([]speech.Voice, error) {
	url := c.baseURL + "/v1/voices"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list voices failed: %s", readAPIError(resp))
	}

	var vr voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode voices: %w", err)
	}

	c.logger.Debug("fetched voices", "count", len(vr.Voices))
	return vr.Voices, nil
}

func readAPIError(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)

	var er errorResponse
	if err := json.Unmarshal(raw, &er); err == nil && len(er.Detail) > 0 {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, er.Detail)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, raw)
}
