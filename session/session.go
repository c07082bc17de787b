// Package session wraps one model identifier and one API credential behind a
// single blocking completion call against the OpenRouter chat-completions
// endpoint. A session keeps no conversation history; every call is
// independent and makes exactly one network attempt.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ai_text_completion/settings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultBaseURL is the OpenRouter chat-completions API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1/"

	// DefaultTimeout bounds every completion request.
	DefaultTimeout = 30 * time.Second

	// probeTimeout bounds the lightweight connectivity probe.
	probeTimeout = 10 * time.Second

	// probeMaxTokens keeps the probe response as small as the API allows.
	probeMaxTokens = 5
)

// Session binds one model identifier and one credential for its lifetime.
type Session struct {
	client openai.Client
	model  string
}

// Option configures a Session at construction.
type Option func(*sessionConfig)

type sessionConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// WithBaseURL overrides the API root. Used by tests to point the session at
// a local server.
func WithBaseURL(u string) Option {
	return func(c *sessionConfig) {
		c.baseURL = u
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *sessionConfig) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a custom HTTP client. Overrides WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *sessionConfig) {
		c.httpClient = hc
	}
}

// New creates a session for model. It fails with a *ConfigurationError when
// apiKey is empty; no network traffic happens here.
func New(model, apiKey string, opts ...Option) (*Session, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{Reason: "no API key found"}
	}
	if strings.TrimSpace(model) == "" {
		return nil, &ConfigurationError{Reason: "no model specified"}
	}

	cfg := sessionConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(&cfg)
	}

	// The SDK resolves relative endpoint paths against the base URL, so a
	// trailing slash is required to keep the /v1 segment.
	if !strings.HasSuffix(cfg.baseURL, "/") {
		cfg.baseURL += "/"
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(cfg.baseURL),
		option.WithHTTPClient(cfg.httpClient),
		// One network attempt per invocation; the shell and the batch
		// driver own their own failure handling.
		option.WithMaxRetries(0),
	)

	slog.Debug("session_ready",
		"base_url", cfg.baseURL,
		"model", model,
		"timeout", cfg.timeout,
	)

	return &Session{
		client: client,
		model:  model,
	}, nil
}

// Model returns the model identifier bound to this session.
func (s *Session) Model() string {
	return s.model
}

// Complete submits prompt with the given settings and returns the generated
// text, trimmed of surrounding whitespace. Non-200 responses surface as
// *APIError, connectivity failures as *TransportError.
func (s *Session) Complete(ctx context.Context, prompt string, gs settings.Settings) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(gs.Temperature),
		MaxTokens:   openai.Int(int64(gs.MaxTokens)),
	}

	slog.Debug("chat_request",
		"model", s.model,
		"prompt_length", len(prompt),
		"temperature", gs.Temperature,
		"max_tokens", gs.MaxTokens,
	)

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		err = classify(err)
		slog.Debug("chat_request_failed", "error", err)
		return "", err
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}
	content = strings.TrimSpace(content)

	slog.Debug("chat_response",
		"response_id", resp.ID,
		"model", resp.Model,
		"content_length", len(content),
		"total_tokens", resp.Usage.TotalTokens,
	)

	return content, nil
}

// Probe makes a minimal completion request to verify the endpoint is
// reachable with the session's credential. It reports reachability only;
// the cause of a failure is logged, not returned.
func (s *Session) Probe(ctx context.Context) bool {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Hi"),
		},
		MaxTokens: openai.Int(probeMaxTokens),
	}

	_, err := s.client.Chat.Completions.New(ctx, params,
		option.WithRequestTimeout(probeTimeout))
	if err != nil {
		slog.Debug("probe_failed", "error", classify(err))
		return false
	}
	return true
}

// classify maps SDK errors onto the session's typed error kinds.
func classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &APIError{StatusCode: apierr.StatusCode}
	}
	return &TransportError{Err: err}
}
