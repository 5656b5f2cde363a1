package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/internal/domain"
)

const defaultAskTimeout = 30 * time.Second

// Answers forwards free-text questions to the external AI answering backend.
// The backend accepts a POST with {"question": …} and replies with the answer
// in the "text" field (older deployments use "response").
type Answers struct {
	url     string
	apiKey  string
	timeout time.Duration
	client  *http.Client
}

// NewAnswers builds the adapter. A non-positive timeout falls back to the default.
func NewAnswers(url, apiKey string, timeout time.Duration) *Answers {
	if timeout <= 0 {
		timeout = defaultAskTimeout
	}
	return &Answers{
		url:     url,
		apiKey:  apiKey,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Text     string `json:"text"`
	Response string `json:"response"`
}

// Ask sends the question and returns the answer text. Blank questions fail
// locally without a network call; blank upstream answers return
// domain.ErrEmptyAnswer so callers can pick a distinct fallback message.
func (s *Answers) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}

	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("marshal question: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error(ctx, "service.answers", "ask.failed",
			slog.String("err_code", "UPSTREAM_UNAVAILABLE"),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("ask upstream: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error(ctx, "service.answers", "ask.failed",
			slog.String("err_code", "UPSTREAM_STATUS"),
			slog.Int("http_status", resp.StatusCode),
		)
		return "", fmt.Errorf("ask upstream: status %s", resp.Status)
	}

	var parsed askResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse answer: %w", err)
	}

	answer := strings.TrimSpace(parsed.Text)
	if answer == "" {
		answer = strings.TrimSpace(parsed.Response)
	}
	if answer == "" {
		logger.Warn(ctx, "service.answers", "ask.empty",
			slog.Int("question_len", len(question)),
		)
		return "", domain.ErrEmptyAnswer
	}

	logger.Info(ctx, "service.answers", "ask.ok",
		slog.Int("question_len", len(question)),
		slog.Int("answer_len", len(answer)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return answer, nil
}
