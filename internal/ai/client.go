// Package ai реализует клиент генеративной текстовой модели через
// OpenAI-совместимый endpoint /chat/completions.
//
// Клиент отдаёт наружу один структурированный вызов Complete: системный и
// пользовательский prompt на входе, текст первого choice на выходе. Разбор
// и проверка схемы ответа — обязанность вызывающего сервиса: если ответ
// модели не соответствует объявленной форме, вызов завершается ошибкой,
// а не возвратом искажённого объекта.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/magabrotheeeer/hosting-portal/internal/models"
)

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client — HTTP-клиент текстовой модели.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создаёт клиент модели. apiURL — базовый адрес совместимого API
// (без суффикса /chat/completions).
func NewClient(apiURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete выполняет один вызов модели и возвращает текст ответа.
// Модель просят отвечать строго JSON-объектом, поэтому выставляется
// response_format json_object. Ошибки и пустые ответы — ErrDownstream.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	const op = "ai.Complete"

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.2,
		ResponseFormat: &struct {
			Type string `json:"type"`
		}{Type: "json_object"},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", &buf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrDownstream)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %s: %w", op, resp.Status, models.ErrDownstream)
	}
	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrDownstream)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%s: %s: %w", op, parsed.Error.Message, models.ErrDownstream)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: empty completion: %w", op, models.ErrDownstream)
	}
	return parsed.Choices[0].Message.Content, nil
}
