package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-insights-api/internal/config"
	"github.com/vfg2006/brand-insights-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiName = "openai"

var ErrEmptyCompletion = errors.New("resposta da OpenAI sem conteúdo")

type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAIClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	metrics     *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	timeout := cfg.OpenAI.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	model := cfg.OpenAI.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		baseURL:     strings.TrimSuffix(cfg.OpenAI.URL, "/"),
		apiKey:      cfg.OpenAI.APIKey,
		model:       model,
		temperature: cfg.OpenAI.Temperature,
		maxTokens:   cfg.OpenAI.MaxTokens,
		httpClient:  &http.Client{Timeout: timeout},
		metrics:     m,
	}
}

// Complete envia uma conversa de duas mensagens e retorna o conteúdo da primeira escolha
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()

	payload, err := json.Marshal(ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "request_creation")
		return "", errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "network_error")
		return "", errors.Wrap(err, "erro ao chamar a OpenAI")
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "read_body")
		return "", errors.Wrap(err, "erro ao ler resposta da OpenAI")
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		apiErr := &ErrorResponse{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return "", apiErr
	}

	completion := &ChatResponse{}
	if err := json.Unmarshal(body, completion); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return "", errors.Wrap(err, "erro ao decodificar JSON")
	}

	c.metrics.RecordExternalAPICall(apiName, "success", duration)

	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
