package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"classroom-planner-service/internal/config"
	ports "classroom-planner-service/internal/core/ports/output"
)

type aiGatewayClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	enabled    bool
}

// NewAIGatewayClient creates the HTTP adapter for the external LLM gateway.
func NewAIGatewayClient(cfg *config.AIGatewayConfig) ports.AIGatewayClient {
	if !cfg.Enabled {
		return &aiGatewayClient{enabled: false}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &aiGatewayClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		enabled:    true,
	}
}

func (c *aiGatewayClient) IsAvailable() bool {
	return c.enabled
}

type generateRequest struct {
	Kind       string   `json:"kind"`
	Title      string   `json:"title"`
	Term       string   `json:"term,omitempty"`
	Grade      string   `json:"grade,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Tone       string   `json:"tone,omitempty"`
	Language   string   `json:"language"`
}

type generateResponse struct {
	Content string `json:"content"`
}

func (c *aiGatewayClient) GenerateNewsletter(ctx context.Context, req ports.GenerationRequest) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("ai gateway disabled")
	}

	payload, err := json.Marshal(generateRequest{
		Kind:       "newsletter",
		Title:      req.Title,
		Term:       req.Term,
		Grade:      req.Grade,
		Highlights: req.Highlights,
		Tone:       req.Tone,
		Language:   req.Language,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	url := c.baseURL + "/v1/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.WithField("url", url).Debug("calling ai gateway")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode gateway response: %w", err)
	}
	return out.Content, nil
}
