package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chmouel/lazycommit/internal/config"
	log "github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/models"
)

const (
	// requestTimeout bounds one completion round trip.
	requestTimeout = 60 * time.Second
	// maxResponseBytes caps how much of a reply is read.
	maxResponseBytes = 4 << 20

	offlineNotice = "🤖 AI Feature Unavailable\n\n%s\n\n*Note: Set OPENAI_API_KEY environment variable to enable AI features.*"
	emptyResponse = "⚠️ Empty response from model"

	defaultTestFramework = "auto"
)

// Client talks to an OpenAI-compatible chat completion endpoint. With
// no API key configured it stays offline and answers every request
// with a deterministic placeholder, so the features remain navigable.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	framework   string
	httpc       *http.Client
}

var _ Generator = (*Client)(nil)

// NewClient builds a Client from the resolved configuration.
func NewClient(cfg *config.AppConfig) *Client {
	return &Client{
		apiKey:      cfg.OpenAIAPIKey,
		baseURL:     cfg.OpenAIBaseURL,
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		framework:   defaultTestFramework,
		httpc:       &http.Client{Timeout: requestTimeout},
	}
}

// SetTestFramework overrides the framework named in test-generation
// prompts. Empty keeps the current value.
func (c *Client) SetTestFramework(framework string) {
	if framework != "" {
		c.framework = framework
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends one system+user exchange and returns the first choice.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return fmt.Sprintf(offlineNotice, user), nil
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Printf("ai: POST %s model=%s", url, c.model)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var parsed chatResponse
	if resp.StatusCode != http.StatusOK {
		detail := resp.Status
		if json.Unmarshal(body, &parsed) == nil && parsed.Error != nil && parsed.Error.Message != "" {
			detail = parsed.Error.Message
		}
		return "", fmt.Errorf("chat completion: %s", detail)
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return emptyResponse, nil
	}
	return parsed.Choices[0].Message.Content, nil
}

// Suggestions proposes commit messages for the staged change set.
func (c *Client) Suggestions(ctx context.Context, set *models.ChangeSet) ([]string, error) {
	system, user := suggestionsPrompt(set)
	response, err := c.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(response), nil
}

// Report produces the requested report for the change set.
func (c *Client) Report(ctx context.Context, kind Kind, set *models.ChangeSet) (string, error) {
	var system, user string
	switch kind {
	case KindPRDescription:
		system, user = prDescriptionPrompt(set)
	case KindTests:
		system, user = testsPrompt(set, c.framework)
	case KindChangelog:
		system, user = changelogPrompt(set)
	case KindReview:
		system, user = reviewPrompt(set)
	default:
		return "", fmt.Errorf("unknown report kind %d", kind)
	}
	return c.complete(ctx, system, user)
}

// ImproveMessage rewrites a commit message in conventional format.
func (c *Client) ImproveMessage(ctx context.Context, message string) (string, error) {
	system, user := improvePrompt(message)
	return c.complete(ctx, system, user)
}
