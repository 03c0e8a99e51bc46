package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noorhq/noor-server/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel matches the model the companion shipped with.
	DefaultModel = "gemini-2.5-flash"

	temperature = 0.7
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Client talks to the Gemini generateContent REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	// BaseURL and Model are exported for httptest overrides.
	BaseURL string
	Model   string
}

func NewClient(apiKey, modelName string) *Client {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		BaseURL:    defaultBaseURL,
		Model:      modelName,
	}
}

// Complete sends the system instruction, role-tagged history, and the
// user message, and returns the single completed text.
func (c *Client) Complete(ctx context.Context, system string, history []model.ChatTurn, message string) (string, error) {
	body, err := c.post(ctx, "generateContent", "", buildRequest(system, history, message))
	if err != nil {
		return "", err
	}
	defer body.Close()

	var resp generateResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	text := resp.text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return text, nil
}

// Stream sends the same request through the SSE endpoint and delivers
// text fragments to fn as they arrive. Delivery stops when fn returns an
// error or ctx is cancelled.
func (c *Client) Stream(ctx context.Context, system string, history []model.ChatTurn, message string, fn func(fragment string) error) error {
	body, err := c.post(ctx, "streamGenerateContent", "alt=sse", buildRequest(system, history, message))
	if err != nil {
		return err
	}
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return fmt.Errorf("failed to decode gemini stream chunk: %w", err)
		}
		if text := chunk.text(); text != "" {
			if err := fn(text); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (c *Client) post(ctx context.Context, op, query string, reqBody generateRequest) (io.ReadCloser, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/models/%s:%s?key=%s", c.BaseURL, c.Model, op, c.apiKey)
	if query != "" {
		reqURL += "&" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))
	}
	return resp.Body, nil
}

func buildRequest(system string, history []model.ChatTurn, message string) generateRequest {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{
			Role:  string(turn.Role),
			Parts: []part{{Text: turn.Text}},
		})
	}
	contents = append(contents, content{
		Role:  string(model.RoleUser),
		Parts: []part{{Text: message}},
	})

	req := generateRequest{
		Contents:         contents,
		GenerationConfig: generationConfig{Temperature: temperature},
	}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	return req
}

func (r generateResponse) text() string {
	var sb strings.Builder
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
