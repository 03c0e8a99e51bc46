package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noorhq/noor-server/internal/model"
)

const defaultBaseURL = "https://api.alquran.cloud/v1"

// DefaultEdition is the recitation used for per-ayah audio URLs.
const DefaultEdition = "ar.alafasy"

type listResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []model.Surah `json:"data"`
}

type surahResponse struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   model.FullSurah `json:"data"`
}

// Client talks to the Al Quran Cloud API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for httptest overrides.
	BaseURL string
	Edition string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    defaultBaseURL,
		Edition:    DefaultEdition,
	}
}

// SurahList fetches the full 114-chapter index.
func (c *Client) SurahList(ctx context.Context) ([]model.Surah, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/surah", c.BaseURL))
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode surah list: %w", err)
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("alquran error: code=%d status=%s", resp.Code, resp.Status)
	}
	return resp.Data, nil
}

// Surah fetches one chapter with its verses and recitation audio URLs.
func (c *Client) Surah(ctx context.Context, number int) (*model.FullSurah, error) {
	if number < 1 || number > 114 {
		return nil, fmt.Errorf("surah number %d out of range", number)
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/surah/%d/%s", c.BaseURL, number, c.Edition))
	if err != nil {
		return nil, err
	}

	var resp surahResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode surah %d: %w", number, err)
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("alquran error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp.Data, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alquran request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("alquran returned status %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
