package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/noorhq/noor-server/internal/model"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// DefaultMethod is calculation method 4, Umm al-Qura (Makkah).
const DefaultMethod = 4

// PrayerDay bundles the timing set with its date context, mirroring what
// the timings endpoint returns.
type PrayerDay struct {
	Timings  model.TimingSet `json:"timings"`
	Readable string          `json:"readable"`
	Hijri    model.HijriDate `json:"hijri"`
}

// Client talks to the Al Adhan prayer-times and calendar-conversion API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported for httptest overrides.
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

// Timings fetches the prayer timing set for the given instant and
// coordinates. A method < 0 falls back to DefaultMethod.
func (c *Client) Timings(ctx context.Context, at time.Time, lat, lng float64, method int) (*PrayerDay, error) {
	if method < 0 {
		method = DefaultMethod
	}

	endpoint := fmt.Sprintf("%s/timings/%d", c.BaseURL, at.Unix())
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	params.Set("method", fmt.Sprintf("%d", method))

	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	return &PrayerDay{
		Timings: model.TimingSet{
			Fajr:    resp.Data.Timings.Fajr,
			Sunrise: resp.Data.Timings.Sunrise,
			Dhuhr:   resp.Data.Timings.Dhuhr,
			Asr:     resp.Data.Timings.Asr,
			Maghrib: resp.Data.Timings.Maghrib,
			Isha:    resp.Data.Timings.Isha,
		},
		Readable: resp.Data.Date.Readable,
		Hijri:    toModelHijri(resp.Data.Date.Hijri),
	}, nil
}

// GregorianToHijri converts today's Gregorian date with the given
// day-offset adjustment to the Hijri calendar.
func (c *Client) GregorianToHijri(ctx context.Context, date time.Time, adjustment int) (*model.HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH/%d-%d-%d", c.BaseURL, date.Day(), int(date.Month()), date.Year())
	params := url.Values{}
	params.Set("adjustment", fmt.Sprintf("%d", adjustment))

	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	h := toModelHijri(resp.Data.Hijri)
	return &h, nil
}

// HijriToGregorian converts a Hijri date to the Gregorian midnight it
// falls on, in loc-agnostic UTC.
func (c *Client) HijriToGregorian(ctx context.Context, day, month, year int) (time.Time, error) {
	endpoint := fmt.Sprintf("%s/hToG/%d-%d-%d", c.BaseURL, day, month, year)

	resp, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return time.Time{}, err
	}

	// API dates are "DD-MM-YYYY".
	t, err := time.Parse("02-01-2006", resp.Data.Gregorian.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected gregorian date %q: %w", resp.Data.Gregorian.Date, err)
	}
	return t, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*response, error) {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aladhan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("aladhan returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode aladhan response: %w", err)
	}
	if apiResp.Code != 200 {
		return nil, fmt.Errorf("aladhan error: code=%d status=%s", apiResp.Code, apiResp.Status)
	}
	return &apiResp, nil
}

func toModelHijri(h hijriDate) model.HijriDate {
	return model.HijriDate{
		Day: h.Day,
		Month: model.HijriMonth{
			Number: h.Month.Number,
			En:     h.Month.En,
			Ar:     h.Month.Ar,
		},
		Year: h.Year,
		Weekday: model.HijriWeekday{
			En: h.Weekday.En,
			Ar: h.Weekday.Ar,
		},
	}
}
