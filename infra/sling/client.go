package sling

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/infra/logger"
)

// Config defines settings for the workforce-scheduling client. A student
// without a job leaves Enabled false and the planner runs without shifts.
type Config struct {
	Enabled bool   `json:"enabled"`
	APIURL  string `json:"api_url"`
	APIKey  string `json:"api_key"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://api.getsling.com/v1"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("sling api_key is required")
	}
	return nil
}

// Client fetches work shifts from the workforce-scheduling API.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// New creates a shift client.
func New(cfg Config) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     logger.New("sling-client"),
	}, nil
}

type rawShift struct {
	ID       string `json:"id"`
	Start    string `json:"dtstart"`
	End      string `json:"dtend"`
	Status   string `json:"status"`
	Position struct {
		Name string `json:"name"`
	} `json:"position"`
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
}

// Shifts returns the shifts between from and to, mapped to planner work
// shifts. Cancelled shifts are dropped at the source so the planner never
// schedules around them.
func (c *Client) Shifts(ctx context.Context, from, to time.Time) ([]model.WorkShift, error) {
	q := url.Values{
		"dates": {fmt.Sprintf("%s/%s", from.Format(time.RFC3339), to.Format(time.RFC3339))},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/shifts?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sling shifts: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warnf("close response body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sling shifts: unexpected status %d", resp.StatusCode)
	}

	var raws []rawShift
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, fmt.Errorf("sling shifts: %w", err)
	}

	var shifts []model.WorkShift
	for _, raw := range raws {
		shift, err := mapShift(raw)
		if err != nil {
			c.log.Warnf("skipping shift %s: %v", raw.ID, err)
			continue
		}
		if shift.Status == model.ShiftCancelled {
			continue
		}
		shifts = append(shifts, shift)
	}
	c.log.Infof("fetched %d shift(s) between %s and %s", len(shifts), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return shifts, nil
}

func mapShift(raw rawShift) (model.WorkShift, error) {
	start, err := time.Parse(time.RFC3339, raw.Start)
	if err != nil {
		return model.WorkShift{}, fmt.Errorf("bad start %q", raw.Start)
	}
	end, err := time.Parse(time.RFC3339, raw.End)
	if err != nil {
		return model.WorkShift{}, fmt.Errorf("bad end %q", raw.End)
	}
	if !end.After(start) {
		return model.WorkShift{}, fmt.Errorf("shift ends before it starts")
	}
	return model.WorkShift{
		ID:       raw.ID,
		Start:    start,
		End:      end,
		Role:     raw.Position.Name,
		Location: raw.Location.Name,
		Status:   parseStatus(raw.Status),
	}, nil
}

func parseStatus(s string) model.ShiftStatus {
	switch strings.ToLower(s) {
	case "in_progress":
		return model.ShiftInProgress
	case "completed":
		return model.ShiftCompleted
	case "cancelled", "canceled":
		return model.ShiftCancelled
	default:
		return model.ShiftScheduled
	}
}
