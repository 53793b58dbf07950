package canvas

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

// Config defines settings for the Canvas LMS client.
type Config struct {
	APIURL   string `json:"api_url"`
	APIToken string `json:"api_token"`
	// UpcomingDays bounds how far ahead fetched assignments may be due.
	UpcomingDays int `json:"upcoming_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://canvas.instructure.com"
	}
	if c.UpcomingDays == 0 {
		c.UpcomingDays = 14
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("canvas api_token is required")
	}
	return nil
}

// Client fetches courses and assignments from the Canvas LMS API and maps
// them to planner tasks.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// New creates a Canvas client.
func New(cfg Config) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.APIURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     logger.New("canvas-client"),
	}, nil
}

// Course is an active enrollment in the LMS.
type Course struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
	State      string `json:"enrollment_state"`
}

type rawAssignment struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DueAt           string   `json:"due_at"`
	PointsPossible  float64  `json:"points_possible"`
	SubmissionTypes []string `json:"submission_types"`
	HasSubmitted    bool     `json:"has_submitted_submissions"`
}

// Courses returns the user's active courses.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	q := url.Values{"enrollment_state": {"active"}, "per_page": {"100"}}
	var courses []Course
	if err := c.get(ctx, "/courses", q, &courses); err != nil {
		return nil, fmt.Errorf("canvas courses: %w", err)
	}
	return courses, nil
}

// Tasks returns every assignment of every active course mapped to a planner
// task. Submitted assignments are marked completed; assignments due further
// out than UpcomingDays are excluded.
func (c *Client) Tasks(ctx context.Context, now time.Time) ([]model.Task, error) {
	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}
	horizon := now.Add(time.Duration(c.cfg.UpcomingDays) * 24 * time.Hour)

	var tasks []model.Task
	for _, course := range courses {
		raws, err := c.courseAssignments(ctx, course.ID)
		if err != nil {
			c.log.Errorf("assignments for course %d: %v", course.ID, err)
			continue
		}
		for _, raw := range raws {
			task, ok := c.mapTask(raw, course, now, horizon)
			if ok {
				tasks = append(tasks, task)
			}
		}
	}
	c.log.Infof("fetched %d task(s) from %d course(s)", len(tasks), len(courses))
	return tasks, nil
}

func (c *Client) courseAssignments(ctx context.Context, courseID int64) ([]rawAssignment, error) {
	q := url.Values{"per_page": {"100"}}
	var raws []rawAssignment
	path := fmt.Sprintf("/courses/%d/assignments", courseID)
	if err := c.get(ctx, path, q, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

func (c *Client) mapTask(raw rawAssignment, course Course, now, horizon time.Time) (model.Task, bool) {
	var due *time.Time
	if raw.DueAt != "" {
		parsed, err := time.Parse(time.RFC3339, raw.DueAt)
		if err != nil {
			c.log.Warnf("assignment %d: bad due date %q", raw.ID, raw.DueAt)
		} else {
			if parsed.After(horizon) {
				return model.Task{}, false
			}
			due = &parsed
		}
	}

	taskType := classifyType(raw.Name, raw.SubmissionTypes)
	task := model.Task{
		ID:                 raw.ID,
		Name:               raw.Name,
		CourseID:           course.ID,
		CourseName:         course.Name,
		DueDate:            due,
		Type:               taskType,
		Priority:           classifyPriority(due, raw.PointsPossible, now),
		EstimatedMinutes:   estimateDuration(raw.Name, raw.PointsPossible, taskType),
		PreparationMinutes: preparationMinutes(taskType),
		Difficulty:         estimateDifficulty(raw.Name, raw.PointsPossible, taskType),
		Completed:          raw.HasSubmitted,
	}
	return task, true
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warnf("close response body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
