package planner

import (
	"fmt"
	"time"
)

// Constraints defines planning parameters loaded from configuration. A
// Constraints value is immutable for the duration of one planning run.
type Constraints struct {
	// DayStart and DayEnd bound the daily planning window, "HH:MM".
	DayStart string `json:"day_start"`
	DayEnd   string `json:"day_end"`

	MaxSessionMinutes int `json:"max_session_minutes"`
	MinSessionMinutes int `json:"min_session_minutes"`
	BreakMinutes      int `json:"break_minutes"`
	// BufferMinutes is accepted from configuration but not consulted by
	// placement or break insertion.
	BufferMinutes int `json:"buffer_minutes"`

	DaysAhead int    `json:"days_ahead"`
	Timezone  string `json:"timezone"`
}

// SetDefaults applies sane defaults.
func (c *Constraints) SetDefaults() {
	if c.DayStart == "" {
		c.DayStart = "09:00"
	}
	if c.DayEnd == "" {
		c.DayEnd = "22:00"
	}
	if c.MaxSessionMinutes == 0 {
		c.MaxSessionMinutes = 120
	}
	if c.MinSessionMinutes == 0 {
		c.MinSessionMinutes = 30
	}
	if c.BreakMinutes == 0 {
		c.BreakMinutes = 15
	}
	if c.BufferMinutes == 0 {
		c.BufferMinutes = 30
	}
	if c.DaysAhead == 0 {
		c.DaysAhead = 7
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
}

// Validate checks that the constraints are coherent.
func (c Constraints) Validate() error {
	start, err := parseClock(c.DayStart)
	if err != nil {
		return fmt.Errorf("day_start: %w", err)
	}
	end, err := parseClock(c.DayEnd)
	if err != nil {
		return fmt.Errorf("day_end: %w", err)
	}
	if end <= start {
		return fmt.Errorf("day_end %s must be after day_start %s", c.DayEnd, c.DayStart)
	}
	if c.MinSessionMinutes <= 0 {
		return fmt.Errorf("min_session_minutes must be positive")
	}
	if c.MaxSessionMinutes < c.MinSessionMinutes {
		return fmt.Errorf("max_session_minutes must be at least min_session_minutes")
	}
	if c.BreakMinutes < 0 {
		return fmt.Errorf("break_minutes must be non-negative")
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("buffer_minutes must be non-negative")
	}
	if c.DaysAhead <= 0 {
		return fmt.Errorf("days_ahead must be positive")
	}
	return nil
}

// windowFor returns the planning window for the given calendar day.
func (c Constraints) windowFor(date time.Time) (time.Time, time.Time) {
	start, _ := parseClock(c.DayStart)
	end, _ := parseClock(c.DayEnd)
	base := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return base.Add(time.Duration(start) * time.Minute), base.Add(time.Duration(end) * time.Minute)
}

// parseClock converts "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}
