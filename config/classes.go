package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

// Class is one weekly recurring class meeting.
type Class struct {
	// Day is the weekday name, e.g. "monday" or "mon".
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// Validate checks one class entry.
func (c Class) Validate() error {
	if _, ok := weekdays[strings.ToLower(c.Day)]; !ok {
		return fmt.Errorf("unknown weekday %q", c.Day)
	}
	start, err := clockMinutes(c.Start)
	if err != nil {
		return fmt.Errorf("class %q start: %w", c.Title, err)
	}
	end, err := clockMinutes(c.End)
	if err != nil {
		return fmt.Errorf("class %q end: %w", c.Title, err)
	}
	if end <= start {
		return fmt.Errorf("class %q ends before it starts", c.Title)
	}
	if c.Title == "" {
		return fmt.Errorf("class title is required")
	}
	return nil
}

// ExpandClasses turns weekly class entries into concrete time blocks for
// every matching day in [from, from+days).
func ExpandClasses(classes []Class, from time.Time, days int) ([]model.TimeBlock, error) {
	var blocks []model.TimeBlock
	for _, c := range classes {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		weekday := weekdays[strings.ToLower(c.Day)]
		startMin, _ := clockMinutes(c.Start)
		endMin, _ := clockMinutes(c.End)
		for i := 0; i < days; i++ {
			day := from.AddDate(0, 0, i)
			if day.Weekday() != weekday {
				continue
			}
			base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
			block, err := model.NewTimeBlock(
				base.Add(time.Duration(startMin)*time.Minute),
				base.Add(time.Duration(endMin)*time.Minute),
				model.CategoryClass,
				c.Title,
			)
			if err != nil {
				return nil, err
			}
			block.Description = c.Location
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}

func clockMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}
