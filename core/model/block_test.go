package model

import (
	"errors"
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
}

func TestNewTimeBlockRejectsInvertedSpan(t *testing.T) {
	if _, err := NewTimeBlock(at(10, 0), at(9, 0), CategoryStudy, "x"); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}
	if _, err := NewTimeBlock(at(10, 0), at(10, 0), CategoryStudy, "x"); !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart for zero-length block, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	a, _ := NewTimeBlock(at(9, 0), at(10, 0), CategoryStudy, "a")
	b, _ := NewTimeBlock(at(9, 30), at(10, 30), CategoryClass, "b")
	c, _ := NewTimeBlock(at(10, 0), at(11, 0), CategoryWork, "c")
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatal("expected a and b to overlap")
	}
	// Touching endpoints are not an overlap.
	if a.Overlaps(c) || c.Overlaps(a) {
		t.Fatal("touching blocks must not overlap")
	}
}

func TestBlockMinutes(t *testing.T) {
	b, _ := NewTimeBlock(at(9, 0), at(10, 30), CategoryStudy, "b")
	if b.Minutes() != 90 {
		t.Fatalf("expected 90 minutes, got %d", b.Minutes())
	}
}

func TestCategoryString(t *testing.T) {
	want := map[Category]string{
		CategoryStudy:    "study",
		CategoryBreak:    "break",
		CategoryClass:    "class",
		CategoryWork:     "work",
		CategoryPersonal: "personal",
		CategoryBuffer:   "buffer",
	}
	for c, s := range want {
		if c.String() != s {
			t.Errorf("category %d: got %q want %q", c, c.String(), s)
		}
	}
}
