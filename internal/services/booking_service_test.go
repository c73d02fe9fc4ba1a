package services

import (
	"testing"
	"time"
)

func TestAvailableDates(t *testing.T) {
	// Sunday 1 March 2026.
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	dates := AvailableDates(now)

	if len(dates) != 18 {
		t.Fatalf("Expected 18 bookable days in three weeks, but got %d", len(dates))
	}
	if dates[0].Value != "2026-03-02" || dates[0].Label != "Mon 2 Mar" {
		t.Errorf("Expected tomorrow first, but got %+v", dates[0])
	}
	last, _ := time.Parse(time.DateOnly, dates[len(dates)-1].Value)
	if last.After(now.AddDate(0, 0, bookingWindowDays)) {
		t.Errorf("Expected dates within %d days, but got %s", bookingWindowDays, last)
	}
	for _, d := range dates {
		day, err := time.Parse(time.DateOnly, d.Value)
		if err != nil {
			t.Fatalf("Expected ISO date, but got %q", d.Value)
		}
		if day.Weekday() == time.Sunday {
			t.Errorf("Expected no Sundays, but got %s", d.Value)
		}
	}
}
