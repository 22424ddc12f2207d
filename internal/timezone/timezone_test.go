package timezone

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	day := time.Date(2026, time.March, 9, 15, 42, 10, 0, loc)

	start, end := DayBounds(day)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %v", start)
	}
	if start.Location() != loc {
		t.Fatal("bounds must keep the instant's location")
	}
	if !end.Equal(start.Add(24 * time.Hour)) {
		t.Fatalf("expected 24h span, got %v", end.Sub(start))
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-03-09")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if day.Year() != 2026 || day.Month() != time.March || day.Day() != 9 {
		t.Fatalf("unexpected date: %v", day)
	}

	if _, err := ParseDate("09/03/2026"); err == nil {
		t.Fatal("expected error for wrong format")
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}
}
