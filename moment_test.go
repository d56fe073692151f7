package chronoaxis

import (
	"math"
	"testing"
	"time"
)

func TestMomentRoundTrip(t *testing.T) {
	var c Codec
	tests := []struct {
		name string
		date time.Time
	}{
		{"epoch reference", time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)},
		{"day after epoch", time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"modern date", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"with time of day", time.Date(2024, 6, 15, 12, 34, 56, 0, time.UTC)},
		{"with milliseconds", time.Date(2024, 6, 15, 12, 34, 56, 789e6, time.UTC)},
		{"before epoch", time.Date(1776, 7, 4, 0, 0, 0, 0, time.UTC)},
		{"leap day", time.Date(2000, 2, 29, 23, 59, 59, 0, time.UTC)},
		{"far future", time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ToDate(c.ToMoment(tt.date))
			if !got.Equal(tt.date) {
				t.Errorf("round trip = %v, want %v", got, tt.date)
			}
		})
	}
}

func TestEpochMapsToOne(t *testing.T) {
	var c Codec
	if got := c.ToMoment(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)); got != 1.0 {
		t.Errorf("ToMoment(epoch) = %v, want 1.0", got)
	}
	if got := c.ToDate(1.0); !got.Equal(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ToDate(1.0) = %v, want epoch", got)
	}
}

func TestToDateFailsSoft(t *testing.T) {
	var c Codec
	tests := []struct {
		name   string
		moment Moment
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"far past overflow", -1e9},
		{"far future overflow", 1e9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ToDate(tt.moment); !got.IsZero() {
				t.Errorf("ToDate(%v) = %v, want zero sentinel", tt.moment, got)
			}
		})
	}
}

func TestToMomentRejectsOutOfRange(t *testing.T) {
	var c Codec
	if got := c.ToMoment(time.Time{}); !math.IsNaN(got) {
		t.Errorf("ToMoment(zero) = %v, want NaN sentinel", got)
	}
}

func TestProject(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}
	utc := time.Date(2024, 6, 15, 22, 30, 0, 0, time.UTC)

	var plain Codec
	if got := plain.Project(utc); !got.Equal(utc) || got.Location() != time.UTC {
		t.Errorf("Project without zone = %v, want identity", got)
	}

	zoned := Codec{Location: berlin}
	got := zoned.Project(utc)
	if !got.Equal(utc) {
		t.Errorf("Project changed the instant: %v", got)
	}
	if got.Hour() != 0 || got.Day() != 16 {
		t.Errorf("Project into Berlin = %v, want next day 00:30", got)
	}
}

func TestProjectionDoesNotShiftCoordinates(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}
	d := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	plain := Codec{}
	zoned := Codec{Location: berlin}
	if plain.ToMoment(d) != zoned.ToMoment(d) {
		t.Error("time zone leaked into stored coordinates")
	}
}
