package chronoaxis

import (
	"math"
	"testing"
	"time"
)

func sequenceFor(t *testing.T, start time.Time, span float64, labels int) (Range, selection, []Moment, []Moment) {
	t.Helper()
	lo := mustMoment(t, start)
	r := Range{Min: lo, Max: lo + span}
	sel, err := selectInterval(selectorConfig{}, r, labels)
	if err != nil {
		t.Fatalf("selectInterval: %v", err)
	}
	var c Codec
	major, minor, err := generateTicks(c, r, sel)
	if err != nil {
		t.Fatalf("generateTicks: %v", err)
	}
	return r, sel, major, minor
}

func TestGenerateTicksMonotonicAndContained(t *testing.T) {
	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	spans := []struct {
		name string
		span float64
	}{
		{"three years", 3 * 365.25},
		{"six months", 182},
		{"ten days", 10},
		{"one day", 1},
		{"two hours", 2 * momentsPerHour},
		{"ninety seconds", 90 * momentsPerSecond},
		{"a quarter second", 0.25 * momentsPerSecond},
	}
	for _, tt := range spans {
		t.Run(tt.name, func(t *testing.T) {
			r, _, major, minor := sequenceFor(t, start, tt.span, 6)
			lo, hi := r.ordered()

			if len(major) == 0 {
				t.Fatal("no major ticks")
			}
			for i, m := range major {
				if m < lo || m > hi {
					t.Errorf("major[%d] = %v outside [%v, %v]", i, m, lo, hi)
				}
				if i > 0 && m <= major[i-1] {
					t.Errorf("major ticks not strictly ascending at %d", i)
				}
			}
			for i, m := range minor {
				if m <= lo || m >= hi {
					t.Errorf("minor[%d] = %v not strictly inside (%v, %v)", i, m, lo, hi)
				}
				if i > 0 && m <= minor[i-1] {
					t.Errorf("minor ticks not strictly ascending at %d", i)
				}
			}
		})
	}
}

func TestDensityBound(t *testing.T) {
	// Tick counts stay within a small factor of the label target across
	// tier-transition boundary spans.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	const labels = 6
	for _, span := range []float64{365, 28, 1, 50 * momentsPerMinute, 50 * momentsPerSecond, momentsPerSecond} {
		_, _, major, _ := sequenceFor(t, start, span, labels)
		if n := len(major); n < 1 || n > 3*labels {
			t.Errorf("span %v days: %d major ticks for target %d", span, n, labels)
		}
	}
}

func TestZeroLengthRange(t *testing.T) {
	lo := mustMoment(t, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	r := Range{Min: lo, Max: lo}
	var c Codec
	major, minor, err := generateTicks(c, r, selection{Step: Step{Magnitude: 1, Tier: TierDays}, Anchor: lo})
	if err != nil {
		t.Fatalf("generateTicks: %v", err)
	}
	if len(major) != 1 || major[0] != lo {
		t.Errorf("major = %v, want exactly [%v]", major, lo)
	}
	if len(minor) != 0 {
		t.Errorf("minor = %v, want none", minor)
	}
}

func TestInvertedRangeMatchesOrdered(t *testing.T) {
	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	lo := mustMoment(t, start)
	fwd := Range{Min: lo, Max: lo + 10}
	rev := Range{Min: lo + 10, Max: lo}

	sel, err := selectInterval(selectorConfig{}, fwd, 6)
	if err != nil {
		t.Fatal(err)
	}
	selRev, err := selectInterval(selectorConfig{}, rev, 6)
	if err != nil {
		t.Fatal(err)
	}
	var c Codec
	ma, mia, _ := generateTicks(c, fwd, sel)
	mb, mib, _ := generateTicks(c, rev, selRev)
	if len(ma) != len(mb) || len(mia) != len(mib) {
		t.Fatalf("inverted range differs: %d/%d majors, %d/%d minors", len(ma), len(mb), len(mia), len(mib))
	}
	for i := range ma {
		if ma[i] != mb[i] {
			t.Errorf("major[%d]: %v != %v", i, ma[i], mb[i])
		}
	}
}

func TestZeroStepRejected(t *testing.T) {
	var c Codec
	for _, mag := range []float64{0, -1, math.NaN()} {
		_, _, err := generateTicks(c, Range{Min: 0, Max: 10}, selection{Step: Step{Magnitude: mag}})
		if err == nil {
			t.Errorf("magnitude %v: expected error", mag)
		}
	}
}

func TestCalendarSteppingRespectsMonthLength(t *testing.T) {
	// Month steps land on the first of each month, not at fixed
	// 30.44-day offsets.
	var c Codec
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lo := mustMoment(t, start)
	sel := selection{
		Step:       Step{Magnitude: averageDaysPerMonth, Tier: TierMonths},
		Anchor:     lo,
		StepMonths: 1,
	}
	major, _, err := generateTicks(c, Range{Min: lo, Max: lo + 120}, sel)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if len(major) < len(want) {
		t.Fatalf("got %d ticks, want at least %d", len(major), len(want))
	}
	for i, w := range want {
		if got := c.ToDate(major[i]); !got.Equal(w) {
			t.Errorf("tick[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestNarrowRangeBackfillsAnchor(t *testing.T) {
	// The minute anchor (next nice mark at :10) lands past this narrow
	// range; sequencing must still mark it instead of going empty.
	var c Codec
	start := time.Date(2024, 3, 10, 10, 6, 10, 0, time.UTC)
	lo := mustMoment(t, start)
	r := Range{Min: lo, Max: lo + 160*momentsPerSecond}
	sel, err := selectInterval(selectorConfig{}, r, 1)
	if err != nil {
		t.Fatal(err)
	}
	major, _, err := generateTicks(c, r, sel)
	if err != nil {
		t.Fatal(err)
	}
	if len(major) == 0 {
		t.Fatal("no major ticks in narrow range")
	}
	lo2, hi := r.ordered()
	for _, m := range major {
		if m < lo2 || m > hi {
			t.Errorf("backfilled tick %v outside range", m)
		}
	}
}

func TestMinorTicksAvoidMajors(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	_, sel, major, minor := sequenceFor(t, start, 2*momentsPerHour, 6)
	eps := sel.Step.Magnitude / 100
	for _, mi := range minor {
		for _, ma := range major {
			if math.Abs(mi-ma) <= eps {
				t.Errorf("minor %v coincides with major %v", mi, ma)
			}
		}
	}
}
