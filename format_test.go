package chronoaxis

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func enFormatter() formatter {
	return formatter{loc: &locales[0], firstDay: time.Sunday, weekRule: WeekRuleFirstDay}
}

func TestExpandTokens(t *testing.T) {
	f := enFormatter()
	date := time.Date(2024, 3, 5, 14, 7, 9, 42e6, time.UTC)
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy", "2024"},
		{"yy", "24"},
		{"MMMM", "March"},
		{"MMM", "Mar"},
		{"MM", "03"},
		{"M", "3"},
		{"dd", "05"},
		{"d", "5"},
		{"ddd", "Tue"},
		{"dddd", "Tuesday"},
		{"HH:mm", "14:07"},
		{"H", "14"},
		{"hh:mm tt", "02:07 PM"},
		{"h:mm t", "2:07 P"},
		{"mm:ss", "07:09"},
		{"ss.fff", "09.042"},
		{"d MMM yyyy", "5 Mar 2024"},
		{"d MMM\nyyyy", "5 Mar\n2024"},
		{"'day' d", "day 5"},
		{"\\d d", "d 5"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := f.expand(tt.pattern, date); got != tt.want {
				t.Errorf("expand(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestExpandMidnightIsTwelveAM(t *testing.T) {
	f := enFormatter()
	date := time.Date(2024, 3, 5, 0, 5, 0, 0, time.UTC)
	if got := f.expand("hh:mm tt", date); got != "12:05 AM" {
		t.Errorf("= %q, want \"12:05 AM\"", got)
	}
}

func TestExpandUnknownTokensLiteral(t *testing.T) {
	f := enFormatter()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := f.expand("Q d [x]", date); got != "Q 5 [x]" {
		t.Errorf("= %q, want unknown characters passed through", got)
	}
}

func TestWeekTokens(t *testing.T) {
	f := enFormatter()
	// 2024-01-10 is in week 2 under the first-day rule with Sunday
	// weeks: Jan 1-6 is week 1, Jan 7 starts week 2.
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if got := f.expand("ww", date); got != "02" {
		t.Errorf("ww = %q, want \"02\"", got)
	}
	if got := f.expand("w", date); got != "2" {
		t.Errorf("w = %q, want \"2\"", got)
	}
}

func TestWeekNumberRules(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		firstDay time.Weekday
		rule     WeekRule
		want     int
	}{
		{
			name: "first-day rule counts the partial week",
			// 2024-01-01 is a Monday.
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			firstDay: time.Sunday,
			rule:     WeekRuleFirstDay,
			want:     1,
		},
		{
			name:     "first-day rule rolls at the configured day",
			date:     time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), // Sunday
			firstDay: time.Sunday,
			rule:     WeekRuleFirstDay,
			want:     2,
		},
		{
			name:     "first-full-week assigns leading days to previous year",
			date:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), // Wednesday
			firstDay: time.Sunday,
			rule:     WeekRuleFirstFullWeek,
			want:     53,
		},
		{
			name:     "iso week one",
			date:     time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			firstDay: time.Monday,
			rule:     WeekRuleISO,
			want:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekNumber(tt.date, tt.firstDay, tt.rule); got != tt.want {
				t.Errorf("weekNumber = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocaleFallback(t *testing.T) {
	if got := lookupLocale(language.MustParse("de-AT")); got.monthsShort[2] != "Mär" {
		t.Errorf("de-AT resolved to %v", got.tag)
	}
	if got := lookupLocale(language.MustParse("fr-CA")); got.monthsShort[0] != "janv." {
		t.Errorf("fr-CA resolved to %v", got.tag)
	}
	// A tag with no catalogue relative still resolves to something.
	if got := lookupLocale(language.MustParse("th")); got == nil {
		t.Error("no fallback locale")
	}
}

func TestGermanLocaleOmitsAmPm(t *testing.T) {
	f := formatter{loc: lookupLocale(language.German), firstDay: time.Monday, weekRule: WeekRuleISO}
	date := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	if got := f.expand("hh:mm tt", date); got != "02:07 " {
		t.Errorf("= %q (empty designator renders empty)", got)
	}
}

func TestPatternSelection(t *testing.T) {
	f := enFormatter()
	tests := []struct {
		name  string
		tier  Tier
		class tickClass
		want  string
	}{
		{"minutes default", TierMinutes, tickClass{}, "hh:mm"},
		{"minutes landmark by year", TierMinutes, tickClass{Landmark: true, Field: FieldYear}, "d MMM yyyy hh:mm"},
		{"minutes landmark by hour", TierMinutes, tickClass{Landmark: true, Field: FieldHour}, "hh:mm tt"},
		{"minutes landmark by ampm", TierMinutes, tickClass{Landmark: true, Field: FieldAmPm}, "hh:mm tt"},
		{"days landmark by month", TierDays, tickClass{Landmark: true, Field: FieldMonth}, "d MMM"},
		{"years ignores landmark", TierYears, tickClass{Landmark: true, Field: FieldYear}, "d MMM\nyyyy"},
		{"milliseconds landmark by ampm", TierMilliseconds, tickClass{Landmark: true, Field: FieldAmPm}, "hh:mm:ss.fff tt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.pattern(tt.tier, tt.class); got != tt.want {
				t.Errorf("pattern = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverrideWinsOverLandmark(t *testing.T) {
	f := enFormatter()
	f.override = "HH:mm"
	got := f.pattern(TierMinutes, tickClass{Landmark: true, Field: FieldYear})
	if got != "HH:mm" {
		t.Errorf("pattern = %q, want the override", got)
	}
}

func TestFormatTickSoftFailsOnBadMoment(t *testing.T) {
	var c Codec
	f := enFormatter()
	if got := f.formatTick(c, 1e9, TierDays, tickClass{}); got != "" {
		t.Errorf("formatTick(out of range) = %q, want empty", got)
	}
}
