package chronoaxis

import (
	"fmt"
	"strings"
	"time"
)

// tierPatterns are the default label patterns per tier, in the axis
// token syntax (see expand). Callers can replace them wholesale with a
// format override.
var tierPatterns = map[Tier]string{
	TierYears:        "d MMM\nyyyy",
	TierMonths:       "d MMM",
	TierWeeks:        "yyyy/ww",
	TierDays:         "d",
	TierHours:        "hh:mm tt",
	TierMinutes:      "hh:mm",
	TierSeconds:      "mm:ss",
	TierMilliseconds: "mm:ss.fff",
}

// landmarkPatterns upgrade a tier's pattern when a tick crosses a
// coarser calendar boundary: the crossed unit is pulled into the label
// so the reader can re-orient. Keyed by the field that triggered the
// landmark; fields with no entry keep the tier default (the Years tier
// already carries every coarser unit).
var landmarkPatterns = map[Tier]map[Field]string{
	TierMonths: {
		FieldYear: "d MMM yyyy",
	},
	TierWeeks: {
		FieldYear: "yyyy/ww",
	},
	TierDays: {
		FieldYear:  "d MMM yyyy",
		FieldMonth: "d MMM",
		FieldDay:   "d MMM",
	},
	TierHours: {
		FieldYear:  "d MMM yyyy hh:mm tt",
		FieldMonth: "d MMM hh:mm tt",
		FieldDay:   "d MMM hh:mm tt",
	},
	TierMinutes: {
		FieldYear:  "d MMM yyyy hh:mm",
		FieldMonth: "d MMM hh:mm",
		FieldDay:   "d MMM hh:mm",
		FieldHour:  "hh:mm tt",
		FieldAmPm:  "hh:mm tt",
	},
	TierSeconds: {
		FieldYear:  "d MMM yyyy hh:mm:ss",
		FieldMonth: "d MMM hh:mm:ss",
		FieldDay:   "d MMM hh:mm:ss",
		FieldHour:  "hh:mm:ss tt",
		FieldAmPm:  "hh:mm:ss tt",
	},
	TierMilliseconds: {
		FieldYear:  "d MMM yyyy hh:mm:ss.fff",
		FieldMonth: "d MMM hh:mm:ss.fff",
		FieldDay:   "d MMM hh:mm:ss.fff",
		FieldHour:  "hh:mm:ss.fff tt",
		FieldAmPm:  "hh:mm:ss.fff tt",
	},
}

// formatter renders tick labels. It is rebuilt from the configuration
// at the start of each recompute pass and holds the resolved locale.
type formatter struct {
	loc      *locale
	firstDay time.Weekday
	weekRule WeekRule
	override string // caller-supplied pattern; "" selects tier defaults
}

// formatTick renders the label for one tick position under the active
// tier and its landmark classification. Invalid positions render as the
// empty string rather than failing the pass.
func (f formatter) formatTick(c Codec, m Moment, tier Tier, class tickClass) string {
	t := c.dateAt(m)
	if t.IsZero() {
		return ""
	}
	return strings.TrimSpace(f.expand(f.pattern(tier, class), t))
}

// pattern resolves the pattern for a tick: the caller override wins,
// then the landmark upgrade for the triggering field, then the tier
// default, then the locale's short date.
func (f formatter) pattern(tier Tier, class tickClass) string {
	if f.override != "" {
		return f.override
	}
	if class.Landmark && class.Field != FieldNone {
		if p, ok := landmarkPatterns[tier][class.Field]; ok {
			return p
		}
	}
	if p, ok := tierPatterns[tier]; ok {
		return p
	}
	return f.loc.shortDate
}

// expand renders a pattern against a date. Tokens follow the common
// chart-formatting syntax:
//
//	yyyy yy      year (4-digit, 2-digit)
//	MMMM MMM MM M  month (full name, short name, padded, bare)
//	dddd ddd     weekday name (full, short)
//	dd d         day of month (padded, bare)
//	HH H         24-hour clock
//	hh h         12-hour clock
//	mm m         minutes
//	ss s         seconds
//	fff ff f     fractional seconds (milliseconds downward)
//	tt t         AM/PM designator
//	ww w         week of year (padded, bare)
//
// Single-quoted runs are literals; a backslash escapes one character.
// Anything unrecognized passes through unchanged, so a malformed
// pattern degrades to literal text instead of failing.
func (f formatter) expand(pattern string, t time.Time) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch r {
		case '\'':
			// Quoted literal run; an unterminated quote swallows the
			// rest of the pattern as literal text.
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		case '\\':
			if i+1 < len(runes) {
				b.WriteRune(runes[i+1])
				i += 2
				continue
			}
			i++
			continue
		}

		if !isTokenRune(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(f.token(r, n, t))
		i += n
	}
	return b.String()
}

func isTokenRune(r rune) bool {
	switch r {
	case 'y', 'M', 'd', 'H', 'h', 'm', 's', 'f', 't', 'w':
		return true
	}
	return false
}

// token renders one token run. Unknown run lengths degrade to the
// nearest supported form.
func (f formatter) token(r rune, n int, t time.Time) string {
	switch r {
	case 'y':
		if n >= 4 {
			return fmt.Sprintf("%04d", t.Year())
		}
		if n >= 2 {
			return fmt.Sprintf("%02d", t.Year()%100)
		}
		return fmt.Sprintf("%d", t.Year())
	case 'M':
		switch {
		case n >= 4:
			return f.loc.monthsLong[t.Month()-1]
		case n == 3:
			return f.loc.monthsShort[t.Month()-1]
		case n == 2:
			return fmt.Sprintf("%02d", int(t.Month()))
		}
		return fmt.Sprintf("%d", int(t.Month()))
	case 'd':
		switch {
		case n >= 4:
			return f.loc.daysLong[t.Weekday()]
		case n == 3:
			return f.loc.daysShort[t.Weekday()]
		case n == 2:
			return fmt.Sprintf("%02d", t.Day())
		}
		return fmt.Sprintf("%d", t.Day())
	case 'H':
		if n >= 2 {
			return fmt.Sprintf("%02d", t.Hour())
		}
		return fmt.Sprintf("%d", t.Hour())
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		if n >= 2 {
			return fmt.Sprintf("%02d", h)
		}
		return fmt.Sprintf("%d", h)
	case 'm':
		if n >= 2 {
			return fmt.Sprintf("%02d", t.Minute())
		}
		return fmt.Sprintf("%d", t.Minute())
	case 's':
		if n >= 2 {
			return fmt.Sprintf("%02d", t.Second())
		}
		return fmt.Sprintf("%d", t.Second())
	case 'f':
		ms := t.Nanosecond() / int(time.Millisecond)
		switch {
		case n >= 3:
			return fmt.Sprintf("%03d", ms)
		case n == 2:
			return fmt.Sprintf("%02d", ms/10)
		}
		return fmt.Sprintf("%d", ms/100)
	case 't':
		d := f.loc.am
		if isPM(t) {
			d = f.loc.pm
		}
		if n >= 2 || len(d) == 0 {
			return d
		}
		return string([]rune(d)[0])
	case 'w':
		week := weekNumber(t, f.firstDay, f.weekRule)
		if n >= 2 {
			return fmt.Sprintf("%02d", week)
		}
		return fmt.Sprintf("%d", week)
	}
	return strings.Repeat(string(r), n)
}
