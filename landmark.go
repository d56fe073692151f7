package chronoaxis

import "time"

// analyzeRange scans the visible range once and reports which calendar
// fields change across it. The per-tick landmark pass only re-labels
// fields that are flagged here, so a range confined to a single day
// never sprouts date stamps mid-axis.
//
// The Year flag is also set when the range's year differs from the
// current real-world year: historical or future data viewed away from
// "now" always gets a year stamp somewhere.
func analyzeRange(c Codec, r Range, now time.Time) Flags {
	lo, hi := r.ordered()
	start := c.dateAt(lo)
	end := c.dateAt(hi)
	if start.IsZero() || end.IsZero() {
		return 0
	}
	span := hi - lo

	var flags Flags
	if start.Year() != end.Year() || start.Year() != now.Year() {
		flags = flags.With(FieldYear)
	}
	if start.Month() != end.Month() {
		flags = flags.With(FieldMonth)
	}
	if start.Day() != end.Day() {
		flags = flags.With(FieldDay)
	}
	if start.Hour() != end.Hour() || span > momentsPerHour {
		flags = flags.With(FieldHour)
	}
	if isPM(start) != isPM(end) || span > 12*momentsPerHour {
		flags = flags.With(FieldAmPm)
	}
	return flags
}

// tickClass is the landmark classification of one major tick.
type tickClass struct {
	Landmark bool
	Field    Field
}

// classifyTicks marks each major tick as landmark or not relative to
// its predecessor. The first tick is always a landmark; a later tick is
// a landmark when the coarsest flagged field increased since the
// previous tick, and records which field triggered it.
func classifyTicks(c Codec, flags Flags, major []Moment) []tickClass {
	if len(major) == 0 {
		return nil
	}
	out := make([]tickClass, len(major))
	out[0] = tickClass{Landmark: true, Field: firstFlagged(flags)}

	prev := c.dateAt(major[0])
	for i := 1; i < len(major); i++ {
		cur := c.dateAt(major[i])
		for _, f := range landmarkFields {
			if !flags.Has(f) {
				continue
			}
			if fieldValue(cur, f) > fieldValue(prev, f) {
				out[i] = tickClass{Landmark: true, Field: f}
				break
			}
		}
		prev = cur
	}
	return out
}

// firstFlagged returns the coarsest field in the set, or FieldNone.
func firstFlagged(flags Flags) Field {
	for _, f := range landmarkFields {
		if flags.Has(f) {
			return f
		}
	}
	return FieldNone
}

// fieldValue projects the calendar field used for the "increased"
// comparison between adjacent ticks.
func fieldValue(t time.Time, f Field) int {
	switch f {
	case FieldYear:
		return t.Year()
	case FieldMonth:
		return int(t.Month())
	case FieldDay:
		return t.Day()
	case FieldHour:
		return t.Hour()
	case FieldAmPm:
		if isPM(t) {
			return 1
		}
		return 0
	}
	return 0
}

func isPM(t time.Time) bool { return t.Hour() >= 12 }
