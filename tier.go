package chronoaxis

// Tier identifies the calendar magnitude governing tick spacing on a
// chronological axis. After interval selection exactly one concrete tier
// (TierYears..TierMilliseconds) is active; TierAuto and TierManual are
// policy inputs only and are never emitted as the active tier.
type Tier int

const (
	// TierAuto derives the tier from the selected step size.
	TierAuto Tier = iota

	// TierManual uses a caller-supplied tier (minor intervals fall back
	// to a fixed per-tier default, see minorTierFor).
	TierManual

	TierYears
	TierMonths
	TierWeeks
	TierDays
	TierHours
	TierMinutes
	TierSeconds
	TierMilliseconds
)

// String returns the tier name for logging and debugging.
func (t Tier) String() string {
	switch t {
	case TierAuto:
		return "Auto"
	case TierManual:
		return "Manual"
	case TierYears:
		return "Years"
	case TierMonths:
		return "Months"
	case TierWeeks:
		return "Weeks"
	case TierDays:
		return "Days"
	case TierHours:
		return "Hours"
	case TierMinutes:
		return "Minutes"
	case TierSeconds:
		return "Seconds"
	case TierMilliseconds:
		return "Milliseconds"
	}
	return "Unknown"
}

// concrete reports whether t is an emittable tier rather than a policy value.
func (t Tier) concrete() bool {
	return t >= TierYears && t <= TierMilliseconds
}

// Field identifies a single calendar field examined by the landmark
// analysis. Fields are always checked in declaration order: a tick is
// landmarked by the coarsest field that changed since the previous tick.
type Field int

const (
	FieldNone Field = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldHour
	FieldAmPm
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldNone:
		return "None"
	case FieldYear:
		return "Year"
	case FieldMonth:
		return "Month"
	case FieldDay:
		return "Day"
	case FieldHour:
		return "Hour"
	case FieldAmPm:
		return "AmPm"
	}
	return "Unknown"
}

// landmarkFields lists the fields in the order landmark classification
// checks them (coarsest first).
var landmarkFields = [...]Field{FieldYear, FieldMonth, FieldDay, FieldHour, FieldAmPm}

// Flags is the set of calendar fields that change across the visible
// range. It is computed once per recompute pass and consulted during
// landmark classification. Membership is tested with Has; Flags carries
// no meaning as an integer.
type Flags uint8

// flagBit returns the bit for a field, or 0 for FieldNone.
func flagBit(f Field) Flags {
	switch f {
	case FieldYear:
		return 1 << 0
	case FieldMonth:
		return 1 << 1
	case FieldDay:
		return 1 << 2
	case FieldHour:
		return 1 << 3
	case FieldAmPm:
		return 1 << 4
	}
	return 0
}

// Has reports whether the field is in the set.
func (fl Flags) Has(f Field) bool { return fl&flagBit(f) != 0 }

// With returns a copy of the set with the field added.
func (fl Flags) With(f Field) Flags { return fl | flagBit(f) }

// Empty reports whether no field is set.
func (fl Flags) Empty() bool { return fl == 0 }

// String returns a compact representation like "Year|Day" for logging.
func (fl Flags) String() string {
	if fl.Empty() {
		return "None"
	}
	s := ""
	for _, f := range landmarkFields {
		if !fl.Has(f) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += f.String()
	}
	return s
}
