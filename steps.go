package chronoaxis

import "time"

// Candidate step tables and anchor points for each calendar tier.
// These are package-level constants shared by every axis instance;
// nothing here is ever mutated after init.

// niceMonths are the month starts considered "nice" anchors for the
// Years tier: quarter boundaries.
var niceMonths = [...]time.Month{time.January, time.April, time.July, time.October}

// niceDaysOfMonth are the day-of-month anchors for the Days tier.
var niceDaysOfMonth = [...]int{1, 15}

// niceHours are the hour-of-day anchors for the Hours tier.
var niceHours = [...]int{0, 3, 6, 9, 12, 15, 18, 21}

// niceMinutes and niceSeconds anchor the Minutes and Seconds tiers at
// round marks past the containing hour/minute. 60 wraps to the next
// unit boundary.
var (
	niceMinutes = [...]int{5, 10, 15, 30, 45, 60}
	niceSeconds = [...]int{5, 10, 15, 30, 45, 60}
)

// niceMillis anchors the Milliseconds tier; values are milliseconds
// past the containing second, 1000 wrapping to the next second.
var niceMillis = [...]int{1, 5, 10, 50, 100, 250, 500, 1000}

// Step candidate bounds per tier, in that tier's natural unit. The
// hour and minute lists are walked by the covering rule (smallest
// candidate whose tick count fits the target); the day, second, and
// millisecond lists feed the nice-interval rule. Days deliberately
// stays on whole-day bounds: a calendar date is the practical floor
// for that tier.
var (
	hourStepCandidates   = [...]float64{1, 1.5, 2, 3, 4, 6, 8, 12, 24}
	minuteStepCandidates = [...]float64{1, 2, 3, 5, 10, 15, 20, 30, 45, 60}
	dayStepBounds        = [...]float64{1, 2, 5, 10, 15, 30, 60}
	secondStepBounds     = [...]float64{1, 2, 5, 10, 15, 30, 60}
	milliStepBounds      = [...]float64{1, 5, 10, 50, 100, 250, 500, 1000}
	weekStepCandidates   = [...]float64{1, 2, 4, 8, 13, 26, 52}
)

// unitMoment returns the length of one unit of the tier in Moment
// (day) units. Months and years use the Gregorian mean lengths; the
// sequencer replaces them with exact calendar arithmetic when stepping.
func unitMoment(t Tier) float64 {
	switch t {
	case TierYears:
		return averageDaysPerYear
	case TierMonths:
		return averageDaysPerMonth
	case TierWeeks:
		return 7
	case TierDays:
		return 1
	case TierHours:
		return momentsPerHour
	case TierMinutes:
		return momentsPerMinute
	case TierSeconds:
		return momentsPerSecond
	case TierMilliseconds:
		return momentsPerMillisecond
	}
	return 1
}

// minorTierFor is the fixed fallback used when the minor interval
// policy is Manual without a concrete tier: one tier finer than the
// major, at the granularity a reader expects between labelled marks.
func minorTierFor(major Tier) Tier {
	switch major {
	case TierYears:
		return TierMonths
	case TierMonths:
		return TierDays
	case TierWeeks:
		return TierDays
	case TierDays:
		return TierHours
	case TierHours:
		return TierMinutes
	}
	return TierDays
}
