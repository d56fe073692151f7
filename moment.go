package chronoaxis

import (
	"math"
	"time"
)

// Moment is the continuous axis coordinate: a fractional count of days
// since the codec epoch, offset by one so the epoch itself maps to 1.0.
// Data values and tick positions share this representation, which keeps
// the axis coordinate zone-agnostic — time zones are applied only when a
// Moment is turned back into a calendar date for display.
type Moment = float64

// The epoch is 30 December 1899 UTC, the classic spreadsheet serial-date
// origin. With the +1 offset, 31 December 1899 midnight is Moment(2.0)
// and the epoch itself is Moment(1.0).
var epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var epochUnix = epoch.Unix()

const (
	secondsPerDay = 86400

	// momentsPerHour etc. express sub-day units in Moment (day) units.
	momentsPerHour        = 1.0 / 24
	momentsPerMinute      = 1.0 / (24 * 60)
	momentsPerSecond      = 1.0 / secondsPerDay
	momentsPerMillisecond = 1.0 / (secondsPerDay * 1000)

	// Gregorian mean lengths, used during interval selection so that
	// step arithmetic needn't special-case variable month lengths.
	// Sequencing still uses exact calendar arithmetic.
	averageDaysPerMonth = 30.4377
	averageDaysPerYear  = 365.2524
)

// minYear/maxYear bound the representable calendar range. Moments
// mapping outside it are treated as empty and convert to the sentinel
// zero date rather than producing a nonsense year.
const (
	minYear = 1
	maxYear = 9999
)

// emptyMoment is the sentinel coordinate for unrepresentable values.
var emptyMoment = math.NaN()

// zeroDate is the sentinel returned by ToDate for invalid moments.
// Formatting a zero date never panics, so soft-failing here keeps bad
// data points from taking down a whole recompute.
var zeroDate = time.Time{}

// Codec converts between Moment coordinates and calendar dates, with an
// optional time-zone projection applied at read time. The zero value is
// ready to use and reads in UTC.
type Codec struct {
	// Location, when non-nil, is the zone dates are projected into by
	// Project. Stored coordinates are never zone-shifted.
	Location *time.Location
}

// ToMoment converts a calendar date to its axis coordinate.
// Dates outside the representable range yield the empty sentinel.
func (c Codec) ToMoment(t time.Time) Moment {
	if t.IsZero() || t.Year() < minYear || t.Year() > maxYear {
		return emptyMoment
	}
	sec := float64(t.Unix()-epochUnix) + float64(t.Nanosecond())/1e9
	return sec/secondsPerDay + 1
}

// ToDate converts an axis coordinate back to a calendar date in UTC.
// It fails soft: NaN, infinite, or out-of-range moments return the
// sentinel zero date instead of an error. The result is rounded to the
// nearest millisecond, the finest unit the axis represents.
func (c Codec) ToDate(m Moment) time.Time {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return zeroDate
	}
	d := m - 1
	if d < -800000 || d > 4000000 {
		return zeroDate
	}
	// Whole days go through AddDate (months and years are not fixed
	// length, and a day count of millennia overflows time.Duration);
	// only the sub-day remainder uses Duration arithmetic. The
	// remainder is rounded to whole milliseconds, otherwise float
	// residue shows up as 59.999999 seconds.
	days := math.Floor(d)
	ms := math.Round((d - days) * secondsPerDay * 1000)
	t := epoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
	if t.Year() < minYear || t.Year() > maxYear {
		return zeroDate
	}
	return t
}

// Project applies the configured time zone to a date, if any.
// This happens only at read/format boundaries, never to stored
// coordinates.
func (c Codec) Project(t time.Time) time.Time {
	if c.Location == nil || t.IsZero() {
		return t
	}
	return t.In(c.Location)
}

// dateAt is ToDate followed by Project: the calendar date a reader sees
// for a given axis position.
func (c Codec) dateAt(m Moment) time.Time {
	return c.Project(c.ToDate(m))
}
