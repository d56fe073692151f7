package chronoaxis

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidRange is returned when a recompute is asked to run on a
// range containing NaN or infinite endpoints.
var ErrInvalidRange = errors.New("chronoaxis: range endpoints must be finite")

// ErrInvalidStep is returned when sequencing would start with a zero or
// negative step.
var ErrInvalidStep = errors.New("chronoaxis: step magnitude must be positive")

// Step is the selected tick interval: a magnitude in Moment (day) units
// and the tier the magnitude belongs to.
type Step struct {
	Magnitude float64
	Tier      Tier
}

// selection is the full outcome of interval selection for one recompute
// pass. It is threaded through sequencing and formatting so all three
// stages agree on tier, step, and anchor.
type selection struct {
	Step   Step
	Anchor Moment

	// StepMonths is the whole-month step for the Years and Months
	// tiers, where sequencing must respect variable month lengths.
	// Zero for linearly stepped tiers.
	StepMonths int

	// MinorTier and MinorStep drive minor tick subdivision. A zero
	// MinorStep means "half the enclosing major gap".
	MinorTier Tier
	MinorStep float64
}

// selectorConfig carries the inputs interval selection reads. All of it
// is captured at the start of a recompute; the selector holds no state
// of its own.
type selectorConfig struct {
	codec       Codec
	policy      Tier
	minorPolicy Tier
	// manualStep is the caller-supplied major step in Moment units,
	// honored when policy is TierManual. Ignored otherwise.
	manualStep float64
	firstDay   time.Weekday
}

// selectInterval picks the active tier, step, and anchor for the range.
// labelCount is the target number of labels derived from the available
// pixel size.
func selectInterval(cfg selectorConfig, r Range, labelCount int) (selection, error) {
	if !r.valid() {
		return selection{}, ErrInvalidRange
	}
	lo, hi := r.ordered()
	span := hi - lo
	if labelCount < 1 {
		labelCount = 1
	}
	dpl := span / float64(labelCount) // duration per label, in days

	switch {
	case cfg.policy == TierManual:
		// manualSelection rejects a zero, negative, or NaN step; Manual
		// never falls through to the Auto path.
		return manualSelection(cfg, lo, hi, cfg.manualStep)
	case cfg.policy.concrete():
		return forcedSelection(cfg, lo, hi, labelCount, cfg.policy)
	}

	var sel selection
	switch {
	// Years wins on total range, not on step: even a densely labelled
	// multi-year axis anchors and steps on calendar quarters.
	case span >= averageDaysPerYear || dpl > 365:
		sel = selectYears(cfg.codec, lo, hi, dpl)
	case dpl > 28:
		sel = selectMonths(cfg.codec, lo, dpl)
	case dpl > 1:
		sel = selectDays(cfg.codec, lo, hi, dpl, labelCount)
	case dpl > 50*momentsPerMinute:
		sel = selectHours(cfg.codec, lo, hi, dpl, labelCount)
	case dpl > 50*momentsPerSecond:
		sel = selectMinutes(cfg.codec, lo, hi, labelCount)
	case dpl > momentsPerSecond:
		sel = selectSeconds(cfg.codec, lo, hi, labelCount)
	default:
		sel = selectMillis(cfg.codec, lo, hi, labelCount)
	}

	// With an Auto policy the reported tier follows the numeric step,
	// except for the Years-by-total-range override above.
	if sel.Step.Tier != TierYears {
		sel.Step.Tier = tierForStep(sel.Step.Magnitude)
		if sel.Step.Tier == TierMonths && sel.StepMonths == 0 {
			sel.StepMonths = maxInt(1, int(math.Round(sel.Step.Magnitude/averageDaysPerMonth)))
		}
		if sel.Step.Tier != TierMonths {
			sel.StepMonths = 0
		}
	}

	finishMinor(cfg, &sel)
	if sel.Step.Magnitude <= 0 {
		return selection{}, ErrInvalidStep
	}
	return sel, nil
}

// tierForStep maps a numeric step size to the tier that best describes
// it. Used when the tier policy is Auto.
func tierForStep(mag float64) Tier {
	switch {
	case mag >= averageDaysPerMonth:
		return TierMonths
	case mag >= 1:
		return TierDays
	case mag >= momentsPerHour:
		return TierHours
	case mag >= momentsPerMinute:
		return TierMinutes
	case mag >= momentsPerSecond:
		return TierSeconds
	}
	return TierMilliseconds
}

// selectYears anchors at the nearest nice quarter start (Jan/Apr/Jul/
// Oct) reachable within half a label duration, else the next January 1,
// and steps in whole quarters approximating the label duration.
func selectYears(c Codec, lo, hi, dpl float64) selection {
	start := c.ToDate(lo)
	anchor := nextNiceMonthStart(start)
	if c.ToMoment(anchor)-lo > dpl/2 {
		anchor = nextYearStart(start)
	}
	quarters := maxInt(1, int(math.Round(dpl/averageDaysPerYear*4)))
	months := quarters * 3
	return selection{
		Step:       Step{Magnitude: float64(months) * averageDaysPerMonth, Tier: TierYears},
		Anchor:     c.ToMoment(anchor),
		StepMonths: months,
	}
}

// selectMonths anchors at the first day of the following month and
// steps by the nearest half-month multiple of the mean month length.
func selectMonths(c Codec, lo, dpl float64) selection {
	start := c.ToDate(lo)
	anchor := nextMonthStart(start)
	halves := maxInt(1, int(math.Round(dpl/(averageDaysPerMonth/2))))
	mag := float64(halves) * averageDaysPerMonth / 2
	return selection{
		Step:       Step{Magnitude: mag, Tier: TierMonths},
		Anchor:     c.ToMoment(anchor),
		StepMonths: maxInt(1, int(math.Round(mag/averageDaysPerMonth))),
	}
}

// selectDays anchors at the next nice day-of-month (1st or 15th) when
// that is within half a label duration, else the next midnight, and
// picks a whole-day step with the nice-interval rule.
func selectDays(c Codec, lo, hi, dpl float64, n int) selection {
	start := c.ToDate(lo)
	anchor := nextNiceDayOfMonth(start)
	if c.ToMoment(anchor)-lo > dpl/2 {
		anchor = nextMidnight(start)
	}
	am := c.ToMoment(anchor)
	mag := niceStep(dayStepBounds[:], hi-am, n)
	return selection{
		Step:   Step{Magnitude: mag, Tier: TierDays},
		Anchor: am,
	}
}

// selectHours anchors at the next nice hour mark (every third hour)
// when that is within half a label duration, else the next midnight,
// and picks the smallest hour candidate whose tick count fits the
// target.
func selectHours(c Codec, lo, hi, dpl float64, n int) selection {
	start := c.ToDate(lo)
	anchor := nextNiceHour(start)
	if c.ToMoment(anchor)-lo > dpl/2 {
		anchor = nextMidnight(start)
	}
	am := c.ToMoment(anchor)
	hours := coveringStep(hourStepCandidates[:], (hi-am)/momentsPerHour, n)
	return selection{
		Step:   Step{Magnitude: hours * momentsPerHour, Tier: TierHours},
		Anchor: am,
	}
}

// selectMinutes anchors at the next nice minute mark and picks the
// smallest minute candidate whose tick count fits the target.
func selectMinutes(c Codec, lo, hi float64, n int) selection {
	anchor := nextNiceMinute(c.ToDate(lo))
	am := c.ToMoment(anchor)
	minutes := coveringStep(minuteStepCandidates[:], (hi-am)/momentsPerMinute, n)
	return selection{
		Step:   Step{Magnitude: minutes * momentsPerMinute, Tier: TierMinutes},
		Anchor: am,
	}
}

// selectSeconds anchors at the next nice second mark and picks a step
// with the nice-interval rule over whole-second bounds.
func selectSeconds(c Codec, lo, hi float64, n int) selection {
	anchor := nextNiceSecond(c.ToDate(lo))
	am := c.ToMoment(anchor)
	secs := niceStep(secondStepBounds[:], (hi-am)/momentsPerSecond, n)
	return selection{
		Step:   Step{Magnitude: secs * momentsPerSecond, Tier: TierSeconds},
		Anchor: am,
	}
}

// selectMillis anchors at the next nice millisecond mark and picks a
// step with the nice-interval rule over millisecond bounds.
func selectMillis(c Codec, lo, hi float64, n int) selection {
	anchor := nextNiceMilli(c.ToDate(lo))
	am := c.ToMoment(anchor)
	ms := niceStep(milliStepBounds[:], (hi-am)/momentsPerMillisecond, n)
	return selection{
		Step:   Step{Magnitude: ms * momentsPerMillisecond, Tier: TierMilliseconds},
		Anchor: am,
	}
}

// forcedSelection serves an explicitly configured tier: the anchor
// follows the tier's own anchor rule and the step comes from the
// tier's candidate table via the covering rule.
func forcedSelection(cfg selectorConfig, lo, hi float64, n int, tier Tier) (selection, error) {
	c := cfg.codec
	start := c.ToDate(lo)
	span := hi - lo
	dpl := span / float64(n)

	var sel selection
	switch tier {
	case TierYears:
		sel = selectYears(c, lo, hi, math.Max(dpl, averageDaysPerYear))
		sel.Step.Tier = TierYears
	case TierMonths:
		sel = selectMonths(c, lo, math.Max(dpl, averageDaysPerMonth))
		sel.Step.Tier = TierMonths
	case TierWeeks:
		anchor := nextWeekStart(start, cfg.firstDay)
		am := c.ToMoment(anchor)
		weeks := coveringStep(weekStepCandidates[:], (hi-am)/7, n)
		sel = selection{
			Step:   Step{Magnitude: weeks * 7, Tier: TierWeeks},
			Anchor: am,
		}
	case TierDays:
		sel = selectDays(c, lo, hi, dpl, n)
		sel.Step.Tier = TierDays
	case TierHours:
		sel = selectHours(c, lo, hi, dpl, n)
		sel.Step.Tier = TierHours
	case TierMinutes:
		sel = selectMinutes(c, lo, hi, n)
		sel.Step.Tier = TierMinutes
	case TierSeconds:
		sel = selectSeconds(c, lo, hi, n)
		sel.Step.Tier = TierSeconds
	case TierMilliseconds:
		sel = selectMillis(c, lo, hi, n)
		sel.Step.Tier = TierMilliseconds
	default:
		return selection{}, ErrInvalidStep
	}
	finishMinor(cfg, &sel)
	return sel, nil
}

// manualSelection honors a caller-supplied step magnitude. The tier is
// derived from the magnitude and the anchor from that tier's rule.
func manualSelection(cfg selectorConfig, lo, hi, mag float64) (selection, error) {
	if mag <= 0 || math.IsNaN(mag) {
		return selection{}, ErrInvalidStep
	}
	tier := tierForStep(mag)
	sel, err := forcedSelection(cfg, lo, hi, 1, tier)
	if err != nil {
		return selection{}, err
	}
	sel.Step.Magnitude = mag
	if tier == TierMonths {
		sel.StepMonths = maxInt(1, int(math.Round(mag/averageDaysPerMonth)))
	}
	finishMinor(cfg, &sel)
	return sel, nil
}

// finishMinor resolves the minor tier and step for the selection.
// Auto subdivides the enclosing major gap; Manual falls back to the
// fixed per-tier default; a concrete minor tier steps by one of its
// units.
func finishMinor(cfg selectorConfig, sel *selection) {
	switch {
	case cfg.minorPolicy.concrete():
		sel.MinorTier = cfg.minorPolicy
		sel.MinorStep = unitMoment(cfg.minorPolicy)
	case cfg.minorPolicy == TierManual:
		sel.MinorTier = minorTierFor(sel.Step.Tier)
		sel.MinorStep = unitMoment(sel.MinorTier)
	default:
		sel.MinorTier = sel.Step.Tier
		sel.MinorStep = 0 // half the enclosing major gap
	}
	// A minor step coarser than the major step would place no marks at
	// all; subdivide the gap instead.
	if sel.MinorStep >= sel.Step.Magnitude {
		sel.MinorStep = 0
	}
}

// niceStep walks ordered candidate bounds pairwise, preferring the
// larger (sparser) candidate whenever the denser one would overshoot
// the target label count, and snapping to the sparser one when it lands
// exactly on target. span and the bounds share a unit.
func niceStep(bounds []float64, span float64, target int) float64 {
	step := bounds[0]
	for i := 1; i < len(bounds); i++ {
		upper := bounds[i]
		countAtLower := int(math.Floor(span/step)) + 1
		countAtUpper := int(math.Floor(span/upper)) + 1
		if countAtLower > target || countAtUpper == target {
			step = upper
			continue
		}
		break
	}
	return step
}

// coveringStep picks the smallest candidate whose tick count over span
// does not exceed the target, or the last candidate when none fits.
// span and the candidates share a unit.
func coveringStep(candidates []float64, span float64, target int) float64 {
	for _, c := range candidates {
		if int(math.Floor(span/c))+1 <= target {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// Calendar anchor helpers. All operate on the codec's UTC dates; zone
// projection is a formatting concern and never shifts anchors.

// nextNiceMonthStart returns the earliest quarter-month start (Jan,
// Apr, Jul, Oct) at or after t.
func nextNiceMonthStart(t time.Time) time.Time {
	for m := 0; m <= 12; m++ {
		cand := time.Date(t.Year(), t.Month()+time.Month(m), 1, 0, 0, 0, 0, t.Location())
		if cand.Before(t) {
			continue
		}
		for _, nice := range niceMonths {
			if cand.Month() == nice {
				return cand
			}
		}
	}
	return nextYearStart(t)
}

// nextYearStart returns the next January 1 at or after t.
func nextYearStart(t time.Time) time.Time {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	if jan1.Before(t) {
		jan1 = jan1.AddDate(1, 0, 0)
	}
	return jan1
}

// nextMonthStart returns the next first-of-month midnight at or after t.
func nextMonthStart(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	if first.Before(t) {
		first = first.AddDate(0, 1, 0)
	}
	return first
}

// nextNiceDayOfMonth returns the next midnight on a nice day of month
// (the 1st or the 15th) at or after t.
func nextNiceDayOfMonth(t time.Time) time.Time {
	for m := 0; m <= 1; m++ {
		for _, d := range niceDaysOfMonth {
			cand := time.Date(t.Year(), t.Month()+time.Month(m), d, 0, 0, 0, 0, t.Location())
			if !cand.Before(t) {
				return cand
			}
		}
	}
	return nextMidnight(t)
}

// nextMidnight returns the next midnight at or after t.
func nextMidnight(t time.Time) time.Time {
	mid := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if mid.Before(t) {
		mid = mid.AddDate(0, 0, 1)
	}
	return mid
}

// nextNiceHour returns the next nice hour mark (0, 3, ..., 21) at or
// after t.
func nextNiceHour(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for _, h := range niceHours {
		cand := day.Add(time.Duration(h) * time.Hour)
		if !cand.Before(t) {
			return cand
		}
	}
	return day.AddDate(0, 0, 1)
}

// nextNiceMinute returns the next nice minute mark at or after t. A
// whole hour counts as the wrapped "60" mark of the previous hour.
func nextNiceMinute(t time.Time) time.Time {
	hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	if hour.Equal(t) {
		return t
	}
	for _, m := range niceMinutes {
		cand := hour.Add(time.Duration(m) * time.Minute)
		if !cand.Before(t) {
			return cand
		}
	}
	return hour.Add(time.Hour)
}

// nextNiceSecond returns the next nice second mark at or after t, a
// whole minute counting as the wrapped "60" mark.
func nextNiceSecond(t time.Time) time.Time {
	minute := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	if minute.Equal(t) {
		return t
	}
	for _, s := range niceSeconds {
		cand := minute.Add(time.Duration(s) * time.Second)
		if !cand.Before(t) {
			return cand
		}
	}
	return minute.Add(time.Minute)
}

// nextNiceMilli returns the next nice millisecond mark at or after t,
// a whole second counting as the wrapped "1000" mark.
func nextNiceMilli(t time.Time) time.Time {
	sec := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	if sec.Equal(t) {
		return t
	}
	for _, ms := range niceMillis {
		cand := sec.Add(time.Duration(ms) * time.Millisecond)
		if !cand.Before(t) {
			return cand
		}
	}
	return sec.Add(time.Second)
}

// nextWeekStart returns the next midnight falling on the configured
// first day of the week, at or after t.
func nextWeekStart(t time.Time, firstDay time.Weekday) time.Time {
	mid := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if mid.Before(t) {
		mid = mid.AddDate(0, 0, 1)
	}
	offset := (int(firstDay) - int(mid.Weekday()) + 7) % 7
	return mid.AddDate(0, 0, offset)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
