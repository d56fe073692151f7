package chronoaxis

import (
	"math"
	"slices"
)

// maxTicksPerPass bounds every sequencing loop. Selection keeps tick
// counts near the label target, so hitting this limit means degenerate
// input; the loop stops rather than spinning.
const maxTicksPerPass = 4096

// generateTicks walks from the selection's anchor and emits the major
// and minor tick positions inside the range. Major ticks on the Years
// and Months tiers advance with exact calendar arithmetic; all other
// tiers step linearly in Moment units.
//
// Tolerances are step-relative: float error on a Moment near the
// present is microseconds-scale, so a span-relative epsilon would
// swallow millisecond steps entirely.
func generateTicks(c Codec, r Range, sel selection) (major, minor []Moment, err error) {
	if sel.Step.Magnitude <= 0 || math.IsNaN(sel.Step.Magnitude) {
		return nil, nil, ErrInvalidStep
	}
	lo, hi := r.ordered()
	if lo == hi {
		// A single instant gets exactly one major tick and no minors.
		return []Moment{lo}, nil, nil
	}

	major = majorTicks(c, sel, lo, hi)
	if len(major) == 0 {
		// The anchor can land past a narrow range (one tier bucket
		// wide). Step backward from it so the range still gets a mark.
		major = backfillMajor(c, sel, lo, hi)
	}
	minor = minorTicks(c, sel, major, lo, hi)
	return major, minor, nil
}

func majorTicks(c Codec, sel selection, lo, hi float64) []Moment {
	eps := sel.Step.Magnitude / 100
	var out []Moment
	accept := func(m Moment) bool {
		if math.IsNaN(m) || m < lo-eps || m > hi+eps {
			return false
		}
		out = append(out, clamp(m, lo, hi))
		return true
	}
	if sel.StepMonths > 0 && (sel.Step.Tier == TierYears || sel.Step.Tier == TierMonths) {
		anchor := c.ToDate(sel.Anchor)
		for i := 0; i < maxTicksPerPass; i++ {
			m := c.ToMoment(anchor.AddDate(0, i*sel.StepMonths, 0))
			if math.IsNaN(m) || m > hi+eps {
				break
			}
			accept(m)
		}
		return out
	}
	step := sel.Step.Magnitude
	for i := 0; i < maxTicksPerPass; i++ {
		m := sel.Anchor + float64(i)*step
		if m > hi+eps {
			break
		}
		accept(m)
	}
	return out
}

// backfillMajor walks backward from an anchor that overshot the range.
func backfillMajor(c Codec, sel selection, lo, hi float64) []Moment {
	eps := sel.Step.Magnitude / 100
	var out []Moment
	if sel.StepMonths > 0 {
		anchor := c.ToDate(sel.Anchor)
		for i := 1; i < maxTicksPerPass; i++ {
			m := c.ToMoment(anchor.AddDate(0, -i*sel.StepMonths, 0))
			if math.IsNaN(m) || m < lo-eps {
				break
			}
			if m <= hi+eps {
				out = append(out, clamp(m, lo, hi))
			}
		}
	} else {
		for i := 1; i < maxTicksPerPass; i++ {
			m := sel.Anchor - float64(i)*sel.Step.Magnitude
			if m < lo-eps {
				break
			}
			if m <= hi+eps {
				out = append(out, clamp(m, lo, hi))
			}
		}
	}
	slices.Sort(out)
	return out
}

// minorTicks subdivides around the major ticks: backward from the
// first major down to the range minimum, then forward through each gap
// and past the last major. Minors fall strictly inside the open range
// and never coincide with a major tick.
func minorTicks(c Codec, sel selection, major []Moment, lo, hi float64) []Moment {
	if len(major) == 0 {
		return nil
	}
	gap := sel.Step.Magnitude
	if len(major) > 1 {
		gap = major[1] - major[0]
	}
	step := sel.MinorStep
	if step <= 0 {
		step = gap / 2
	}
	if step <= 0 || step*float64(maxTicksPerPass) < hi-lo {
		return nil
	}
	eps := step / 100

	// Calendar stepping applies only to a resolved month-based minor
	// step; a halved gap (MinorStep zero) subdivides linearly even under
	// a calendar major tier.
	calendarMinor := sel.MinorStep > 0 &&
		(sel.MinorTier == TierMonths || sel.MinorTier == TierYears)
	var out []Moment
	add := func(m Moment) {
		if m <= lo+eps || m >= hi-eps {
			return
		}
		for _, mj := range major {
			if math.Abs(m-mj) <= eps {
				return
			}
		}
		out = append(out, m)
	}

	// Backward from the first major tick.
	if calendarMinor {
		months := minorMonths(sel)
		first := c.ToDate(major[0])
		for i := 1; i < maxTicksPerPass; i++ {
			m := c.ToMoment(first.AddDate(0, -i*months, 0))
			if math.IsNaN(m) || m <= lo+eps {
				break
			}
			add(m)
		}
	} else {
		for i := 1; i < maxTicksPerPass; i++ {
			m := major[0] - float64(i)*step
			if m <= lo+eps {
				break
			}
			add(m)
		}
	}

	// Forward from each major tick up to the next one, then past the
	// last major until the range ends.
	for gi, start := range major {
		limit := hi
		if gi+1 < len(major) {
			limit = major[gi+1]
		}
		if calendarMinor {
			months := minorMonths(sel)
			base := c.ToDate(start)
			for i := 1; i < maxTicksPerPass; i++ {
				m := c.ToMoment(base.AddDate(0, i*months, 0))
				if math.IsNaN(m) || m >= limit-eps {
					break
				}
				add(m)
			}
		} else {
			for i := 1; i < maxTicksPerPass; i++ {
				m := start + float64(i)*step
				if m >= limit-eps {
					break
				}
				add(m)
			}
		}
	}

	slices.Sort(out)
	return out
}

// minorMonths converts a calendar minor tier to a whole-month stride.
func minorMonths(sel selection) int {
	if sel.MinorTier == TierYears {
		return 12
	}
	return 1
}

func clamp(m, lo, hi float64) float64 {
	return math.Min(math.Max(m, lo), hi)
}
