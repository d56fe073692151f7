package chronoaxis

import (
	"math"
	"time"

	"golang.org/x/text/language"
)

// Range is the visible numeric span of the axis, in Moment units. It is
// deliberately unordered: during interactive panning Min may transiently
// exceed Max, and the engine orders the endpoints itself.
type Range struct {
	Min, Max float64
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsInf(r.Min, 0) &&
		!math.IsNaN(r.Max) && !math.IsInf(r.Max, 0)
}

func (r Range) ordered() (lo, hi float64) {
	if r.Min > r.Max {
		return r.Max, r.Min
	}
	return r.Min, r.Max
}

// Tick is one tick mark produced by a recompute pass. Ticks are value
// objects: every pass produces a fresh slice and nothing tracks tick
// identity between passes.
type Tick struct {
	Position Moment
	Major    bool
	Landmark bool
	// Field is the calendar field that triggered the landmark
	// classification, or FieldNone.
	Field Field
	Label string
}

// TickResult is the complete outcome of one recompute pass: the active
// tier, step, landmark flags, and the tick positions and labels the
// rendering collaborator needs. It replaces mutable per-axis caches —
// selection, sequencing, and formatting all read the same result value.
type TickResult struct {
	Tier      Tier
	MinorTier Tier
	Step      Step
	Flags     Flags

	// Ticks holds the major ticks in ascending order, labelled and
	// landmark-classified.
	Ticks []Tick

	// LabelPositions, MajorTicks, and MinorTicks are the raw position
	// sequences for gridline and label placement. LabelPositions
	// mirrors MajorTicks; labels sit on the major marks.
	LabelPositions []Moment
	MajorTicks     []Moment
	MinorTicks     []Moment
}

// Axis is a chronological axis: it selects tick intervals, sequences
// tick positions with calendar-aware arithmetic, and formats labels.
//
// An Axis is not safe for concurrent use. The owning plot recomputes it
// on its own thread; Recompute reads all inputs at call start and
// retains no references into caller state.
type Axis struct {
	codec Codec

	intervalType      Tier
	minorIntervalType Tier
	manualStep        float64
	format            string
	loc               *locale
	firstDay          time.Weekday
	firstDaySet       bool
	weekRule          WeekRule
	weekRuleSet       bool
	targetLabelSize   float64

	now func() time.Time

	// last is the current pass context, consulted by GetTickValues and
	// FormatValue so labels stay consistent with the ticks on screen.
	last *TickResult
}

// Option configures an Axis during creation.
type Option func(*Axis)

// WithIntervalType forces the major tick tier. TierAuto (the default)
// derives the tier from the range; TierManual uses the magnitude given
// to WithInterval.
func WithIntervalType(t Tier) Option {
	return func(a *Axis) { a.intervalType = t }
}

// WithMinorIntervalType controls minor tick subdivision. TierAuto
// halves the major gap; TierManual steps by one unit of a fixed
// per-tier default; a concrete tier steps by one of its units.
func WithMinorIntervalType(t Tier) Option {
	return func(a *Axis) { a.minorIntervalType = t }
}

// WithInterval sets the manual major step in Moment (day) units, used
// when the interval type is TierManual.
func WithInterval(days float64) Option {
	return func(a *Axis) { a.manualStep = days }
}

// WithFormat overrides the per-tier label patterns with a single
// pattern string (token syntax documented on the formatter).
func WithFormat(pattern string) Option {
	return func(a *Axis) { a.format = pattern }
}

// WithLocale selects the formatting locale. Unsupported tags fall back
// to the closest catalogue entry via language matching.
func WithLocale(tag language.Tag) Option {
	return func(a *Axis) { a.loc = lookupLocale(tag) }
}

// WithLocation projects dates into the given zone at format time.
// Stored coordinates are never zone-shifted.
func WithLocation(loc *time.Location) Option {
	return func(a *Axis) { a.codec.Location = loc }
}

// WithFirstDayOfWeek overrides the locale's first day of the week,
// used by the Weeks tier anchor and week numbering.
func WithFirstDayOfWeek(d time.Weekday) Option {
	return func(a *Axis) { a.firstDay = d; a.firstDaySet = true }
}

// WithWeekRule overrides the locale's week numbering rule.
func WithWeekRule(r WeekRule) Option {
	return func(a *Axis) { a.weekRule = r; a.weekRuleSet = true }
}

// WithTargetLabelSize sets the pixel budget per label used to derive
// the target label count from the available size. Default 60.
func WithTargetLabelSize(px float64) Option {
	return func(a *Axis) {
		if px > 0 {
			a.targetLabelSize = px
		}
	}
}

// WithNow fixes the engine's notion of the current date. The landmark
// analysis compares the range against the real-world year; tests pin it
// for determinism.
func WithNow(now func() time.Time) Option {
	return func(a *Axis) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates a chronological axis with the given options.
func New(opts ...Option) *Axis {
	a := &Axis{
		intervalType:      TierAuto,
		minorIntervalType: TierAuto,
		loc:               &locales[0],
		targetLabelSize:   60,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ToNumeric converts a calendar date to this axis's coordinate.
// Data-ingestion collaborators use it to place values on the axis.
func (a *Axis) ToNumeric(t time.Time) Moment { return a.codec.ToMoment(t) }

// ToDate converts an axis coordinate back to a calendar date, with the
// configured zone applied. Invalid coordinates yield the zero date.
func (a *Axis) ToDate(m Moment) time.Time { return a.codec.dateAt(m) }

// Recompute runs the full selection → sequencing → landmark → label
// pipeline for the visible range and available pixel size. It is
// synchronous and deterministic: identical inputs produce identical
// results. The returned result also becomes the context for
// GetTickValues and FormatValue until the next call.
func (a *Axis) Recompute(r Range, availableSize float64) (*TickResult, error) {
	if !r.valid() {
		return nil, ErrInvalidRange
	}
	labelCount := 1
	if availableSize > 0 && !math.IsNaN(availableSize) {
		labelCount = maxInt(1, int(math.Floor(availableSize/a.targetLabelSize)))
	}

	sel, err := selectInterval(a.selectorConfig(), r, labelCount)
	if err != nil {
		return nil, err
	}

	major, minor, err := generateTicks(a.codec, r, sel)
	if err != nil {
		return nil, err
	}

	flags := analyzeRange(a.codec, r, a.now())
	classes := classifyTicks(a.codec, flags, major)
	fmtr := a.formatter()

	ticks := make([]Tick, len(major))
	labels := make([]Moment, len(major))
	for i, m := range major {
		ticks[i] = Tick{
			Position: m,
			Major:    true,
			Landmark: classes[i].Landmark,
			Field:    classes[i].Field,
			Label:    fmtr.formatTick(a.codec, m, sel.Step.Tier, classes[i]),
		}
		labels[i] = m
	}

	res := &TickResult{
		Tier:           sel.Step.Tier,
		MinorTier:      sel.MinorTier,
		Step:           sel.Step,
		Flags:          flags,
		Ticks:          ticks,
		LabelPositions: labels,
		MajorTicks:     major,
		MinorTicks:     minor,
	}
	a.last = res

	Logger().Debug("axis recompute",
		"tier", sel.Step.Tier.String(),
		"stepDays", sel.Step.Magnitude,
		"majorTicks", len(major),
		"minorTicks", len(minor),
		"flags", flags.String())
	return res, nil
}

// GetTickValues returns the label, major tick, and minor tick positions
// from the current pass, for gridline and tick rendering. All three are
// nil before the first Recompute.
func (a *Axis) GetTickValues() (labelPositions, majorTicks, minorTicks []Moment) {
	if a.last == nil {
		return nil, nil, nil
	}
	return a.last.LabelPositions, a.last.MajorTicks, a.last.MinorTicks
}

// FormatValue renders the label for an arbitrary axis position using
// the current pass's tier, so crosshair or tooltip labels match the
// tick labels on screen. Before the first Recompute (or with a format
// override) it falls back to the override, else the locale short date.
func (a *Axis) FormatValue(m Moment) string {
	fmtr := a.formatter()
	if a.last == nil {
		t := a.codec.dateAt(m)
		if t.IsZero() {
			return ""
		}
		pattern := a.format
		if pattern == "" {
			pattern = fmtr.loc.shortDate
		}
		return fmtr.expand(pattern, t)
	}
	return fmtr.formatTick(a.codec, m, a.last.Tier, tickClass{})
}

func (a *Axis) selectorConfig() selectorConfig {
	return selectorConfig{
		codec:       a.codec,
		policy:      a.intervalType,
		minorPolicy: a.minorIntervalType,
		manualStep:  a.manualStep,
		firstDay:    a.resolvedFirstDay(),
	}
}

func (a *Axis) formatter() formatter {
	return formatter{
		loc:      a.loc,
		firstDay: a.resolvedFirstDay(),
		weekRule: a.resolvedWeekRule(),
		override: a.format,
	}
}

func (a *Axis) resolvedFirstDay() time.Weekday {
	if a.firstDaySet {
		return a.firstDay
	}
	return a.loc.firstDay
}

func (a *Axis) resolvedWeekRule() WeekRule {
	if a.weekRuleSet {
		return a.weekRule
	}
	return a.loc.weekRule
}
