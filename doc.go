// Package chronoaxis selects tick intervals and formats labels for
// chart axes that display calendar time along a continuous numeric
// coordinate.
//
// # Overview
//
// The axis coordinate is a Moment: a fractional count of days since the
// 1899 spreadsheet epoch. Given a visible Range and the available pixel
// size, a Recompute pass
//
//   - picks a human-legible step across seven calendar magnitudes
//     (years down to milliseconds),
//   - walks from a calendar-aligned anchor with month-exact arithmetic
//     to produce major and minor tick positions, and
//   - decides per tick whether its label needs extra context (a
//     "landmark" label) because a coarser calendar boundary was crossed
//     since the previous tick.
//
// # Quick start
//
//	ax := chronoaxis.New(chronoaxis.WithLocale(language.BritishEnglish))
//
//	lo := ax.ToNumeric(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
//	hi := ax.ToNumeric(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC))
//
//	res, err := ax.Recompute(chronoaxis.Range{Min: lo, Max: hi}, 800)
//	if err != nil {
//	    // only degenerate input (NaN range, bad manual step) fails
//	}
//	for _, tick := range res.Ticks {
//	    fmt.Println(tick.Label)
//	}
//
// The rendering collaborator draws gridlines at the positions from
// GetTickValues and asks FormatValue for any additional label text
// (crosshairs, tooltips); both stay consistent with the last pass.
//
// # Concurrency
//
// Recompute is synchronous and deterministic, and an Axis assumes a
// single writer. Share TickResult values freely; they are never mutated
// after a pass completes.
package chronoaxis
