// Package measure estimates the pixel width of axis labels.
//
// The tick engine itself never measures text; its layout collaborator
// supplies a per-label pixel budget. This package is the helper that
// collaborator can use to derive the budget from a representative label
// and the font it will actually render with, via HarfBuzz shaping.
package measure

import (
	"bytes"
	"errors"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ErrNoFont is returned when an Estimator is created without usable
// font data.
var ErrNoFont = errors.New("measure: no font data")

// Estimator shapes label strings against a parsed font and reports
// their advance widths.
//
// Estimator is safe for concurrent use: the parsed font.Font is
// read-only, a lightweight font.Face is created per call, and the
// HarfBuzz shapers are pooled because they carry mutable buffers.
type Estimator struct {
	fnt  *font.Font
	size float64

	shaperPool sync.Pool
}

// NewEstimator parses TTF/OTF font data and returns an estimator for
// the given pixel size.
func NewEstimator(ttf []byte, sizePx float64) (*Estimator, error) {
	if len(ttf) == 0 {
		return nil, ErrNoFont
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	if sizePx <= 0 {
		sizePx = 12
	}
	return &Estimator{
		fnt:  face.Font,
		size: sizePx,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// LabelWidth returns the advance width of a label in pixels. Multi-line
// labels (the Years tier stacks day and year) report the widest line.
func (e *Estimator) LabelWidth(label string) float64 {
	var widest float64
	for line := range strings.SplitSeq(label, "\n") {
		if w := e.lineWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// TargetLabelSize returns a per-label pixel budget for a representative
// label: its width plus padding on both sides. Feed the result to the
// axis as the target label size.
func (e *Estimator) TargetLabelSize(sample string, padding float64) float64 {
	return e.LabelWidth(sample) + 2*padding
}

func (e *Estimator) lineWidth(line string) float64 {
	if line == "" {
		return 0
	}
	runes := []rune(line)

	// font.Face is not safe for concurrent use; one per call is cheap,
	// it just wraps the shared read-only Font.
	goFace := font.NewFace(e.fnt)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goFace,
		Size:      floatToFixed(e.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := e.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	e.shaperPool.Put(shaper)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return fixedToFloat(advance)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script labels should be split by the
// caller before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
