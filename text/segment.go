package text

import (
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Direction is the horizontal writing direction of a run of text.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, ...).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// DetectDirection returns the direction of the first strongly directional
// rune in s, or DirectionLTR if there is none.
func DetectDirection(s string) Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return DirectionRTL
		case bidi.L:
			return DirectionLTR
		}
	}
	return DirectionLTR
}

// run is a maximal substring with one direction.
type run struct {
	text string
	dir  Direction
}

// visualRuns normalizes s to NFC and splits it into bidi runs in visual
// (left-to-right display) order.
func visualRuns(s string) []run {
	s = norm.NFC.String(s)
	if s == "" {
		return nil
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []run{{text: s, dir: DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []run{{text: s, dir: DirectionLTR}}
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		dir := DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, run{text: r.String(), dir: dir})
	}
	return runs
}

// reverseRunes returns s with its runes in reverse order.
func reverseRunes(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
