package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction returns the shaping direction of s: right-to-left when the
// first bidi run of the paragraph is right-to-left, otherwise
// left-to-right. Mixed-direction strings are shaped as a single run.
func Direction(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
