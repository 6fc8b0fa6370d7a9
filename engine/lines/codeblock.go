package lines

import (
	"math"
	"sort"
	"strings"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
)

// MergeLine collapses a grouped line into its leading block. Texts are
// concatenated with two spaces per line-height unit of horizontal gap
// between adjacent parts, approximating the whitespace of a monospace
// layout. The leading block's box becomes the axis-aligned union of the
// merged boxes, its score the mean of the parts, its end a newline.
func MergeLine(line []Unit) *ocr.TextBlock {
	a := line[0].Block
	ha := a.BoxHeight()
	score := a.Score
	for i := 1; i < len(line); i++ {
		b := line[i].Block
		ha = (ha + b.BoxHeight()) / 2
		gap := b.Box[geom.TopL].X - a.Box[geom.TopR].X
		spaces := 0
		if gap > 0 {
			spaces = int(math.Round(gap / ha))
		}
		a.Text += strings.Repeat("  ", spaces) + b.Text
		merged := a.Box.Bounds().Union(b.Box.Bounds())
		a.Box = geom.RectQuad(merged)
		score += b.Score
	}
	a.Score = score / float64(len(line))
	a.End = ocr.EndNewline
	return a
}

// Indent reconstructs leading indentation across merged lines. Indentation
// rungs are laid out from the leftmost line start in steps of the average
// line height; each line is prefixed with two spaces per rung step its
// left edge lies beyond the leftmost start, rounded to the nearest rung,
// and its box is flushed to the common left margin.
func Indent(tbs []*ocr.TextBlock) {
	if len(tbs) == 0 {
		return
	}
	var lh float64
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for _, tb := range tbs {
		lh += tb.Box[geom.BotL].Y - tb.Box[geom.TopL].Y
		x := tb.Box[geom.TopL].X
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
	}
	lh /= float64(len(tbs))
	if lh <= 0 {
		lh = 1
	}
	var rungs []float64
	for x := xMin; x < xMax; x += lh {
		rungs = append(rungs, x)
	}
	for _, tb := range tbs {
		level := sort.SearchFloat64s(rungs, tb.Box[geom.TopL].X+lh/2) - 1
		if level < 0 {
			level = 0
		}
		tb.Text = strings.Repeat("  ", level) + tb.Text
		tb.Box[geom.TopL].X = xMin
		tb.Box[geom.BotL].X = xMin
	}
}
