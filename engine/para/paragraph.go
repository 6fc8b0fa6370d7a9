package para

import (
	"math"
	"sort"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
)

// TH is the line-height multiple used as the proximity threshold when
// comparing edge positions and line spacings.
const TH = 1.2

// Line is one line of text, as seen by the paragraph analyzer. The analyzer
// is agnostic of how a line is stored: it may be a single text block, or a
// synthetic line packaging several blocks grouped earlier.
//
// BBox is the line's axis-aligned extent. Endpoints returns the leading and
// trailing character (see Endpoints for the extraction rules). SetEnd
// records the separator to emit after the line.
type Line interface {
	BBox() geom.Rect
	Endpoints() (head, tail rune)
	SetEnd(end string)
}

// paragraph is a run of lines under construction, together with the
// running-average line spacing observed between its lines. spacing is
// undefined until the paragraph has at least two lines.
type paragraph struct {
	lines      []Line
	spacing    float64
	hasSpacing bool
}

// Analyze groups the given lines into natural paragraphs and sets each
// line's end separator: newline after the last line of every paragraph,
// a word separator (possibly empty) after every other line.
//
// Lines are expected to belong to a single column region. The slice is
// re-sorted top to bottom; the caller's ordering is not preserved.
func Analyze(lns []Line) {
	if len(lns) == 0 {
		return
	}
	sort.SliceStable(lns, func(i, j int) bool {
		return lns[i].BBox().Y0 < lns[j].BBox().Y0
	})
	paras := group(lns)
	paras = reattachOrphans(paras)
	tracer().Debugf("%d lines form %d paragraphs", len(lns), len(paras))
	for _, p := range paras {
		for k := 0; k < len(p.lines)-1; k++ {
			_, tail := p.lines[k].Endpoints()
			head, _ := p.lines[k+1].Endpoints()
			p.lines[k].SetEnd(WordSeparator(tail, head))
		}
		p.lines[len(p.lines)-1].SetEnd(ocr.EndNewline)
	}
}

// group sweeps the lines top to bottom, greedily extending the current
// paragraph. A line joins if its left and right edges align with the
// paragraph's running averages and the spacing to the previous line does
// not balloon; edge positions, height and spacing averages are then updated
// by arithmetic mean.
func group(lns []Line) []*paragraph {
	b := lns[0].BBox()
	paraL, paraR := b.X0, b.X1
	paraH := b.Height()
	var paraS float64
	hasS := false
	prevBottom := b.Y1
	cur := &paragraph{lines: []Line{lns[0]}}
	var paras []*paragraph
	for _, ln := range lns[1:] {
		b := ln.BBox()
		h := b.Height()
		ls := b.Y0 - prevBottom
		if math.Abs(paraL-b.X0) <= paraH*TH &&
			math.Abs(paraR-b.X1) <= paraH*TH &&
			(!hasS || ls < paraS+paraH*0.5) {
			paraL = (paraL + b.X0) / 2
			paraR = (paraR + b.X1) / 2
			paraH = (paraH + h) / 2
			if hasS {
				paraS = (paraS + ls) / 2
			} else {
				paraS = ls
				hasS = true
			}
			cur.lines = append(cur.lines, ln)
		} else {
			cur.spacing, cur.hasSpacing = paraS, hasS
			paras = append(paras, cur)
			cur = &paragraph{lines: []Line{ln}}
			paraL, paraR, paraH = b.X0, b.X1, h
			hasS = false
		}
		prevBottom = b.Y1
	}
	cur.spacing, cur.hasSpacing = paraS, hasS
	return append(paras, cur)
}

// reattachOrphans merges single-line paragraphs into an adjacent paragraph
// as its last or first line, where edge alignment and spacing permit.
// Scanned in reverse so that deletions do not disturb pending indices.
func reattachOrphans(paras []*paragraph) []*paragraph {
	for i := len(paras) - 1; i >= 0; i-- {
		p := paras[i]
		if len(p.lines) != 1 {
			continue
		}
		b := p.lines[0].BBox()
		upOK, downOK := false, false
		if i > 0 {
			// tail condition: left aligned, right edge not overshooting,
			// spacing consistent with the paragraph above
			up := paras[i-1]
			ub := up.lines[len(up.lines)-1].BBox()
			upH := ub.Height()
			upOK = math.Abs(ub.X0-b.X0) <= upH*TH && b.X1 <= ub.X1+upH*TH
			if up.hasSpacing && b.Y0-ub.Y1 > up.spacing+upH*0.5 {
				upOK = false
			}
		}
		if i < len(paras)-1 {
			// head condition: left edge aligned or indented like a first
			// line; right edge aligned (or free for a one-liner below)
			down := paras[i+1]
			db := down.lines[0].BBox()
			downH := db.Height()
			if db.X0-downH*TH <= b.X0 && b.X0 <= db.X0+downH*(1+TH) {
				if len(down.lines) > 1 {
					downOK = math.Abs(db.X1-b.X1) <= downH*TH
				} else {
					downOK = db.X1-downH*TH < b.X1
				}
			}
			if down.hasSpacing && db.Y0-b.Y1 > down.spacing+downH*0.5 {
				downOK = false
			}
		}
		switch {
		case upOK && downOK:
			// both legal: attach to the side with the smaller vertical gap
			ub := paras[i-1].lines[len(paras[i-1].lines)-1].BBox()
			db := paras[i+1].lines[0].BBox()
			if b.Y0-ub.Y1 < db.Y0-b.Y1 {
				paras[i-1].lines = append(paras[i-1].lines, p.lines[0])
			} else {
				paras[i+1].lines = append([]Line{p.lines[0]}, paras[i+1].lines...)
			}
		case upOK:
			paras[i-1].lines = append(paras[i-1].lines, p.lines[0])
		case downOK:
			paras[i+1].lines = append([]Line{p.lines[0]}, paras[i+1].lines...)
		}
		if upOK || downOK {
			paras = append(paras[:i], paras[i+1:]...)
		}
	}
	return paras
}
