package lines

import (
	"math"
	"sort"

	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/npillmayer/lectio/engine/para"
)

// Group clusters units into horizontal text lines, ignoring any column
// structure. Within every line the end separator of each block is set: a
// forced space where the horizontal gap to the next block is large, a word
// separator otherwise, and a newline on the last block. Lines are returned
// top to bottom, their blocks left to right.
//
// A unit extends the line opened by the leftmost unconsumed unit if its
// left edge starts no more than one line height before the running right
// edge, its vertical extent stays within half a line height of the line
// opener, and its height differs by no more than 50%.
func Group(units []Unit) [][]Unit {
	us := append([]Unit(nil), units...)
	sort.SliceStable(us, func(i, j int) bool {
		return us[i].BBox.X0 < us[j].BBox.X0
	})
	used := make([]bool, len(us))
	var grouped [][]Unit
	for i1, u1 := range us {
		if used[i1] {
			continue
		}
		used[i1] = true
		h1 := u1.Height()
		right := u1.BBox.X1
		line := []Unit{u1}
		for i2 := i1 + 1; i2 < len(us); i2++ {
			if used[i2] {
				continue
			}
			u2 := us[i2]
			if u2.BBox.X0 < right-h1 {
				continue // starts too far back
			}
			if u2.BBox.Y0 < u1.BBox.Y0-h1*0.5 || u2.BBox.Y1 > u1.BBox.Y1+h1*0.5 {
				continue // vertically off the line
			}
			h2 := u2.Height()
			if math.Abs(h1-h2) > math.Min(h1, h2)*0.5 {
				continue // height mismatch
			}
			line = append(line, u2)
			used[i2] = true
			right = u2.BBox.X1
		}
		for k := 0; k < len(line)-1; k++ {
			a, b := line[k], line[k+1]
			h := (a.Height() + b.Height()) * 0.5
			if b.BBox.X0-a.BBox.X1 > h*1.5 {
				a.Block.End = ocr.EndSpace // gap too wide for glue
				continue
			}
			a.Block.End = para.SeparatorBetween(a.Block.Text, b.Block.Text)
		}
		line[len(line)-1].Block.End = ocr.EndNewline
		grouped = append(grouped, line)
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i][0].BBox.Y0 < grouped[j][0].BBox.Y0
	})
	tracer().Debugf("grouped %d blocks into %d lines", len(units), len(grouped))
	return grouped
}

// Flatten concatenates grouped lines back into a single block sequence.
func Flatten(grouped [][]Unit) []*ocr.TextBlock {
	var out []*ocr.TextBlock
	for _, line := range grouped {
		for _, u := range line {
			out = append(out, u.Block)
		}
	}
	return out
}
