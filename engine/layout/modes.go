package layout

import (
	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/gaptree"
	"github.com/npillmayer/lectio/engine/lines"
	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/npillmayer/lectio/engine/para"
)

// runNone passes blocks through untouched, defaulting unset separators to
// a newline.
func runNone(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	for _, tb := range blocks {
		if tb.End == "" {
			tb.End = ocr.EndNewline
		}
	}
	return blocks, nil
}

// runMultiPara segments columns and analyzes natural paragraphs within
// every leaf region.
func runMultiPara(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	var out []*ocr.TextBlock
	for _, region := range gaptree.Regions(units) {
		lns := make([]para.Line, len(region))
		for i, u := range region {
			lns[i] = unitLine{u}
		}
		para.Analyze(lns)
		for _, u := range region {
			out = append(out, u.Block)
		}
	}
	return out, nil
}

// runMultiLine segments columns and breaks after every block.
func runMultiLine(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	sorted := gaptree.Sort(units)
	for _, tb := range sorted {
		tb.End = ocr.EndNewline
	}
	return sorted, nil
}

// runMultiNone segments columns and joins adjacent blocks with a word
// separator, breaking only after the last one.
func runMultiNone(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	sorted := gaptree.Sort(units)
	for i, tb := range sorted {
		if i < len(sorted)-1 {
			tb.End = para.SeparatorBetween(tb.Text, sorted[i+1].Text)
		} else {
			tb.End = ocr.EndNewline
		}
	}
	return sorted, nil
}

// runSinglePara groups blocks into lines, packages each line as a
// synthetic one-line unit and analyzes paragraphs over those.
func runSinglePara(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	grouped := lines.Group(units)
	lns := make([]para.Line, len(grouped))
	for i, line := range grouped {
		lns[i] = newGroupedLine(line)
	}
	para.Analyze(lns)
	return lines.Flatten(grouped), nil
}

// runSingleLine groups blocks into lines and flattens them.
func runSingleLine(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	return lines.Flatten(lines.Group(units)), nil
}

// runSingleNone groups blocks into lines, then replaces every interior
// line break with the word separator's verdict.
func runSingleNone(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	out, err := runSingleLine(blocks)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(out)-1; i++ {
		if out[i].End == ocr.EndNewline {
			out[i].End = para.SeparatorBetween(out[i].Text, out[i+1].Text)
		}
	}
	return out, nil
}

// runSingleCode groups blocks into lines, merges every line into one block
// and reconstructs indentation across the merged lines.
func runSingleCode(blocks []*ocr.TextBlock) ([]*ocr.TextBlock, error) {
	units := lines.Preprocess(blocks)
	grouped := lines.Group(units)
	merged := make([]*ocr.TextBlock, len(grouped))
	for i, line := range grouped {
		merged[i] = lines.MergeLine(line)
	}
	lines.Indent(merged)
	return merged, nil
}

// unitLine adapts a single preprocessed unit to the paragraph analyzer.
type unitLine struct {
	u lines.Unit
}

func (l unitLine) BBox() geom.Rect { return l.u.BBox }

func (l unitLine) Endpoints() (head, tail rune) {
	return para.Endpoints(l.u.Block.Text)
}

func (l unitLine) SetEnd(end string) { l.u.Block.End = end }

// groupedLine adapts one grouped line—possibly several blocks—to the
// paragraph analyzer. The separators inside the line were set by the
// grouper already; the line's own end separator lands on its last block.
type groupedLine struct {
	bbox  geom.Rect
	units []lines.Unit
}

func newGroupedLine(line []lines.Unit) *groupedLine {
	bbox := line[0].BBox
	for _, u := range line[1:] {
		bbox = bbox.Union(u.BBox)
	}
	return &groupedLine{bbox: bbox, units: line}
}

func (l *groupedLine) BBox() geom.Rect { return l.bbox }

func (l *groupedLine) Endpoints() (head, tail rune) {
	head, _ = para.Endpoints(l.units[0].Block.Text)
	_, tail = para.Endpoints(l.units[len(l.units)-1].Block.Text)
	return head, tail
}

func (l *groupedLine) SetEnd(end string) {
	l.units[len(l.units)-1].Block.End = end
}
