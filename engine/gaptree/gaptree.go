package gaptree

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/lectio/engine/lines"
	"github.com/npillmayer/lectio/engine/ocr"
)

// eps is the tolerance for matching region edges against cut edges.
// Skew correction introduces floating-point drift, so coordinate equality
// at region boundaries must not be exact.
const eps = 1e-4

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

// gap is a horizontal whitespace interval within a row, kept open while
// consecutive rows continue it.
type gap struct {
	l, r     float64
	firstRow int
}

// cut is a finished vertical whitespace corridor, spanning rows
// top…bottom inclusive.
type cut struct {
	l, r        float64
	top, bottom int
}

// node is a region of the layout tree: a rectangular area bounded by cut
// edges left and right and by row indices top and bottom. The root is the
// synthetic full-page region. Leaves for traversal are identified by
// non-empty units; children and units may both be populated.
type node struct {
	xLeft, xRight float64
	rTop, rBottom int
	units         []lines.Unit
	children      []*node
}

// Sort returns the blocks of the given units in human reading order:
// top to bottom, with the left column of a horizontal band read completely
// before the right column.
func Sort(units []lines.Unit) []*ocr.TextBlock {
	var out []*ocr.TextBlock
	for _, n := range segment(units) {
		for _, u := range n.units {
			out = append(out, u.Block)
		}
	}
	return out
}

// Regions returns the units grouped by leaf region, groups in reading
// order and units within a group top to bottom. Concatenating the groups
// yields the same sequence as Sort.
func Regions(units []lines.Unit) [][]lines.Unit {
	var out [][]lines.Unit
	for _, n := range segment(units) {
		if len(n.units) > 0 {
			out = append(out, n.units)
		}
	}
	return out
}

// segment runs the full pipeline: rows and cuts, layout tree, preorder
// node sequence.
func segment(units []lines.Unit) []*node {
	if len(units) == 0 {
		return nil
	}
	us := append([]lines.Unit(nil), units...)
	sort.SliceStable(us, func(i, j int) bool {
		return us[i].BBox.Y0 < us[j].BBox.Y0
	})
	pageL, pageR := math.Inf(1), math.Inf(-1)
	for _, u := range us {
		pageL = math.Min(pageL, u.BBox.X0)
		pageR = math.Max(pageR, u.BBox.X1)
	}
	// pad the page edges so boundary gaps never coincide with block edges
	cuts, rows := cutsAndRows(us, pageL-1, pageR+1)
	tracer().Debugf("%d rows, %d vertical cuts", len(rows), len(cuts))
	root := buildTree(cuts, rows)
	return preorder(root)
}

// cutsAndRows sweeps the vertically sorted units once, assembling rows and
// tracking which row gaps persist across rows. A row is a maximal run of
// consecutive units whose top does not exceed the running maximum bottom of
// the row so far. Gaps closed by a row become finished cuts ending at the
// previous row; gaps still open at the end close at the last row.
func cutsAndRows(units []lines.Unit, pageL, pageR float64) ([]cut, [][]lines.Unit) {
	var rows [][]lines.Unit
	var cuts []cut
	var open []gap
	i := 0
	for i < len(units) {
		row := []lines.Unit{units[i]}
		bottom := units[i].BBox.Y1
		j := i + 1
		for ; j < len(units); j++ {
			if units[j].BBox.Y0 > bottom {
				break
			}
			row = append(row, units[j])
			bottom = math.Max(bottom, units[j].BBox.Y1)
		}
		i = j
		rowIndex := len(rows)
		sort.SliceStable(row, func(a, b int) bool {
			if row[a].BBox.X0 != row[b].BBox.X0 {
				return row[a].BBox.X0 < row[b].BBox.X0
			}
			return row[a].BBox.X1 < row[b].BBox.X1
		})
		rowGaps := gapsOfRow(row, pageL, pageR, rowIndex)
		var closed []gap
		open, closed = mergeGaps(open, rowGaps)
		for _, g := range closed {
			cuts = append(cuts, cut{g.l, g.r, g.firstRow, rowIndex - 1})
		}
		rows = append(rows, row)
	}
	for _, g := range open {
		cuts = append(cuts, cut{g.l, g.r, g.firstRow, len(rows) - 1})
	}
	sort.SliceStable(cuts, func(a, b int) bool { return cuts[a].l < cuts[b].l })
	return cuts, rows
}

// gapsOfRow walks a row left to right and emits every interval between
// the page-left boundary and the page-right boundary not covered by a
// block, coalescing overlapping blocks by advancing the running right edge.
func gapsOfRow(row []lines.Unit, pageL, pageR float64, rowIndex int) []gap {
	gaps := make([]gap, 0, len(row)+1)
	start := pageL
	for _, u := range row {
		if u.BBox.X0 > start {
			gaps = append(gaps, gap{start, u.BBox.X0, rowIndex})
		}
		if u.BBox.X1 > start {
			start = u.BBox.X1
		}
	}
	return append(gaps, gap{start, pageR, rowIndex})
}

// mergeGaps intersects the open gaps with a new row's gaps. Every
// non-empty intersection continues an open gap, narrowed and keeping its
// first row; intervals touching at a single point still intersect. Open
// gaps without any intersection are closed; row gaps without any become
// newly open. Row gaps are sorted, so the scan per open gap stops at the
// first row gap starting beyond it.
func mergeGaps(open, rowGaps []gap) (kept, closed []gap) {
	matched := make([]bool, len(rowGaps))
	for _, g := range open {
		alive := false
		for j, rg := range rowGaps {
			if rg.l > g.r {
				break
			}
			l, r := math.Max(g.l, rg.l), math.Min(g.r, rg.r)
			if l > r {
				continue
			}
			kept = append(kept, gap{l, r, g.firstRow})
			matched[j] = true
			alive = true
		}
		if !alive {
			closed = append(closed, g)
		}
	}
	for j, rg := range rowGaps {
		if !matched[j] {
			kept = append(kept, rg)
		}
	}
	sort.SliceStable(kept, func(a, b int) bool { return kept[a].l < kept[b].l })
	return kept, closed
}

// span is a cut's horizontal interval projected onto one row.
type span struct {
	l, r float64
}

// buildTree reconstructs per-row column cells from the cuts and grows the
// layout tree. A cell is bounded by the right edge of one cut and the left
// edge of the next; blocks between the same pair of edges across rows
// accumulate in one region. A region closes as soon as one of its edges is
// no longer carried by a cut, or a gap opens strictly inside it; closing
// attaches it to the deepest earlier-closed region whose span encloses its
// right edge.
func buildTree(cuts []cut, rows [][]lines.Unit) *node {
	rowSpans := make([][]span, len(rows))
	for _, c := range cuts {
		for ri := c.top; ri <= c.bottom; ri++ {
			rowSpans[ri] = append(rowSpans[ri], span{c.l, c.r})
		}
	}
	root := &node{
		xLeft:  cuts[0].l - 1,
		xRight: cuts[len(cuts)-1].r + 1,
		rTop:   -1,
		rBottom: -1,
	}
	completed := []*node{root}

	attach := func(n *node) {
		// the candidate parent must horizontally enclose the child's
		// right edge and end above the child's top row; among the
		// deepest such regions the rightmost wins
		nodeR := n.xRight - 2
		var best []*node
		maxR := -2
		for _, cn := range completed {
			if nodeR < cn.xLeft-eps || nodeR > cn.xRight+eps {
				continue
			}
			if cn.rBottom >= n.rTop {
				continue
			}
			if cn.rBottom > maxR {
				maxR = cn.rBottom
				best = best[:0]
				best = append(best, cn)
			} else if cn.rBottom == maxR {
				best = append(best, cn)
			}
		}
		parent := best[0]
		for _, b := range best[1:] {
			if b.xRight > parent.xRight {
				parent = b
			}
		}
		parent.children = append(parent.children, n)
		completed = append(completed, n)
	}

	var active []*node
	for ri, row := range rows {
		spans := rowSpans[ri]
		// close regions whose edges this row no longer carries
		var still []*node
		for _, nd := range active {
			lEdge, rEdge, done := false, false, false
			for _, g := range spans {
				if approxEq(g.r, nd.xLeft) {
					lEdge = true
				}
				if approxEq(g.l, nd.xRight) {
					rEdge = true
				}
				if (nd.xLeft+eps < g.l && g.l < nd.xRight-eps) ||
					(nd.xLeft+eps < g.r && g.r < nd.xRight-eps) {
					done = true // a gap intrudes into the region
					break
				}
			}
			if !lEdge || !rEdge {
				done = true
			}
			if done {
				attach(nd)
			} else {
				nd.rBottom = ri
				still = append(still, nd)
			}
		}
		active = still
		// assign the row's blocks to the cell they fall into
		gi := 0
		for _, u := range row {
			for gi+2 < len(spans) && u.BBox.X0+eps > spans[gi+1].l {
				gi++ // block lies beyond this cell
			}
			xl := spans[gi].r
			xr := spans[gi+1].l
			var target *node
			for _, nd := range active {
				if approxEq(nd.xLeft, xl) && approxEq(nd.xRight, xr) {
					target = nd
					break
				}
			}
			if target == nil {
				target = &node{xLeft: xl, xRight: xr, rTop: ri, rBottom: ri}
				active = append(active, target)
			}
			target.units = append(target.units, u)
		}
	}
	for _, nd := range active {
		attach(nd)
	}
	for _, nd := range completed {
		sort.SliceStable(nd.children, func(a, b int) bool {
			return nd.children[a].xLeft < nd.children[b].xLeft
		})
		sort.SliceStable(nd.units, func(a, b int) bool {
			return nd.units[a].BBox.Y0 < nd.units[b].BBox.Y0
		})
	}
	return root
}

// preorder traverses the tree depth-first, children left to right.
func preorder(root *node) []*node {
	stack := arraystack.New()
	stack.Push(root)
	var seq []*node
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := v.(*node)
		seq = append(seq, n)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack.Push(n.children[i])
		}
	}
	return seq
}
