package gaptree

import (
	"testing"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/lines"
	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func unit(x0, y0, x1, y1 float64, text string) lines.Unit {
	return lines.Unit{
		BBox: geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Block: &ocr.TextBlock{
			Box:   geom.RectQuad(geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}),
			Score: 0.9,
			Text:  text,
		},
	}
}

func texts(blocks []*ocr.TextBlock) []string {
	out := make([]string, len(blocks))
	for i, tb := range blocks {
		out[i] = tb.Text
	}
	return out
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, Sort(nil))
}

func TestSortSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	out := Sort([]lines.Unit{unit(0, 0, 50, 10, "only")})
	assert.Equal(t, []string{"only"}, texts(out))
}

func TestSortTwoColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	units := []lines.Unit{
		unit(0, 0, 50, 10, "A1"),
		unit(60, 0, 110, 10, "B1"),
		unit(0, 20, 50, 30, "A2"),
		unit(60, 20, 110, 30, "B2"),
	}
	out := Sort(units)
	// the left column is read completely before the right one
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, texts(out))
}

func TestSortOneRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	units := []lines.Unit{
		unit(60, 0, 110, 10, "right"),
		unit(0, 0, 50, 10, "left"),
	}
	out := Sort(units)
	assert.Equal(t, []string{"left", "right"}, texts(out))
}

func TestSortColumnsOverFullWidthHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	// a full-width header above a two-column body: header first, then the
	// left column, then the right column
	units := []lines.Unit{
		unit(0, 0, 110, 10, "head"),
		unit(0, 20, 50, 30, "A1"),
		unit(60, 20, 110, 30, "B1"),
		unit(0, 40, 50, 50, "A2"),
		unit(60, 40, 110, 50, "B2"),
	}
	out := Sort(units)
	assert.Equal(t, []string{"head", "A1", "A2", "B1", "B2"}, texts(out))
}

func TestRegionsGrouping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	units := []lines.Unit{
		unit(0, 0, 50, 10, "A1"),
		unit(60, 0, 110, 10, "B1"),
		unit(0, 20, 50, 30, "A2"),
		unit(60, 20, 110, 30, "B2"),
	}
	regions := Regions(units)
	assert.Len(t, regions, 2)
	assert.Equal(t, "A1", regions[0][0].Block.Text)
	assert.Equal(t, "A2", regions[0][1].Block.Text)
	assert.Equal(t, "B1", regions[1][0].Block.Text)
}

func TestSortToleratesFloatDrift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	// column edges drifting by less than the matching tolerance must not
	// split a column into separate regions
	units := []lines.Unit{
		unit(0, 0, 50, 10, "A1"),
		unit(60, 0, 110, 10, "B1"),
		unit(0.00002, 20, 49.99997, 30, "A2"),
		unit(60.00003, 20, 110.00001, 30, "B2"),
	}
	out := Sort(units)
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, texts(out))
	assert.Len(t, Regions(units), 2)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.gaptree")
	defer teardown()
	//
	units := []lines.Unit{
		unit(0, 20, 50, 30, "second"),
		unit(0, 0, 50, 10, "first"),
	}
	Sort(units)
	assert.Equal(t, "second", units[0].Block.Text)
}
