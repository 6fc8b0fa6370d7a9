package lines

import (
	"testing"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestMergeLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.lines")
	defer teardown()
	//
	a := block(0, 0, 50, 10, "let")
	a.Score = 0.8
	b := block(70, 0, 120, 10, "x")
	b.Score = 0.6
	grouped := Group(Preprocess([]*ocr.TextBlock{a, b}))
	assert.Len(t, grouped, 1)
	merged := MergeLine(grouped[0])
	// gap of 20px at line height 10 becomes two double-space units
	assert.Equal(t, "let    x", merged.Text)
	assert.Equal(t, "\n", merged.End)
	assert.InDelta(t, 0.7, merged.Score, 1e-9)
	assert.Equal(t, 0.0, merged.Box[geom.TopL].X)
	assert.Equal(t, 120.0, merged.Box[geom.TopR].X)
}

func TestIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.lines")
	defer teardown()
	//
	blocks := []*ocr.TextBlock{
		block(10, 0, 210, 12, "func main() {"),
		block(30, 20, 230, 32, "return"),
		block(10, 40, 210, 52, "}"),
	}
	grouped := Group(Preprocess(blocks))
	assert.Len(t, grouped, 3)
	merged := make([]*ocr.TextBlock, len(grouped))
	for i, line := range grouped {
		merged[i] = MergeLine(line)
	}
	Indent(merged)
	assert.Equal(t, "func main() {", merged[0].Text)
	assert.Equal(t, "  return", merged[1].Text)
	assert.Equal(t, "}", merged[2].Text)
	for _, tb := range merged {
		assert.Equal(t, 10.0, tb.Box[geom.TopL].X)
		assert.Equal(t, 10.0, tb.Box[geom.BotL].X)
	}
}
