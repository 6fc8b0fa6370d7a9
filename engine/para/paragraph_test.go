package para

import (
	"testing"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// testLine is a minimal Line for driving the analyzer.
type testLine struct {
	bbox geom.Rect
	text string
	end  string
}

func (l *testLine) BBox() geom.Rect { return l.bbox }

func (l *testLine) Endpoints() (head, tail rune) {
	return Endpoints(l.text)
}

func (l *testLine) SetEnd(end string) { l.end = end }

func line(x0, y0, x1, y1 float64, text string) *testLine {
	return &testLine{bbox: geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, text: text}
}

func analyze(t *testing.T, lns ...*testLine) {
	t.Helper()
	generic := make([]Line, len(lns))
	for i, l := range lns {
		generic[i] = l
	}
	Analyze(generic)
}

func TestAnalyzeSpacingSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.para")
	defer teardown()
	//
	// two tightly spaced lines, then a third after a wide gap
	l1 := line(0, 0, 100, 10, "foo")
	l2 := line(0, 12, 100, 22, "bar")
	l3 := line(0, 40, 100, 50, "baz")
	analyze(t, l1, l2, l3)
	assert.Equal(t, " ", l1.end)
	assert.Equal(t, "\n", l2.end)
	assert.Equal(t, "\n", l3.end)
}

func TestAnalyzeCJKGlue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.para")
	defer teardown()
	//
	l1 := line(0, 0, 100, 10, "中文测试")
	l2 := line(0, 12, 100, 22, "内容继续")
	analyze(t, l1, l2)
	assert.Equal(t, "", l1.end)
	assert.Equal(t, "\n", l2.end)
}

func TestAnalyzeSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.para")
	defer teardown()
	//
	l1 := line(0, 0, 100, 10, "alone")
	analyze(t, l1)
	assert.Equal(t, "\n", l1.end)
}

func TestAnalyzeOrphanMergesUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.para")
	defer teardown()
	//
	// a short last line: rejected by the edge-alignment sweep, but
	// reattached to the paragraph above as its closing line
	l1 := line(0, 0, 100, 10, "first line of the")
	l2 := line(0, 12, 100, 22, "paragraph body and")
	l3 := line(0, 24, 60, 34, "a short tail.")
	analyze(t, l1, l2, l3)
	assert.Equal(t, " ", l1.end)
	assert.Equal(t, " ", l2.end)
	assert.Equal(t, "\n", l3.end)
}

func TestAnalyzeHyphenGlue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lectio.para")
	defer teardown()
	//
	l1 := line(0, 0, 100, 10, "hyphen-")
	l2 := line(0, 12, 100, 22, "ated")
	analyze(t, l1, l2)
	assert.Equal(t, "", l1.end)
	assert.Equal(t, "\n", l2.end)
}
