package ocr

import (
	"github.com/npillmayer/lectio/core/geom"
)

// End-of-block separators. After layout parsing, every text block carries
// exactly one of these in its End field.
const (
	EndNone    = ""     // glue directly to the following block (CJK, hyphenation)
	EndSpace   = " "    // single space
	EndNewline = "\n"   // end of line or paragraph
)

// TextBlock is a single OCR detection.
//
// Box vertices are ordered top-left, top-right, bottom-right, bottom-left
// and need not be axis-aligned. Text is the recognized string, Score a
// confidence in [0,1]. End is empty on engine output and set by the layout
// parsers; reconstructing the document flow means emitting Text followed by
// End for each block in order.
type TextBlock struct {
	Box   geom.Quad `json:"box"`
	Score float64   `json:"score"`
	Text  string    `json:"text"`
	End   string    `json:"end,omitempty"`
}

// BoxHeight returns the height of the detection box, measured between the
// top-left and bottom-left vertices. Degenerate boxes yield a height of 1
// so that callers may divide by it.
func (tb *TextBlock) BoxHeight() float64 {
	h := tb.Box[geom.BotL].Y - tb.Box[geom.TopL].Y
	if h <= 0 {
		return 1
	}
	return h
}
