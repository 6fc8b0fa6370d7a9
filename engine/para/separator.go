package para

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lectio/engine/ocr"
	"github.com/scalecode-solutions/runeseg"
	"golang.org/x/text/unicode/norm"
)

// cjk covers the Chinese, Japanese and Korean character sets plus the
// associated full-width symbols and punctuation.
var cjk = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11FF, Stride: 1}, // Hangul Jamo
		{Lo: 0x3000, Hi: 0x303F, Stride: 1}, // CJK symbols and punctuation
		{Lo: 0x3040, Hi: 0x30FF, Stride: 1}, // Hiragana, Katakana
		{Lo: 0x3130, Hi: 0x318F, Stride: 1}, // Hangul compatibility Jamo
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK unified ideographs
		{Lo: 0xAC00, Hi: 0xD7AF, Stride: 1}, // Hangul syllables
		{Lo: 0xFE30, Hi: 0xFE4F, Stride: 1}, // CJK compatibility forms
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}, // half-width and full-width forms
	},
}

func isCJK(r rune) bool {
	return unicode.Is(cjk, r)
}

// WordSeparator returns the separator to emit between two adjacent runs of
// text, given the trailing character of the first run and the leading
// character of the second.
//
// Two CJK characters join without a separator, as does a run ending in a
// hyphen (soft hyphenation at a line break). No separator is placed in
// front of punctuation. Everything else is joined by a single space.
// The zero rune—an empty run—never matches any of the glue rules, so
// empty text degrades to a space.
//
// Only the ASCII hyphen-minus triggers the hyphenation rule; soft hyphen
// (U+00AD) and the dash punctuation block (U+2010…2015) are ordinary
// characters here.
func WordSeparator(tail, head rune) string {
	if isCJK(tail) && isCJK(head) {
		return ocr.EndNone
	}
	if tail == '-' {
		return ocr.EndNone
	}
	if unicode.IsPunct(head) {
		return ocr.EndNone
	}
	return ocr.EndSpace
}

// SeparatorBetween returns the separator to emit between two text fragments,
// applying WordSeparator to the characters meeting at the join.
func SeparatorBetween(left, right string) string {
	_, tail := Endpoints(left)
	head, _ := Endpoints(right)
	return WordSeparator(tail, head)
}

// Endpoints returns the leading and trailing character of a text fragment,
// for feeding into WordSeparator. The fragment is NFC-normalized first and
// then segmented into grapheme clusters, so that combining sequences count
// as one character; the base rune of the boundary cluster is returned.
// Both endpoints are the zero rune for empty text.
func Endpoints(text string) (head, tail rune) {
	if text == "" {
		return 0, 0
	}
	rest := norm.NFC.String(text)
	state := -1
	var cluster string
	first := true
	for len(rest) > 0 {
		cluster, rest, _, state = runeseg.FirstGraphemeClusterInString(rest, state)
		if first {
			head, _ = utf8.DecodeRuneInString(cluster)
			first = false
		}
	}
	tail, _ = utf8.DecodeRuneInString(cluster)
	return head, tail
}
