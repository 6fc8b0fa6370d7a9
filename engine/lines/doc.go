/*
Package lines prepares raw OCR detections for layout analysis.

The preprocessor estimates the page skew from the detection quads and
projects every quad to an axis-aligned rectangle in a common, skew-free
frame. The grouper clusters the normalized detections into horizontal text
lines, ignoring any column structure; the code-block formatter builds on
the grouper to reconstruct monospace layouts with indentation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lines

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lectio.lines'.
func tracer() tracing.Trace {
	return tracing.Select("lectio.lines")
}
