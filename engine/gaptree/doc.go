/*
Package gaptree discovers the column structure of a page and derives the
human reading order of its text blocks.

The segmenter sweeps the normalized blocks top to bottom, grouping
vertically overlapping blocks into rows. Within each row the uncovered
horizontal intervals are gaps; gaps persisting across consecutive rows
form vertical cuts, the whitespace corridors separating columns. The cuts
bound rectangular regions, which attach to enclosing earlier regions to
form a layout tree rooted at the full page. A preorder traversal of the
tree—children left to right, blocks top to bottom—yields the reading
order: the left column of a horizontal band is read completely before the
right one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gaptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lectio.gaptree'.
func tracer() tracing.Trace {
	return tracing.Select("lectio.gaptree")
}
