/*
Package layout is the entry point of layout parsing: it dispatches to one
of eight named parser modes, each composing the preprocessing, column
segmentation, line grouping and paragraph analysis stages into a pipeline.

The mode key names the column model (multi/single) and the flow
reconstruction (para/line/none), plus a code mode for monospace layouts:

	none         pass through, defaulting separators
	multi_para   column segmentation, natural paragraphs
	multi_line   column segmentation, newline after every block
	multi_none   column segmentation, no line breaks
	single_para  one column, natural paragraphs
	single_line  one column, newline after every line
	single_none  one column, no line breaks
	single_code  one column, merged lines with reconstructed indentation

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lectio.layout'.
func tracer() tracing.Trace {
	return tracing.Select("lectio.layout")
}
