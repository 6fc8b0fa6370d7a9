/*
Package para analyzes the paragraph structure of text lines within a single
column region.

Lines whose left and right edges align and whose vertical spacing stays
steady form a natural paragraph. Lines inside a paragraph are joined by a
word separator chosen from the classes of the characters meeting at the
join (CJK scripts join without a space, Latin scripts with one); the last
line of a paragraph is terminated by a newline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package para

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lectio.para'.
func tracer() tracing.Trace {
	return tracing.Select("lectio.para")
}
