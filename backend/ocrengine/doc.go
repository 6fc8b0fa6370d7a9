/*
Package ocrengine talks to an external OCR engine process.

The engine is a subprocess speaking newline-delimited JSON: one request
object per line on stdin, one result envelope per line on stdout. An
engine started in server mode instead accepts one request per TCP
connection; a remote engine is reached the same way without spawning
anything. Layout parsing does not depend on this package—the parsers
accept a plain block list from any source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ocrengine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lectio.engine'.
func tracer() tracing.Trace {
	return tracing.Select("lectio.engine")
}
