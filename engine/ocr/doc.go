/*
Package ocr defines the text block record produced by OCR engines and
consumed and re-emitted by the layout parsers, together with the status
codes of the engine's result envelope.

A text block is a single OCR detection: a quadrilateral bounding box, a
recognized string, and a confidence score. A text block is not necessarily
a complete sentence or paragraph; it usually is a scattered fragment, one
among many per page. Layout parsing re-orders the fragments and annotates
each with an end-of-block separator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ocr
