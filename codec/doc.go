/*
Package codec implements a defensive UTF-8 codec for terminal-bound text.

The codec differs from package unicode/utf8 of the standard library in two
deliberate ways, both required by terminal-class consumers:

▪︎ An invalid lead byte reports a character length of 1, so that cursor
movement and re-synchronisation after garbage input never stall.

▪︎ Decoding reports a hard error for malformed continuation bytes instead of
silently substituting U+FFFD, because the caller (a display pipeline) must
abort the whole transformation rather than render partial output.

Encoding of out-of-range codepoints (≥ 0x110000) falls back to '?', matching
the behavior terminals traditionally show for unencodable characters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
