/*
Package termbidi renders logical UTF-8 text for directional display in a
terminal-like host.

Text arrives in logical order — the order it was typed or produced — but
mixed-script text (Arabic or Hebrew intermixed with Latin text and digits)
is displayed in visual order, with right-to-left spans reversed and Arabic
letters replaced by their contextual presentation forms. Package termbidi
is the transformation between the two:

   logical UTF-8 in  →  visually ordered, shaped codepoints out

The single entry point is ShapeAndReorder. It composes the pipeline

   codec.Decode → bidi.Classify → bidi.ResolveLevels → shaping.Forms → reorder

and returns a VisualTextRun carrying the visual text, the resolved level
runs, and the measured terminal cell width.

The pipeline is a pure, synchronous transformation. Every invocation owns
its working state exclusively; the only process-wide data are the read-only
classification and shaping tables, so concurrent calls need no locking.
Callers needing throughput should parallelize across independent input
strings.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package termbidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
