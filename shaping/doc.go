/*
Package shaping provides contextual Arabic letter shaping.

Arabic is a joining script: a letter takes one of up to four positional
shapes — isolated, initial, medial, final — depending on whether it joins to
its neighbors. This package selects the correct presentation-form codepoint
(Unicode block Arabic Presentation Forms-B, U+FE70–U+FEFF) for each letter of
a logical text, and substitutes the mandatory Lam-Alef ligatures.

Shaping is a pure presentation transform on logical letter sequences. It is
independent of embedding levels, so it may run before or after bidi
reordering, as long as it sees the logical adjacency of each Arabic run.
Characters that are not in the shaping table — spaces, digits, punctuation,
non-Arabic text — pass through unchanged and break the join for their
neighbors.

The letter-form table is a compiled-in constant corresponding to the Unicode®
Character Data ArabicShaping table, restricted to the base Arabic block.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
