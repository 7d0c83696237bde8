package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Reordering is phase 3.4 of UAX#9: given the logical text and its resolved
// level runs, produce the text in visual (left-to-right display) order.
//
// We reverse per run rather than per level cascade (rule L2): the resolver
// never produces the deeply nested same-direction levels that would make the
// cascade observable, and per-run reversal keeps reordering stable with
// respect to run boundaries — no run's character set changes, only its
// traversal order.

// Reorder returns a new codepoint slice containing text in visual order.
// Runs with an odd level are reversed codepoint-wise; even runs are copied
// verbatim. Directional formatting codes (and LRM/RLM, classified BN) are
// control information and elided from the output, so the output is never
// longer than the input.
func Reorder(text []rune, runs []Run) []rune {
	return ReorderWith(text, runs, nil)
}

// ReorderWith is Reorder with an additional skip predicate: positions for
// which skip reports true are dropped from the output. Callers use it for
// positions consumed by an earlier transformation, e.g. letters absorbed
// into a ligature. A nil skip drops nothing beyond the control codes.
func ReorderWith(text []rune, runs []Run, skip func(pos int) bool) []rune {
	out := make([]rune, 0, len(text))
	emit := func(i int) {
		if skip != nil && skip(i) {
			return
		}
		out = appendVisible(out, text[i])
	}
	for _, run := range runs {
		if run.IsRTL() {
			for i := run.Start + run.Length - 1; i >= run.Start; i-- {
				emit(i)
			}
		} else {
			for i := run.Start; i < run.Start+run.Length; i++ {
				emit(i)
			}
		}
	}
	return out
}

func appendVisible(out []rune, cp rune) []rune {
	c := Classify(cp)
	if IsExplicit(c) || c == bidi.BN {
		return out
	}
	return append(out, cp)
}
