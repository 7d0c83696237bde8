package bidi

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// We reuse the Bidi_Class constants of golang.org/x/text/unicode/bidi instead
// of inventing our own enumeration. Classification itself, however, is not
// delegated to bidi.LookupRune: the table below is a contract — a prioritized
// sequence of range tests, reproduced in exactly this order. Terminal
// consumers depend on its quirks (TAB is WS, not S; LRM/RLM fold into BN).

// Unicode blocks with strong right-to-left characters.
var arabicLetters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1}, // Arabic
		{Lo: 0x0750, Hi: 0x077F, Stride: 1}, // Arabic Supplement
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1}, // Arabic Extended-A
	},
}

var hebrewLetters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05FF, Stride: 1}, // Hebrew
	},
}

// Arabic-Indic digits live inside the Arabic block and must be carved out
// before the Arabic-letter test, or they would classify as AL.
var arabicDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0660, Hi: 0x0669, Stride: 1}, // Arabic-Indic digits
		{Lo: 0x06F0, Hi: 0x06F9, Stride: 1}, // Extended Arabic-Indic digits
	},
}

// Classify returns the bidi character type for a codepoint. It is a total,
// pure function: undefined codepoints never abort processing, they default
// to ON (or L below 0x80).
func Classify(cp rune) bidi.Class {
	// Explicit directional formatting codes take priority over everything.
	switch cp {
	case 0x202A:
		return bidi.LRE
	case 0x202B:
		return bidi.RLE
	case 0x202C:
		return bidi.PDF
	case 0x202D:
		return bidi.LRO
	case 0x202E:
		return bidi.RLO
	case 0x2066:
		return bidi.LRI
	case 0x2067:
		return bidi.RLI
	case 0x2068:
		return bidi.FSI
	case 0x2069:
		return bidi.PDI
	case 0x200E, 0x200F:
		// LRM/RLM are marks without visual glyphs; for level resolution
		// they fold into BN and are dropped during reordering.
		return bidi.BN
	}
	switch cp {
	case 0x000A, 0x000D, 0x2029:
		return bidi.B
	case 0x0020, 0x0009, 0x00A0:
		return bidi.WS
	case 0x001F:
		return bidi.S
	}
	if unicode.Is(arabicDigits, cp) {
		return bidi.AN
	}
	if unicode.Is(arabicLetters, cp) {
		return bidi.AL
	}
	if unicode.Is(hebrewLetters, cp) {
		return bidi.R
	}
	if cp >= '0' && cp <= '9' {
		return bidi.EN
	}
	switch cp {
	case '.', ',', ':', '/':
		return bidi.CS
	case '+', '-':
		return bidi.ES
	}
	if unicode.Is(unicode.Mn, cp) {
		return bidi.NSM
	}
	if cp < 0x80 {
		return bidi.L
	}
	return bidi.ON
}

// ClassifyAll classifies every codepoint of a text.
func ClassifyAll(text []rune) []bidi.Class {
	classes := make([]bidi.Class, len(text))
	for i, cp := range text {
		classes[i] = Classify(cp)
	}
	return classes
}

// IsExplicit is true for the directional formatting codes LRE, RLE, PDF,
// LRO, RLO, LRI, RLI, FSI and PDI. These are control information, not
// visible content, and are elided from visual output.
func IsExplicit(c bidi.Class) bool {
	switch c {
	case bidi.LRE, bidi.RLE, bidi.PDF, bidi.LRO, bidi.RLO,
		bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

// isStrong is true for the strong types L, R and AL.
func isStrong(c bidi.Class) bool {
	return c == bidi.L || c == bidi.R || c == bidi.AL
}

var classNames = map[bidi.Class]string{
	bidi.L:   "L",
	bidi.R:   "R",
	bidi.AL:  "AL",
	bidi.EN:  "EN",
	bidi.ES:  "ES",
	bidi.ET:  "ET",
	bidi.AN:  "AN",
	bidi.CS:  "CS",
	bidi.NSM: "NSM",
	bidi.B:   "B",
	bidi.S:   "S",
	bidi.WS:  "WS",
	bidi.ON:  "ON",
	bidi.BN:  "BN",
	bidi.LRE: "LRE",
	bidi.RLE: "RLE",
	bidi.PDF: "PDF",
	bidi.LRO: "LRO",
	bidi.RLO: "RLO",
	bidi.LRI: "LRI",
	bidi.RLI: "RLI",
	bidi.FSI: "FSI",
	bidi.PDI: "PDI",
}

// ClassString returns a UAX#9 name for a bidi class, e.g. "AL" or "PDF".
func ClassString(c bidi.Class) string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "?"
}
