package shaping

// LetterForm holds the positional presentation forms of one Arabic letter.
// ConnectsToEnd reports whether the letter joins to the following letter
// (dual-joining); right-joining letters like Alef, Dal, Reh and Waw only ever
// join to the preceding letter, so their Initial falls back to Isolated and
// their Medial to Final.
type LetterForm struct {
	Isolated      rune
	Final         rune
	Initial       rune
	Medial        rune
	ConnectsToEnd bool
}

const (
	letterLam            = 0x0644
	letterAlef           = 0x0627
	letterAlefMadda      = 0x0622
	letterAlefHamza      = 0x0623
	letterAlefHamzaBelow = 0x0625
)

// letterForms maps a logical Arabic letter codepoint to its presentation
// forms (Arabic Presentation Forms-B). Static and immutable for the process
// lifetime.
var letterForms = map[rune]LetterForm{
	0x0621: {Isolated: 0xFE80, Final: 0xFE80, Initial: 0xFE80, Medial: 0xFE80},                      // ء Hamza
	0x0622: {Isolated: 0xFE81, Final: 0xFE82, Initial: 0xFE81, Medial: 0xFE82},                      // آ Alef with Madda
	0x0623: {Isolated: 0xFE83, Final: 0xFE84, Initial: 0xFE83, Medial: 0xFE84},                      // أ Alef with Hamza above
	0x0624: {Isolated: 0xFE85, Final: 0xFE86, Initial: 0xFE85, Medial: 0xFE86},                      // ؤ Waw with Hamza
	0x0625: {Isolated: 0xFE87, Final: 0xFE88, Initial: 0xFE87, Medial: 0xFE88},                      // إ Alef with Hamza below
	0x0626: {Isolated: 0xFE89, Final: 0xFE8A, Initial: 0xFE8B, Medial: 0xFE8C, ConnectsToEnd: true}, // ئ Yeh with Hamza
	0x0627: {Isolated: 0xFE8D, Final: 0xFE8E, Initial: 0xFE8D, Medial: 0xFE8E},                      // ا Alef
	0x0628: {Isolated: 0xFE8F, Final: 0xFE90, Initial: 0xFE91, Medial: 0xFE92, ConnectsToEnd: true}, // ب Beh
	0x0629: {Isolated: 0xFE93, Final: 0xFE94, Initial: 0xFE93, Medial: 0xFE94},                      // ة Teh Marbuta
	0x062A: {Isolated: 0xFE95, Final: 0xFE96, Initial: 0xFE97, Medial: 0xFE98, ConnectsToEnd: true}, // ت Teh
	0x062B: {Isolated: 0xFE99, Final: 0xFE9A, Initial: 0xFE9B, Medial: 0xFE9C, ConnectsToEnd: true}, // ث Theh
	0x062C: {Isolated: 0xFE9D, Final: 0xFE9E, Initial: 0xFE9F, Medial: 0xFEA0, ConnectsToEnd: true}, // ج Jeem
	0x062D: {Isolated: 0xFEA1, Final: 0xFEA2, Initial: 0xFEA3, Medial: 0xFEA4, ConnectsToEnd: true}, // ح Hah
	0x062E: {Isolated: 0xFEA5, Final: 0xFEA6, Initial: 0xFEA7, Medial: 0xFEA8, ConnectsToEnd: true}, // خ Khah
	0x062F: {Isolated: 0xFEA9, Final: 0xFEAA, Initial: 0xFEA9, Medial: 0xFEAA},                      // د Dal
	0x0630: {Isolated: 0xFEAB, Final: 0xFEAC, Initial: 0xFEAB, Medial: 0xFEAC},                      // ذ Thal
	0x0631: {Isolated: 0xFEAD, Final: 0xFEAE, Initial: 0xFEAD, Medial: 0xFEAE},                      // ر Reh
	0x0632: {Isolated: 0xFEAF, Final: 0xFEB0, Initial: 0xFEAF, Medial: 0xFEB0},                      // ز Zain
	0x0633: {Isolated: 0xFEB1, Final: 0xFEB2, Initial: 0xFEB3, Medial: 0xFEB4, ConnectsToEnd: true}, // س Seen
	0x0634: {Isolated: 0xFEB5, Final: 0xFEB6, Initial: 0xFEB7, Medial: 0xFEB8, ConnectsToEnd: true}, // ش Sheen
	0x0635: {Isolated: 0xFEB9, Final: 0xFEBA, Initial: 0xFEBB, Medial: 0xFEBC, ConnectsToEnd: true}, // ص Sad
	0x0636: {Isolated: 0xFEBD, Final: 0xFEBE, Initial: 0xFEBF, Medial: 0xFEC0, ConnectsToEnd: true}, // ض Dad
	0x0637: {Isolated: 0xFEC1, Final: 0xFEC2, Initial: 0xFEC3, Medial: 0xFEC4, ConnectsToEnd: true}, // ط Tah
	0x0638: {Isolated: 0xFEC5, Final: 0xFEC6, Initial: 0xFEC7, Medial: 0xFEC8, ConnectsToEnd: true}, // ظ Zah
	0x0639: {Isolated: 0xFEC9, Final: 0xFECA, Initial: 0xFECB, Medial: 0xFECC, ConnectsToEnd: true}, // ع Ain
	0x063A: {Isolated: 0xFECD, Final: 0xFECE, Initial: 0xFECF, Medial: 0xFED0, ConnectsToEnd: true}, // غ Ghain
	0x0640: {Isolated: 0x0640, Final: 0x0640, Initial: 0x0640, Medial: 0x0640, ConnectsToEnd: true}, // ـ Tatweel
	0x0641: {Isolated: 0xFED1, Final: 0xFED2, Initial: 0xFED3, Medial: 0xFED4, ConnectsToEnd: true}, // ف Feh
	0x0642: {Isolated: 0xFED5, Final: 0xFED6, Initial: 0xFED7, Medial: 0xFED8, ConnectsToEnd: true}, // ق Qaf
	0x0643: {Isolated: 0xFED9, Final: 0xFEDA, Initial: 0xFEDB, Medial: 0xFEDC, ConnectsToEnd: true}, // ك Kaf
	0x0644: {Isolated: 0xFEDD, Final: 0xFEDE, Initial: 0xFEDF, Medial: 0xFEE0, ConnectsToEnd: true}, // ل Lam
	0x0645: {Isolated: 0xFEE1, Final: 0xFEE2, Initial: 0xFEE3, Medial: 0xFEE4, ConnectsToEnd: true}, // م Meem
	0x0646: {Isolated: 0xFEE5, Final: 0xFEE6, Initial: 0xFEE7, Medial: 0xFEE8, ConnectsToEnd: true}, // ن Noon
	0x0647: {Isolated: 0xFEE9, Final: 0xFEEA, Initial: 0xFEEB, Medial: 0xFEEC, ConnectsToEnd: true}, // ه Heh
	0x0648: {Isolated: 0xFEED, Final: 0xFEEE, Initial: 0xFEED, Medial: 0xFEEE},                      // و Waw
	0x0649: {Isolated: 0xFEEF, Final: 0xFEF0, Initial: 0xFEEF, Medial: 0xFEF0},                      // ى Alef Maksura
	0x064A: {Isolated: 0xFEF1, Final: 0xFEF2, Initial: 0xFEF3, Medial: 0xFEF4, ConnectsToEnd: true}, // ي Yeh
}

// ligatureForm holds the two shapes of a Lam-Alef ligature. The pair has no
// initial or medial shape: nothing ever joins to an Alef's end.
type ligatureForm struct {
	Isolated rune
	Final    rune
}

// lamAlefLigatures maps the Alef variant following a Lam to the mandatory
// ligature substituting both letters.
var lamAlefLigatures = map[rune]ligatureForm{
	letterAlefMadda:      {Isolated: 0xFEF5, Final: 0xFEF6}, // لآ
	letterAlefHamza:      {Isolated: 0xFEF7, Final: 0xFEF8}, // لأ
	letterAlefHamzaBelow: {Isolated: 0xFEF9, Final: 0xFEFA}, // لإ
	letterAlef:           {Isolated: 0xFEFB, Final: 0xFEFC}, // لا
}
