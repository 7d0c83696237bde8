package bidi

import "testing"

func reorderString(t *testing.T, input string, baseLevel int) string {
	t.Helper()
	text := []rune(input)
	runs := ResolveLevels(ClassifyAll(text), baseLevel)
	return string(Reorder(text, runs))
}

func TestReorderLatinIsStable(t *testing.T) {
	out := reorderString(t, "Hello, world", 0)
	if out != "Hello, world" {
		t.Errorf("pure LTR text must not be reordered, got %q", out)
	}
}

func TestReorderArabicReverses(t *testing.T) {
	out := reorderString(t, "مرحبا", 1)
	if out != "ابحرم" {
		t.Errorf("expected reversed codepoints %q, got %q", "ابحرم", out)
	}
}

func TestReorderMixed(t *testing.T) {
	// LTR paragraph with an embedded RTL word: the Arabic run is reversed
	// in place, the Latin runs keep their order.
	out := reorderString(t, "abc مرحبا def", 0)
	if out != "abc ابحرم def" {
		t.Errorf("got %q", out)
	}
}

func TestReorderElidesFormattingCodes(t *testing.T) {
	// RLO a b c PDF: the override forces the Latin letters onto an odd
	// level; the formatting codes themselves must not appear in the output.
	out := reorderString(t, "‮abc‬", 0)
	if out != "cba" {
		t.Errorf("expected %q, got %q", "cba", out)
	}
}

func TestReorderElidesDirectionalMarks(t *testing.T) {
	out := reorderString(t, "a‎b‏c", 0)
	if out != "abc" {
		t.Errorf("LRM/RLM must be dropped, got %q", out)
	}
}

func TestReorderWithSkipsPositions(t *testing.T) {
	text := []rune("abcd")
	runs := ResolveLevels(ClassifyAll(text), 0)
	out := ReorderWith(text, runs, func(pos int) bool { return pos == 1 })
	if string(out) != "acd" {
		t.Errorf("expected skipped position to be dropped, got %q", string(out))
	}
}

func TestReorderNeverGrows(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"مرحبا",
		"a‫ب‬c",
		"⁧الله⁩ is a word",
	}
	for _, input := range inputs {
		text := []rune(input)
		runs := ResolveLevels(ClassifyAll(text), 0)
		out := Reorder(text, runs)
		if len(out) > len(text) {
			t.Errorf("%q: output length %d exceeds input length %d", input, len(out), len(text))
		}
	}
}
