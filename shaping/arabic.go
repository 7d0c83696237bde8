package shaping

// Joining context of one letter. A letter connects to its predecessor if the
// predecessor is a mapped Arabic letter that joins forward; anything else —
// space, digit, diacritic, non-Arabic — breaks the join.

// IsArabicLetter reports whether cp is in the shaping table, i.e. a logical
// Arabic letter with presentation forms.
func IsArabicLetter(cp rune) bool {
	_, ok := letterForms[cp]
	return ok
}

// Forms computes the positional presentation form for every codepoint of a
// logical text. The result has the same length as the input; positions whose
// letter was absorbed into a Lam-Alef ligature are marked true in the second
// return value (the ligature form sits at the Lam's position). Codepoints
// absent from the shaping table pass through unchanged.
//
// Keeping positions stable lets callers apply shaping before visual
// reordering without invalidating run offsets.
func Forms(text []rune) ([]rune, []bool) {
	forms := make([]rune, len(text))
	absorbed := make([]bool, len(text))
	copy(forms, text)
	for i, cp := range text {
		if absorbed[i] {
			continue
		}
		letter, ok := letterForms[cp]
		if !ok {
			continue
		}
		joinsPrev := connectsToPrevious(text, i)
		if cp == letterLam && i+1 < len(text) {
			if lig, isLamAlef := lamAlefLigatures[text[i+1]]; isLamAlef {
				if joinsPrev {
					forms[i] = lig.Final
				} else {
					forms[i] = lig.Isolated
				}
				absorbed[i+1] = true
				tracer().Debugf("shaping: Lam-Alef ligature %#x at %d", forms[i], i)
				continue
			}
		}
		joinsNext := letter.ConnectsToEnd && i+1 < len(text) && IsArabicLetter(text[i+1])
		switch {
		case joinsPrev && joinsNext:
			forms[i] = letter.Medial
		case joinsPrev:
			forms[i] = letter.Final
		case joinsNext:
			forms[i] = letter.Initial
		default:
			forms[i] = letter.Isolated
		}
	}
	return forms, absorbed
}

// Shape returns the presentation-form rendition of a logical text. Letters
// consumed by a ligature are dropped, so the result may be shorter than the
// input, never longer.
func Shape(text []rune) []rune {
	forms, absorbed := Forms(text)
	shaped := make([]rune, 0, len(forms))
	for i, form := range forms {
		if absorbed[i] {
			continue
		}
		shaped = append(shaped, form)
	}
	return shaped
}

func connectsToPrevious(text []rune, i int) bool {
	if i == 0 {
		return false
	}
	prev, ok := letterForms[text[i-1]]
	return ok && prev.ConnectsToEnd
}
