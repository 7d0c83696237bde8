package termbidi

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/termbidi/bidi"
	"github.com/npillmayer/termbidi/codec"
	"github.com/npillmayer/termbidi/shaping"
)

// Direction is the base-direction hint for a paragraph of text.
type Direction int8

const (
	// Auto derives the base level from the first strong character of the
	// text (UAX#9 rules P2/P3); without a strong character the paragraph
	// is LTR.
	Auto Direction = iota
	// LeftToRight forces base level 0.
	LeftToRight
	// RightToLeft forces base level 1.
	RightToLeft
	// FromLocale resolves the base direction from the user's OS locale:
	// RTL for Arabic-script and Hebrew locales, LTR otherwise, Auto when
	// the locale cannot be detected.
	FromLocale
)

func (dir Direction) String() string {
	switch dir {
	case Auto:
		return "Auto"
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case FromLocale:
		return "FromLocale"
	}
	return "Direction(?)"
}

// A VisualTextRun is the boundary object handed to display consumers: one
// paragraph of text in both logical and visual order, together with the
// resolved level runs (for per-run styling) and the measured width in
// terminal cells. It is owned by the caller; the pipeline never retains it.
type VisualTextRun struct {
	Logical string     // the input text, logical order
	Visual  string     // shaped text in visual (display) order
	Runs    []bidi.Run // resolved level runs over the logical text
	Width   int        // terminal cell width of Visual
}

// VisualBytes returns the visual text encoded as UTF-8.
func (v *VisualTextRun) VisualBytes() []byte {
	return codec.Encode([]rune(v.Visual))
}

// ShapeAndReorder transforms one paragraph of logical UTF-8 text into its
// visual rendition: Arabic letters are replaced by their contextual
// presentation forms, right-to-left runs are reversed, and directional
// formatting codes are elided. Malformed UTF-8 aborts the call with
// codec.ErrInvalidEncoding; no partial output is produced.
//
// The call is pure and deterministic; cost is linear in the input length.
func ShapeAndReorder(logical []byte, dir Direction) (*VisualTextRun, error) {
	text, err := codec.Decode(logical)
	if err != nil {
		return nil, fmt.Errorf("cannot shape paragraph: %w", err)
	}
	classes := bidi.ClassifyAll(text)
	if dir == FromLocale {
		dir = directionFromLocale()
	}
	baseLevel := 0
	switch dir {
	case RightToLeft:
		baseLevel = 1
	case LeftToRight:
		baseLevel = 0
	default:
		baseLevel = bidi.BaseLevel(classes)
	}
	runs := bidi.ResolveLevels(classes, baseLevel)
	// Shaping runs over the full logical text, so join context survives run
	// splits caused by formatting codes. Positions stay stable; letters
	// absorbed into a ligature are skipped during reordering. Control codes
	// pass through shaping unchanged, so Reorder still elides them.
	forms, absorbed := shaping.Forms(text)
	visual := bidi.ReorderWith(forms, runs, func(pos int) bool {
		return absorbed[pos]
	})
	v := &VisualTextRun{
		Logical: string(text),
		Visual:  string(visual),
		Runs:    runs,
		Width:   runewidth.StringWidth(string(visual)),
	}
	T().Debugf("termbidi: %q -> %q (%d cells, runs %s)", v.Logical, v.Visual,
		v.Width, bidi.RunsString(runs))
	return v, nil
}
