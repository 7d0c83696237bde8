package termbidi

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/termbidi/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeAndReorderLatin(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	v, err := ShapeAndReorder([]byte("Hello"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "Hello", v.Logical)
	assert.Equal(t, "Hello", v.Visual, "pure LTR text passes through unchanged")
	require.Len(t, v.Runs, 1)
	assert.Equal(t, 0, v.Runs[0].Level)
	assert.Equal(t, 5, v.Width)
}

func TestShapeAndReorderArabic(t *testing.T) {
	v, err := ShapeAndReorder([]byte("مرحبا"), Auto)
	require.NoError(t, err)
	require.Len(t, v.Runs, 1)
	assert.Equal(t, 1, v.Runs[0].Level, "first strong character is AL")
	// Contextual forms of م ر ح ب ا, in visual (reversed) order.
	assert.Equal(t, "ﺎﺒﺣﺮﻣ", v.Visual)
}

func TestShapeAndReorderMixed(t *testing.T) {
	v, err := ShapeAndReorder([]byte("Hello مرحبا"), Auto)
	require.NoError(t, err)
	require.Len(t, v.Runs, 2)
	assert.False(t, v.Runs[0].IsRTL())
	assert.True(t, v.Runs[1].IsRTL())
	assert.Equal(t, "Hello ﺎﺒﺣﺮﻣ", v.Visual)
}

func TestShapeAndReorderTrailingLatin(t *testing.T) {
	// An RTL word followed by more LTR text: the separating space must end
	// up between the reversed Arabic and the Latin word, not inside the
	// Arabic run.
	v, err := ShapeAndReorder([]byte("abc مرحبا def"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "abc ﺎﺒﺣﺮﻣ def", v.Visual)
	require.Len(t, v.Runs, 3)
	assert.Equal(t, 0, v.Runs[2].Level, "the trailing text returns to the base level")
}

func TestShapeAndReorderLigature(t *testing.T) {
	v, err := ShapeAndReorder([]byte("لا"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "ﻻ", v.Visual, "Lam-Alef collapses to one ligature glyph")
	assert.Equal(t, 1, v.Width)
}

func TestShapeAndReorderElidesFormattingCodes(t *testing.T) {
	v, err := ShapeAndReorder([]byte("‮abc‬"), Auto)
	require.NoError(t, err)
	assert.Equal(t, "cba", v.Visual, "override reverses, formatting codes are dropped")
	assert.Equal(t, 3, v.Width, "formatting codes contribute no width")
}

func TestShapeAndReorderForcedDirection(t *testing.T) {
	v, err := ShapeAndReorder([]byte("abc"), RightToLeft)
	require.NoError(t, err)
	require.Len(t, v.Runs, 1)
	assert.Equal(t, 2, v.Runs[0].Level, "Latin under an RTL base lands on the next even level")
	assert.Equal(t, "abc", v.Visual)
}

func TestShapeAndReorderRejectsMalformedInput(t *testing.T) {
	_, err := ShapeAndReorder([]byte{0x61, 0xC3}, Auto)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrInvalidEncoding))
}

func TestVisualBytes(t *testing.T) {
	v, err := ShapeAndReorder([]byte("مرحبا"), Auto)
	require.NoError(t, err)
	assert.Equal(t, []byte(v.Visual), v.VisualBytes())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Auto", Auto.String())
	assert.Equal(t, "FromLocale", FromLocale.String())
	assert.Equal(t, "Direction(?)", Direction(99).String())
}
