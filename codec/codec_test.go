package codec

import (
	"bytes"
	"errors"
	"testing"
)

func TestCharLength(t *testing.T) {
	tests := []struct {
		lead byte
		want int
	}{
		{0x41, 1}, // 'A'
		{0xC3, 2}, // lead of 'é'
		{0xD9, 2}, // lead of Arabic letters
		{0xE2, 3}, // lead of U+202B
		{0xF0, 4}, // lead of supplementary plane
		{0x80, 1}, // stray continuation byte -> defensive fallback
		{0xFF, 1}, // invalid lead byte -> defensive fallback
	}
	for _, tc := range tests {
		if got := CharLength(tc.lead); got != tc.want {
			t.Errorf("CharLength(%#x) = %d, want %d", tc.lead, got, tc.want)
		}
	}
}

func TestDecodeOne(t *testing.T) {
	tests := []struct {
		input  []byte
		cp     rune
		length int
	}{
		{[]byte("A"), 0x41, 1},
		{[]byte("é"), 0xE9, 2},
		{[]byte("م"), 0x0645, 2},
		{[]byte("‫"), 0x202B, 3},
		{[]byte("\U0001F600"), 0x1F600, 4},
	}
	for _, tc := range tests {
		cp, length, err := DecodeOne(tc.input)
		if err != nil {
			t.Errorf("DecodeOne(% x) failed: %v", tc.input, err)
			continue
		}
		if cp != tc.cp || length != tc.length {
			t.Errorf("DecodeOne(% x) = (%#x, %d), want (%#x, %d)",
				tc.input, cp, length, tc.cp, tc.length)
		}
	}
}

func TestDecodeOneInvalid(t *testing.T) {
	invalid := [][]byte{
		{0xFF},             // invalid lead byte
		{0xC3},             // truncated 2-byte sequence
		{0xC3, 0x41},       // malformed continuation byte
		{0xE2, 0x80},       // truncated 3-byte sequence
		{0xE2, 0x80, 0xC0}, // malformed last continuation byte
		{0x80},             // stray continuation byte
		{},                 // empty buffer
	}
	for _, input := range invalid {
		if _, _, err := DecodeOne(input); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("DecodeOne(% x) = %v, want ErrInvalidEncoding", input, err)
		}
	}
}

func TestEncodeOne(t *testing.T) {
	tests := []struct {
		cp   rune
		want []byte
	}{
		{0x41, []byte{0x41}},
		{0xE9, []byte{0xC3, 0xA9}},
		{0x0645, []byte{0xD9, 0x85}},
		{0x202B, []byte{0xE2, 0x80, 0xAB}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{0x110000, []byte{'?'}}, // beyond MaxRune
	}
	for _, tc := range tests {
		if got := EncodeOne(nil, tc.cp); !bytes.Equal(got, tc.want) {
			t.Errorf("EncodeOne(%#x) = % x, want % x", tc.cp, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"مرحبا بالعالم",
		"שלום",
		"Hello مرحبا 123 ١٢٣",
	}
	for _, input := range inputs {
		text, err := Decode([]byte(input))
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", input, err)
		}
		if got := string(Encode(text)); got != input {
			t.Errorf("round trip of %q produced %q", input, got)
		}
	}
}

func TestDecodeAbortsOnMalformedInput(t *testing.T) {
	input := append([]byte("Hello "), 0xFF)
	if _, err := Decode(input); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Decode of malformed input = %v, want ErrInvalidEncoding", err)
	}
}
