package codec

import (
	"errors"
)

// ErrInvalidEncoding flags malformed UTF-8 input: a continuation byte not
// matching 10xxxxxx, or a multi-byte sequence truncated by the end of the
// buffer. Decoding aborts on this error; no partial output is guaranteed.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// MaxRune is the highest codepoint the codec will encode.
const MaxRune = 0x10FFFF

// CharLength determines the byte length of a UTF-8 character from its lead
// byte. Invalid lead bytes (continuation bytes, 0xFE, 0xFF) report a length
// of 1 as a defensive fallback, so callers advance without stalling.
func CharLength(first byte) int {
	switch {
	case first&0x80 == 0x00:
		return 1 // 0xxxxxxx
	case first&0xE0 == 0xC0:
		return 2 // 110xxxxx
	case first&0xF0 == 0xE0:
		return 3 // 1110xxxx
	case first&0xF8 == 0xF0:
		return 4 // 11110xxx
	}
	return 1
}

// DecodeOne decodes the first codepoint of buf. It returns the codepoint and
// the number of bytes consumed, or ErrInvalidEncoding if a continuation byte
// is malformed or buf is too short for the declared sequence length.
func DecodeOne(buf []byte) (rune, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrInvalidEncoding
	}
	length := CharLength(buf[0])
	if length > len(buf) {
		return 0, 0, ErrInvalidEncoding
	}
	for i := 1; i < length; i++ {
		if buf[i]&0xC0 != 0x80 {
			return 0, 0, ErrInvalidEncoding
		}
	}
	var cp rune
	switch length {
	case 1:
		b := buf[0]
		if b&0x80 != 0 { // invalid lead byte, not a 1-byte character
			return 0, 0, ErrInvalidEncoding
		}
		cp = rune(b)
	case 2:
		cp = rune(buf[0]&0x1F)<<6 | rune(buf[1]&0x3F)
	case 3:
		cp = rune(buf[0]&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case 4:
		cp = rune(buf[0]&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 |
			rune(buf[3]&0x3F)
	}
	return cp, length, nil
}

// EncodeOne appends the UTF-8 encoding of cp to dst and returns the extended
// slice. Codepoints beyond MaxRune encode to '?'.
func EncodeOne(dst []byte, cp rune) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst, 0xC0|byte(cp>>6), 0x80|byte(cp&0x3F))
	case cp < 0x10000:
		return append(dst, 0xE0|byte(cp>>12), 0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	case cp <= MaxRune:
		return append(dst, 0xF0|byte(cp>>18), 0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F))
	}
	tracer().Debugf("codec: unencodable codepoint %#x, substituting '?'", cp)
	return append(dst, '?')
}

// Decode converts a complete UTF-8 buffer into codepoints. It aborts with
// ErrInvalidEncoding on the first malformed sequence.
func Decode(buf []byte) ([]rune, error) {
	text := make([]rune, 0, len(buf))
	for pos := 0; pos < len(buf); {
		cp, length, err := DecodeOne(buf[pos:])
		if err != nil {
			return nil, err
		}
		text = append(text, cp)
		pos += length
	}
	return text, nil
}

// Encode converts codepoints back into a UTF-8 buffer. The result is at most
// 4 bytes per input codepoint.
func Encode(text []rune) []byte {
	buf := make([]byte, 0, len(text)*4)
	for _, cp := range text {
		buf = EncodeOne(buf, cp)
	}
	return buf
}
