package mdsite

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or looks like a
// binary file rather than markdown text.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return fmt.Errorf("at byte %d: %w", invalidUTF8Offset(src), ErrInvalidUTF8)
	}
	control := 0
	for i, b := range src {
		if b == 0x00 {
			return fmt.Errorf("NUL at byte %d: %w", i, ErrBinaryInput)
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%d control bytes in %d: %w", control, len(src), ErrBinaryInput)
	}
	return nil
}

func invalidUTF8Offset(src []byte) int {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(src)
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}
