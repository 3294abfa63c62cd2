// Package wordio parses and formats the 16-bit word literals accepted by
// the emawp command-line tools, mirroring the prefix rules of the
// original emawp-tool: "0x" for hex, "0b" for binary, anything else as
// decimal (allowing a leading '-' for negative register values).
package wordio

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWord parses a single word literal into its raw 16-bit register
// value. Negative decimal literals are accepted and folded into their
// two's-complement bit pattern.
func ParseWord(s string) (uint16, error) {
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("wordio: bad hex literal %q: %w", s, err)
		}
		return uint16(v), nil

	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err := strconv.ParseUint(s[2:], 2, 16)
		if err != nil {
			return 0, fmt.Errorf("wordio: bad binary literal %q: %w", s, err)
		}
		return uint16(v), nil

	default:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("wordio: bad decimal literal %q: %w", s, err)
		}
		if v < -32768 || v > 65535 {
			return 0, fmt.Errorf("wordio: decimal literal %q out of 16-bit range", s)
		}
		return uint16(int16(v)), nil
	}
}

// ParseTriplet parses three consecutive word literals into a float
// register triplet.
func ParseTriplet(a, b, c string) ([3]uint16, error) {
	var w [3]uint16
	for i, s := range [3]string{a, b, c} {
		v, err := ParseWord(s)
		if err != nil {
			return w, err
		}
		w[i] = v
	}
	return w, nil
}

// FormatTriplet renders a float register triplet as three 0x-prefixed
// hex words, as emawp-tool does for its "->"/"<-" conversion lines.
func FormatTriplet(w [3]uint16) string {
	return fmt.Sprintf("0x%04x 0x%04x 0x%04x", w[0], w[1], w[2])
}

// FormatWord renders a single word as a 0x-prefixed hex literal.
func FormatWord(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}

// FlagString renders the top-nibble flag bits as a 4-character Z/M/C/V
// indicator string, '-' for a clear bit, in the same order as
// emawp-tool's print_num.
func FlagString(flags uint16) string {
	bit := func(mask uint16, ch byte) byte {
		if flags&mask != 0 {
			return ch
		}
		return '-'
	}
	return string([]byte{
		bit(0x8000, 'Z'),
		bit(0x4000, 'M'),
		bit(0x1000, 'C'),
		bit(0x2000, 'V'),
	})
}
