package wordio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfik/mera-awp/internal/wordio"
)

func TestParseWordHex(t *testing.T) {
	v, err := wordio.ParseWord("0x4000")
	require.NoError(t, err)
	require.Equal(t, uint16(0x4000), v)
}

func TestParseWordBinary(t *testing.T) {
	v, err := wordio.ParseWord("0b1000000000000000")
	require.NoError(t, err)
	require.Equal(t, uint16(0x8000), v)
}

func TestParseWordDecimal(t *testing.T) {
	v, err := wordio.ParseWord("42")
	require.NoError(t, err)
	require.Equal(t, uint16(42), v)
}

func TestParseWordNegativeDecimal(t *testing.T) {
	v, err := wordio.ParseWord("-1")
	require.NoError(t, err)
	require.Equal(t, uint16(0xFFFF), v)
}

func TestParseWordOutOfRange(t *testing.T) {
	_, err := wordio.ParseWord("99999")
	require.Error(t, err)
}

func TestParseWordGarbage(t *testing.T) {
	_, err := wordio.ParseWord("0xZZZZ")
	require.Error(t, err)
}

func TestParseTriplet(t *testing.T) {
	w, err := wordio.ParseTriplet("0x4000", "0", "0b10")
	require.NoError(t, err)
	require.Equal(t, [3]uint16{0x4000, 0x0000, 0x0002}, w)
}

func TestFormatTriplet(t *testing.T) {
	require.Equal(t, "0x4000 0x0000 0x0002", wordio.FormatTriplet([3]uint16{0x4000, 0, 2}))
}

func TestFlagString(t *testing.T) {
	require.Equal(t, "----", wordio.FlagString(0))
	require.Equal(t, "Z---", wordio.FlagString(0x8000))
	require.Equal(t, "-M-V", wordio.FlagString(0x4000|0x2000))
	require.Equal(t, "--C-", wordio.FlagString(0x1000))
}
