package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeat(t *testing.T) {
	seat, err := ParseSeat("2B")
	require.NoError(t, err)
	assert.Equal(t, SeatRef{Position: 2, Group: "B"}, seat)
	assert.Equal(t, "2B", seat.String())

	seat, err = ParseSeat(" 31 ")
	require.NoError(t, err)
	assert.Equal(t, SeatRef{Position: 3, Group: "1"}, seat)

	for _, bad := range []string{"", "A", "B2", "0A", "2Z", "29", "12A"} {
		_, err := ParseSeat(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestRomanConversion(t *testing.T) {
	for i, roman := range []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"} {
		digit, ok := RomanToDigit(roman)
		require.True(t, ok)
		assert.Equal(t, string(rune('1'+i)), digit)

		back, ok := DigitToRoman(digit)
		require.True(t, ok)
		assert.Equal(t, roman, back)
	}

	_, ok := RomanToDigit("IX")
	assert.False(t, ok)
	_, ok = DigitToRoman("9")
	assert.False(t, ok)
	_, ok = DigitToRoman("x")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	label, err := Label("C")
	require.NoError(t, err)
	assert.Equal(t, "C", label)

	label, err = Label("IV")
	require.NoError(t, err)
	assert.Equal(t, "4", label)

	_, err = Label("1st/2nd")
	assert.Error(t, err)
}
