package topology

import (
	"fmt"
	"strconv"
	"strings"
)

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// SeatRef points at a finishing position within a previous round's group,
// e.g. 2B is second place in group B and 31 is third place in group I.
type SeatRef struct {
	Position int
	Group    string
}

func (s SeatRef) String() string {
	return strconv.Itoa(s.Position) + s.Group
}

// ParseSeat reads a seat written as <position><label>. Labels are a single
// group letter A-H or a digit 1-8 standing in for a roman-numeral group.
func ParseSeat(s string) (SeatRef, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return SeatRef{}, fmt.Errorf("invalid seat %q", s)
	}
	pos, err := strconv.Atoi(s[:1])
	if err != nil || pos < 1 {
		return SeatRef{}, fmt.Errorf("invalid seat position in %q", s)
	}
	label := s[1:]
	if !validLabel(label) {
		return SeatRef{}, fmt.Errorf("invalid seat group in %q", s)
	}
	return SeatRef{Position: pos, Group: label}, nil
}

func validLabel(label string) bool {
	if len(label) != 1 {
		return false
	}
	c := label[0]
	return (c >= 'A' && c <= 'H') || (c >= '1' && c <= '8')
}

// RomanToDigit converts a roman-numeral group name (I to VIII) to its digit.
func RomanToDigit(name string) (string, bool) {
	for i, r := range romanNumerals {
		if r == name {
			return strconv.Itoa(i + 1), true
		}
	}
	return "", false
}

// DigitToRoman is the inverse of RomanToDigit.
func DigitToRoman(digit string) (string, bool) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > len(romanNumerals) {
		return "", false
	}
	return romanNumerals[n-1], true
}

// Label returns the seat label for a group name: letter groups keep their
// letter and roman-numeral groups become digits.
func Label(groupName string) (string, error) {
	if len(groupName) == 1 && groupName[0] >= 'A' && groupName[0] <= 'H' {
		return groupName, nil
	}
	if digit, ok := RomanToDigit(groupName); ok {
		return digit, nil
	}
	return "", fmt.Errorf("unrecognised group name %q", groupName)
}
