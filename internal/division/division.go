// Package division names the competition categories a league races in.
package division

import (
	"fmt"
	"strings"
)

// Division is a competition category scheduled independently of the others.
type Division string

const (
	Mixed  Division = "Mixed"
	Ladies Division = "Ladies"
	Board  Division = "Board"
)

// All lists the divisions in running order.
var All = []Division{Mixed, Ladies, Board}

// Parse matches a division name case-insensitively.
func Parse(s string) (Division, error) {
	for _, d := range All {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown division %q", s)
}

// Index returns the position of d in All, or -1.
func (d Division) Index() int {
	for i, known := range All {
		if known == d {
			return i
		}
	}
	return -1
}

// Letter is the upper-cased first letter, used when ordering races.
func (d Division) Letter() byte {
	if d == "" {
		return 0
	}
	return strings.ToUpper(string(d))[0]
}

// KnockoutRank orders divisions for the final day: Ladies, then Board, then Mixed.
func (d Division) KnockoutRank() int {
	switch d {
	case Ladies:
		return 0
	case Board:
		return 1
	case Mixed:
		return 2
	}
	return 3
}

func (d Division) String() string {
	return string(d)
}
