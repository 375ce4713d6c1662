package team

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseTeamName splits a seeded team name such as "Kings 2" into its club
// name and division index. Names without a trailing number are a club's
// first team.
func ParseTeamName(name string) (clubName string, index int) {
	name = strings.TrimSpace(name)
	end := len(name)
	for end > 0 && unicode.IsDigit(rune(name[end-1])) {
		end--
	}
	if end == len(name) {
		return name, 1
	}

	index, err := strconv.Atoi(name[end:])
	if err != nil || index < 1 {
		index = 1
	}
	return strings.TrimSpace(name[:end]), index
}

// Name builds the team name for a club's nth team in a division.
func Name(clubName string, index int) string {
	if index <= 1 {
		return clubName
	}
	return clubName + " " + strconv.Itoa(index)
}
