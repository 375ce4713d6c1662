package club

import (
	"strings"
	"unicode"
)

// Find returns the club whose name or short name matches name, ignoring case,
// punctuation and repeated spaces.
func Find(clubs []Club, name string) (Club, bool) {
	want := normalizeName(name)
	if want == "" {
		return Club{}, false
	}
	for _, c := range clubs {
		if normalizeName(c.ClubName) == want || normalizeName(c.ShortName) == want {
			return c, true
		}
	}
	return Club{}, false
}

// normalizeName normalizes a name for comparison
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var result strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}
