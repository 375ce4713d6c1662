package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTeamName(t *testing.T) {
	tests := []struct {
		name  string
		club  string
		index int
	}{
		{"Kings", "Kings", 1},
		{"Kings 2", "Kings", 2},
		{"  Kings 3 ", "Kings", 3},
		{"St Andrews12", "St Andrews", 12},
		{"Kings 0", "Kings", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			club, index := ParseTeamName(tt.name)
			assert.Equal(t, tt.club, club)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, idx := range []int{1, 2, 5} {
		club, index := ParseTeamName(Name("Kings", idx))
		assert.Equal(t, "Kings", club)
		assert.Equal(t, idx, index)
	}
	assert.Equal(t, "Kings", Name("Kings", 1))
	assert.Equal(t, "Kings 2", Name("Kings", 2))
}
