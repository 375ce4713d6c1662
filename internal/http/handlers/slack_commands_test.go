package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRunningOrderText(t *testing.T) {
	tests := []struct {
		text    string
		round   int
		control int64
		ok      bool
	}{
		{"", 1, 0, true},
		{"2", 2, 0, true},
		{" 3  14 ", 3, 14, true},
		{"0", 0, 0, false},
		{"1 2 3", 0, 0, false},
		{"two", 0, 0, false},
		{"1 x", 0, 0, false},
	}
	for _, tt := range tests {
		round, control, ok := parseRunningOrderText(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.round, round, tt.text)
		assert.Equal(t, tt.control, control, tt.text)
	}
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, 422, statusForKind("configuration"))
	assert.Equal(t, 409, statusForKind("readiness"))
	assert.Equal(t, 409, statusForKind("manual"))
	assert.Equal(t, 500, statusForKind("integrity"))
	assert.Equal(t, 500, statusForKind(""))
}
