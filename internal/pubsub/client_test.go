package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundGenerated(t *testing.T) {
	event := RoundGenerated{
		RunID:     "3b0c",
		ControlID: 4,
		Round:     2,
		Races:     map[string]int{"Mixed": 18, "Ladies": 6},
		Failed:    []string{"Board"},
	}

	payload, err := Encode(event)
	require.NoError(t, err)

	var got RoundGenerated
	require.NoError(t, NewMock("test").ProcessMessage(payload, &got))
	assert.Equal(t, event, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	var got ResultRecorded
	assert.Error(t, Decode([]byte{0xc1}, &got))
}
