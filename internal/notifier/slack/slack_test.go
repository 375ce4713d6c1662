package slack

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mauv0809/race-organiser/internal/division"
	"github.com/mauv0809/race-organiser/internal/group"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	calls                  int
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.calls++
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	_, _, err := notifier.sendMessage(slackapi.NewBlockMessage(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.Equal(t, 1, api.calls, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendGenerationFailure(3, 2, errors.New("boom"), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func scheduleFixture(n int) ([]race.Race, []team.Team) {
	teams := []team.Team{{ID: 1, TeamName: "Kings"}, {ID: 2, TeamName: "Bath 2"}}
	races := make([]race.Race, n)
	for i := range races {
		races[i] = race.Race{Round: 1, Number: i + 1, Division: division.Mixed, Group: "A", TeamOne: 1, TeamTwo: 2}
	}
	return races, teams
}

func TestFormatSchedule(t *testing.T) {
	races, teams := scheduleFixture(2)
	races[1].TeamTwo = 9

	client := &Notifier{channelID: "C123"}
	msgs := client.formatSchedule(races, teams)
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Blocks.BlockSet, 2)

	header, ok := msgs[0].Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "round 1")

	section, ok := msgs[0].Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "1. Mixed A: Kings v Bath 2")
	assert.Contains(t, section.Text.Text, "2. Mixed A: Kings v team 9")
}

func TestFormatScheduleSplitsLongSchedules(t *testing.T) {
	races, teams := scheduleFixture(6000)

	client := &Notifier{channelID: "C123"}
	msgs := client.formatSchedule(races, teams)
	require.Greater(t, len(msgs), 1)

	lines := 0
	for _, msg := range msgs {
		assert.LessOrEqual(t, len(msg.Blocks.BlockSet), maxBlocks)
		for _, block := range msg.Blocks.BlockSet {
			if section, ok := block.(*slackapi.SectionBlock); ok {
				assert.LessOrEqual(t, len(section.Text.Text), maxSectionText+6)
				lines += countLines(section.Text.Text)
			}
		}
	}
	assert.Equal(t, len(races), lines)
}

func countLines(text string) int {
	n := 1
	for _, c := range text {
		if c == '\n' {
			n++
		}
	}
	return n
}

func TestWriteScheduleSendsEveryMessage(t *testing.T) {
	races, teams := scheduleFixture(6000)
	api := &mockSlackAPI{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	require.NoError(t, n.WriteSchedule(races, teams, false))
	assert.Equal(t, len(n.formatSchedule(races, teams)), api.calls)
}

func TestFormatEmptySchedule(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msgs := client.formatSchedule(nil, nil)
	require.Len(t, msgs, 1)
	section := msgs[0].Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Equal(t, "No races scheduled.", section.Text.Text)
}

func TestFormatStandings(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatStandings(notifier.Standings{
		Round:    1,
		Division: division.Ladies,
		Group:    "B",
		Order:    []team.Team{{ID: 2, TeamName: "Exeter"}, {ID: 1, TeamName: "Kings"}},
		Records:  []group.Standing{{TeamID: 1, Wins: 1}, {TeamID: 2, Wins: 2, DSQs: 1}},
	})

	require.Len(t, msg.Blocks.BlockSet, 3)
	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Contains(t, header.Text.Text, "Ladies group B, round 1")

	first := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, first.Text.Text, "*Exeter*")
	assert.Contains(t, first.Text.Text, "2 wins, 1 DSQ")
}

func TestFormatGenerationFailure(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatGenerationFailure(7, 2, fmt.Errorf("Mixed: %w", errors.New("races unfinished")))

	require.Len(t, msg.Blocks.BlockSet, 2)
	section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, section.Text.Text, "*Control*: 7")
	assert.Contains(t, section.Text.Text, "> Mixed: races unfinished")
}

func TestFormatRunningOrderResponse(t *testing.T) {
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMock())
	races := []race.Race{{Round: 1, Number: 1, Division: division.Mixed, Group: "A", TeamOne: 1, TeamTwo: 2}}
	teams := []team.Team{{ID: 1, TeamName: "Kings"}, {ID: 2, TeamName: "Bath"}}

	resp, err := n.FormatRunningOrderResponse(races, teams)
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	assert.Equal(t, slackapi.ResponseTypeEphemeral, msg.ResponseType)
	require.Len(t, msg.Blocks.BlockSet, 2)
	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "1. Mixed A: Kings v Bath")
}
