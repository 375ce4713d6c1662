package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/race-organiser/internal/metrics"
	"github.com/mauv0809/race-organiser/internal/notifier"
	"github.com/mauv0809/race-organiser/internal/race"
	"github.com/mauv0809/race-organiser/internal/team"
	"github.com/slack-go/slack"
)

// Slack limits a message to 50 blocks and a section to 3000 characters.
const (
	maxBlocks      = 50
	maxSectionText = 2900
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// WriteSchedule posts the running order. Long schedules are split over
// several messages.
func (s *Notifier) WriteSchedule(races []race.Race, teams []team.Team, dryRun bool) error {
	for _, msg := range s.formatSchedule(races, teams) {
		if _, _, err := s.sendMessage(msg, dryRun); err != nil {
			return err
		}
	}
	return nil
}

func (s *Notifier) SendGenerationFailure(controlID int64, round int, err error, dryRun bool) error {
	_, _, sendErr := s.sendMessage(s.formatGenerationFailure(controlID, round, err), dryRun)
	return sendErr
}

func (s *Notifier) SendStandings(standings notifier.Standings, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatStandings(standings), dryRun)
	return err
}

// FormatRunningOrderResponse returns the first message of the running order
// for use as a slash command reply.
func (s *Notifier) FormatRunningOrderResponse(races []race.Race, teams []team.Team) (any, error) {
	messages := s.formatSchedule(races, teams)
	msg := messages[0]
	msg.ResponseType = slack.ResponseTypeEphemeral
	return msg, nil
}

// formatSchedule renders races as numbered lines packed into section blocks.
func (s *Notifier) formatSchedule(races []race.Race, teams []team.Team) []slack.Message {
	byID := team.ByID(teams)
	name := func(id int64) string {
		if t, ok := byID[id]; ok {
			return t.TeamName
		}
		return fmt.Sprintf("team %d", id)
	}

	title := "🎿 Running order 🎿"
	if len(races) > 0 {
		title = fmt.Sprintf("🎿 Running order: round %d 🎿", races[0].Round)
	}
	header := slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", title, true, false))

	if len(races) == 0 {
		return []slack.Message{slack.NewBlockMessage(header,
			slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No races scheduled.", true, false), nil, nil))}
	}

	var sections []string
	var current strings.Builder
	for i, r := range races {
		number := r.Number
		if number == 0 {
			number = i + 1
		}
		line := fmt.Sprintf("%d. %s %s: %s v %s\n", number, r.Division, r.Group, name(r.TeamOne), name(r.TeamTwo))
		if current.Len()+len(line) > maxSectionText {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	sections = append(sections, current.String())

	var messages []slack.Message
	blocks := []slack.Block{header}
	for _, text := range sections {
		if len(blocks) == maxBlocks {
			messages = append(messages, slack.NewBlockMessage(blocks...))
			blocks = nil
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", "```"+strings.TrimRight(text, "\n")+"```", false, false), nil, nil))
	}
	return append(messages, slack.NewBlockMessage(blocks...))
}

func (s *Notifier) formatGenerationFailure(controlID int64, round int, err error) slack.Message {
	header := slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text",
		fmt.Sprintf("⚠️ Round %d could not be generated", round), true, false))
	text := fmt.Sprintf("*Control*: %d\n> %s", controlID, strings.ReplaceAll(err.Error(), "\n", "\n> "))
	return slack.NewBlockMessage(header,
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
}

func (s *Notifier) formatStandings(standings notifier.Standings) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := fmt.Sprintf("🏆 %s group %s, round %d 🏆", standings.Division, standings.Group, standings.Round)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	records := make(map[int64]string, len(standings.Records))
	for _, r := range standings.Records {
		records[r.TeamID] = fmt.Sprintf("%d wins, %d DSQ", r.Wins, r.DSQs)
	}

	for i, t := range standings.Order {
		var medal string
		switch i + 1 {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}
		text := fmt.Sprintf("%d. %s *%s*", i+1, medal, t.TeamName)
		if record, ok := records[t.ID]; ok {
			text += "\n> " + record
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
