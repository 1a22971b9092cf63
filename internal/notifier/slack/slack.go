package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/startuppong/internal/metrics"
	"github.com/mauv0809/startuppong/internal/notifier"
	"github.com/mauv0809/startuppong/internal/startuppong"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

const postTimeout = 10 * time.Second

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier returns a Notifier that posts to channelID with a bot token.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI returns a Notifier backed by api. A nil api is valid
// when every send is a dry run.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// Message kinds, used to tell posts apart in the logs.
const (
	kindMatchResult = "match_result"
	kindLeaderboard = "leaderboard"
)

// sendMessage posts message to the configured channel. In dry-run mode the
// message is logged as Block Kit JSON and the API is never called.
func (s *Notifier) sendMessage(ctx context.Context, kind string, message slack.Message, dryRun bool) error {
	if dryRun {
		blocks, _ := json.MarshalIndent(message.Blocks, "", "  ")
		log.Info("[Dry Run] Would post to Slack", "kind", kind, "channel", s.channelID, "blocks", string(blocks))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	_, timestamp, err := s.api.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to post to Slack", "kind", kind, "channel", s.channelID, "error", err)
		return fmt.Errorf("failed to post %s: %w", kind, err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Posted to Slack", "kind", kind, "channel", s.channelID, "timestamp", timestamp)
	return nil
}

// SendMatchResult announces a recorded match.
func (s *Notifier) SendMatchResult(ctx context.Context, match startuppong.Match, dryRun bool) error {
	return s.sendMessage(ctx, kindMatchResult, s.formatMatchResult(match), dryRun)
}

// SendLeaderboard posts the ladder in server order.
func (s *Notifier) SendLeaderboard(ctx context.Context, players []startuppong.Player, dryRun bool) error {
	return s.sendMessage(ctx, kindLeaderboard, s.formatLeaderboard(players), dryRun)
}

// formatMatchResult creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchResult(match startuppong.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏓 Match recorded! 🏓", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	summary := fmt.Sprintf("*%s* beat *%s*", match.WinnerName, match.LoserName)
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", formatSide("Winner", match.WinnerName, match.WinnerRankBefore, match.WinnerRankAfter, match.WinnerRatingBefore, match.WinnerRatingAfter), false, false),
		slack.NewTextBlockObject("mrkdwn", formatSide("Loser", match.LoserName, match.LoserRankBefore, match.LoserRankAfter, match.LoserRatingBefore, match.LoserRatingAfter), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", summary, false, false), fields, nil))

	// Context
	contextText := fmt.Sprintf("Match #%d • Played %s", match.ID, match.PlayedAt().Format("Monday 02 Jan, 15:04"))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

func formatSide(label, name string, rankBefore, rankAfter uint32, ratingBefore, ratingAfter float64) string {
	return fmt.Sprintf("*%s*: %s\n> Rank: %d → %d\n> Rating: %.2f → %.2f (%+.2f)",
		label,
		name,
		rankBefore,
		rankAfter,
		ratingBefore,
		ratingAfter,
		ratingAfter-ratingBefore,
	)
}

// formatLeaderboard creates a Slack message to display the ladder.
func (s *Notifier) formatLeaderboard(players []startuppong.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Ping Pong Ladder 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players on the ladder yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for _, player := range players {
		var medal string
		switch player.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> *Rating*: %.2f",
			player.Rank,
			medal,
			player.Name,
			player.Rating,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
