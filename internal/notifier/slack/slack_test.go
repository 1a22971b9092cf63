package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/startuppong/internal/metrics"
	"github.com/mauv0809/startuppong/internal/startuppong"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

var testMatch = startuppong.Match{
	ID:                 1093,
	PlayedTime:         1432949959,
	WinnerID:           55,
	WinnerName:         "Collin Green",
	WinnerRankBefore:   2,
	WinnerRankAfter:    1,
	WinnerRatingBefore: 632.0,
	WinnerRatingAfter:  635.5,
	LoserID:            58,
	LoserName:          "Michael Carter",
	LoserRankBefore:    1,
	LoserRankAfter:     2,
	LoserRatingBefore:  517.25,
	LoserRatingAfter:   513.75,
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(context.Background(), kindLeaderboard, message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "posts should be bounded by a timeout")
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	err := notifier.sendMessage(context.Background(), kindLeaderboard, message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
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

	err := notifier.sendMessage(context.Background(), kindMatchResult, slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "failed to post match_result")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendMatchResult_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := notifier.SendMatchResult(context.Background(), testMatch, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendMatchResult")
}

func TestSendLeaderboard_DryRunSkipsAPI(t *testing.T) {
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			t.Fatal("PostMessageContext must not be called in dry-run mode")
			return "", "", nil
		},
	}
	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := notifier.SendLeaderboard(context.Background(), []startuppong.Player{{ID: 1, Rank: 1, Name: "A"}}, true)
	require.NoError(t, err)
}

func TestFormatMatchResult(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatMatchResult(testMatch)
	require.Len(t, msg.Blocks.BlockSet, 3, "Expected 3 blocks")

	// 1. Header Block
	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "Block 0 should be a HeaderBlock")
	assert.Equal(t, "🏓 Match recorded! 🏓", header.Text.Text)

	// 2. Summary with winner and loser fields
	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Block 1 should be a SectionBlock")
	assert.Equal(t, "*Collin Green* beat *Michael Carter*", section.Text.Text)
	require.Len(t, section.Fields, 2)
	assert.Equal(t, "*Winner*: Collin Green\n> Rank: 2 → 1\n> Rating: 632.00 → 635.50 (+3.50)", section.Fields[0].Text)
	assert.Equal(t, "*Loser*: Michael Carter\n> Rank: 1 → 2\n> Rating: 517.25 → 513.75 (-3.50)", section.Fields[1].Text)

	// 3. Context
	contextBlock, ok := msg.Blocks.BlockSet[2].(*slackapi.ContextBlock)
	require.True(t, ok, "Block 2 should be a ContextBlock")
	require.Len(t, contextBlock.ContextElements.Elements, 1)
	text, ok := contextBlock.ContextElements.Elements[0].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Match #1093")
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{}
	players := []startuppong.Player{
		{ID: 89, Rank: 1, Rating: 561.84, Name: "Eshaan Bhalla"},
		{ID: 55, Rank: 2, Rating: 635.42, Name: "Collin Green"},
		{ID: 60, Rank: 3, Rating: 484.82, Name: "Joe Wilm"},
		{ID: 58, Rank: 4, Rating: 513.94, Name: "Michael Carter"},
	}

	msg := client.formatLeaderboard(players)

	require.Len(t, msg.Blocks.BlockSet, 5, "Expected header plus one block per player")
	first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "1. 🥇 Eshaan Bhalla\n> *Rating*: 561.84", first.Text.Text)
	last, ok := msg.Blocks.BlockSet[4].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "4.  Michael Carter\n> *Rating*: 513.94", last.Text.Text)
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	client := &Notifier{}

	msg := client.formatLeaderboard(nil)

	require.Len(t, msg.Blocks.BlockSet, 2)
	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "No players on the ladder yet. Go play some matches!", section.Text.Text)
}
