package notifier

import (
	"context"

	"github.com/mauv0809/startuppong/internal/startuppong"
)

// Notifier defines a high-level interface for announcing ladder events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For a freshly recorded match
	SendMatchResult(ctx context.Context, match startuppong.Match, dryRun bool) error
	// For the current ladder, in rank order
	SendLeaderboard(ctx context.Context, players []startuppong.Player, dryRun bool) error
}
