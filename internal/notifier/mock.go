package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/startuppong/internal/startuppong"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendMatchResultFunc func(ctx context.Context, match startuppong.Match, dryRun bool) error
	SendLeaderboardFunc func(ctx context.Context, players []startuppong.Player, dryRun bool) error

	// Call records
	SendMatchResultCalls []startuppong.Match
	SendLeaderboardCalls [][]startuppong.Player
	DryRuns              []bool
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendLeaderboardCalls = nil
	m.DryRuns = nil
}

func (m *Mock) SendMatchResult(ctx context.Context, match startuppong.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, match)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(ctx, match, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(ctx context.Context, players []startuppong.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, players)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(ctx, players, dryRun)
	}
	return nil
}
