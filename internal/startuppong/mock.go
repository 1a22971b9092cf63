package startuppong

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the PongClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayersFunc                 func(ctx context.Context) ([]Player, error)
	GetRecentMatchesForCompanyFunc func(ctx context.Context, companyID string) ([]Match, error)
	AddMatchFunc                   func(ctx context.Context, submission MatchSubmission) (Match, error)
	GetPlayerIDsFunc               func(ctx context.Context, names []string) ([]uint32, error)
	AddMatchWithNamesFunc          func(ctx context.Context, winner, loser string) (Match, error)

	// Call records
	GetPlayersCalls                 int
	GetRecentMatchesForCompanyCalls []string
	AddMatchCalls                   []MatchSubmission
	GetPlayerIDsCalls               [][]string
	AddMatchWithNamesCalls          [][2]string
}

var _ PongClient = (*MockClient)(nil)

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls = 0
	m.GetRecentMatchesForCompanyCalls = nil
	m.AddMatchCalls = nil
	m.GetPlayerIDsCalls = nil
	m.AddMatchWithNamesCalls = nil
}

func (m *MockClient) GetPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayersCalls++
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockClient) GetRecentMatchesForCompany(ctx context.Context, companyID string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetRecentMatchesForCompanyCalls = append(m.GetRecentMatchesForCompanyCalls, companyID)
	if m.GetRecentMatchesForCompanyFunc != nil {
		return m.GetRecentMatchesForCompanyFunc(ctx, companyID)
	}
	return []Match{}, nil
}

func (m *MockClient) AddMatch(ctx context.Context, submission MatchSubmission) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchCalls = append(m.AddMatchCalls, submission)
	if m.AddMatchFunc != nil {
		return m.AddMatchFunc(ctx, submission)
	}
	return Match{WinnerID: submission.WinnerID, LoserID: submission.LoserID}, nil
}

func (m *MockClient) GetPlayerIDs(ctx context.Context, names []string) ([]uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerIDsCalls = append(m.GetPlayerIDsCalls, names)
	if m.GetPlayerIDsFunc != nil {
		return m.GetPlayerIDsFunc(ctx, names)
	}
	return make([]uint32, len(names)), nil
}

func (m *MockClient) AddMatchWithNames(ctx context.Context, winner, loser string) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchWithNamesCalls = append(m.AddMatchWithNamesCalls, [2]string{winner, loser})
	if m.AddMatchWithNamesFunc != nil {
		return m.AddMatchWithNamesFunc(ctx, winner, loser)
	}
	return Match{WinnerName: winner, LoserName: loser}, nil
}
