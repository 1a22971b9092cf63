package startuppong

import "context"

// PongClient defines the interface for interacting with the startuppong API.
// This allows for mock implementations to be used in tests.
type PongClient interface {
	GetPlayers(ctx context.Context) ([]Player, error)
	GetRecentMatchesForCompany(ctx context.Context, companyID string) ([]Match, error)
	AddMatch(ctx context.Context, submission MatchSubmission) (Match, error)
	GetPlayerIDs(ctx context.Context, names []string) ([]uint32, error)
	AddMatchWithNames(ctx context.Context, winner, loser string) (Match, error)
}
