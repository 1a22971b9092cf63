package startuppong

import "time"

// Account holds the credentials required by every startuppong endpoint.
// The account ID doubles as the company identifier.
type Account struct {
	ID  string `json:"api_account_id"`
	Key string `json:"api_access_key"`
}

// NewAccount creates a new Account.
func NewAccount(id, key string) Account {
	return Account{ID: id, Key: key}
}

// Player is a person on the ladder.
type Player struct {
	ID     uint32
	Rating float64
	Rank   uint32
	Name   string
}

// Match holds the stats before and after a set.
type Match struct {
	ID                 uint64
	PlayedTime         uint64 // Unix timestamp, seconds
	WinnerID           uint32
	WinnerName         string
	WinnerRankBefore   uint32
	WinnerRankAfter    uint32
	WinnerRatingBefore float64
	WinnerRatingAfter  float64
	LoserID            uint32
	LoserName          string
	LoserRankBefore    uint32
	LoserRankAfter     uint32
	LoserRatingBefore  float64
	LoserRatingAfter   float64
}

// PlayedAt returns the time the match was played.
func (m Match) PlayedAt() time.Time {
	return time.Unix(int64(m.PlayedTime), 0)
}

// MatchSubmission is the payload sent to add_match.
type MatchSubmission struct {
	WinnerID uint32
	LoserID  uint32
}

// addMatchRequest is the JSON body posted to /api/v1/add_match.
type addMatchRequest struct {
	AccountID string `json:"api_account_id"`
	AccessKey string `json:"api_access_key"`
	WinnerID  uint32 `json:"winner_id"`
	LoserID   uint32 `json:"loser_id"`
}

// getPlayersResponse defines the envelope returned by /api/v1/get_players.
type getPlayersResponse struct {
	Players *[]playerResponse `json:"players"`
}

// getMatchesResponse defines the envelope returned by /api/v1/get_recent_matches_for_company.
type getMatchesResponse struct {
	Matches *[]matchResponse `json:"matches"`
}

// playerResponse defines a player as returned by the API. Pointer fields let
// the mapper tell a missing field from a zero value.
type playerResponse struct {
	ID     *uint32  `json:"id"`
	Rating *float64 `json:"rating"`
	Rank   *uint32  `json:"rank"`
	Name   *string  `json:"name"`
}

// matchResponse defines a match as returned by the API.
type matchResponse struct {
	ID                 *uint64  `json:"id"`
	PlayedTime         *uint64  `json:"played_time"`
	WinnerID           *uint32  `json:"winner_id"`
	WinnerName         *string  `json:"winner_name"`
	WinnerRankBefore   *uint32  `json:"winner_rank_before"`
	WinnerRankAfter    *uint32  `json:"winner_rank_after"`
	WinnerRatingBefore *float64 `json:"winner_rating_before"`
	WinnerRatingAfter  *float64 `json:"winner_rating_after"`
	LoserID            *uint32  `json:"loser_id"`
	LoserName          *string  `json:"loser_name"`
	LoserRankBefore    *uint32  `json:"loser_rank_before"`
	LoserRankAfter     *uint32  `json:"loser_rank_after"`
	LoserRatingBefore  *float64 `json:"loser_rating_before"`
	LoserRatingAfter   *float64 `json:"loser_rating_after"`
}
