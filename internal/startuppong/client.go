package startuppong

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/mauv0809/startuppong/internal/metrics"
)

const (
	// DefaultBaseURL is the public startuppong host.
	DefaultBaseURL = "http://www.startuppong.com"
	defaultTimeout = 10 * time.Second
	userAgent      = "StartuppongGoClient/1.0"

	getPlayersPath     = "/api/v1/get_players"
	getRecentMatchPath = "/api/v1/get_recent_matches_for_company"
	addMatchPath       = "/api/v1/add_match"

	paramAccountID = "api_account_id"
	paramAccessKey = "api_access_key"
)

// Operation names, used for error context and as the metrics endpoint label.
const (
	OpGetPlayers                 = "get_players"
	OpGetRecentMatchesForCompany = "get_recent_matches_for_company"
	OpAddMatch                   = "add_match"
)

// APIClient is a startuppong API client that implements the PongClient interface.
// It holds no mutable state after construction and is safe for concurrent use.
type APIClient struct {
	account    Account
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	metrics    metrics.Metrics
	rest       *resty.Client
}

// Ensure APIClient implements the PongClient interface.
var _ PongClient = (*APIClient)(nil)

// NewClient creates a new startuppong client for account.
func NewClient(account Account, opts ...Option) *APIClient {
	c := &APIClient{
		account: account,
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}

	var rest *resty.Client
	if c.httpClient != nil {
		// resty writes the timeout onto the client it wraps, so work on a copy.
		hc := *c.httpClient
		rest = resty.NewWithClient(&hc)
	} else {
		rest = resty.New()
	}
	// Requests are never retried; add_match creates a record server side.
	c.rest = rest.
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetLogger(log.Default())
	return c
}

// Account returns the account the client was constructed with.
func (c *APIClient) Account() Account {
	return c.account
}

// GetPlayers returns all players associated with the account, in ladder order.
func (c *APIClient) GetPlayers(ctx context.Context) ([]Player, error) {
	players, err := roundTrip(ctx, c, request{
		op:     OpGetPlayers,
		method: http.MethodGet,
		path:   getPlayersPath,
		query:  c.credentials(c.account.ID),
	}, func(body []byte) ([]Player, error) {
		var resp getPlayersResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, err
		}
		return mapPlayers(resp)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Successfully fetched players", "count", len(players))
	return players, nil
}

// GetRecentMatchesForCompany returns the most recent matches for companyID,
// newest first as ordered by the server. An empty companyID means the client's
// own account.
func (c *APIClient) GetRecentMatchesForCompany(ctx context.Context, companyID string) ([]Match, error) {
	if companyID == "" {
		companyID = c.account.ID
	}
	matches, err := roundTrip(ctx, c, request{
		op:     OpGetRecentMatchesForCompany,
		method: http.MethodGet,
		path:   getRecentMatchPath,
		query:  c.credentials(companyID),
	}, func(body []byte) ([]Match, error) {
		var resp getMatchesResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, err
		}
		return mapMatches(resp)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Successfully fetched matches", "count", len(matches), "company", companyID)
	return matches, nil
}

// AddMatch records a match between the two players and returns the match as
// persisted by the server. It is not safe to retry blindly: every successful
// call creates a new match.
func (c *APIClient) AddMatch(ctx context.Context, submission MatchSubmission) (Match, error) {
	match, err := roundTrip(ctx, c, request{
		op:     OpAddMatch,
		method: http.MethodPost,
		path:   addMatchPath,
		body: addMatchRequest{
			AccountID: c.account.ID,
			AccessKey: c.account.Key,
			WinnerID:  submission.WinnerID,
			LoserID:   submission.LoserID,
		},
	}, func(body []byte) (Match, error) {
		var resp matchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return Match{}, err
		}
		return mapMatch(resp)
	})
	if err != nil {
		return Match{}, err
	}
	log.Info("Match added", "matchID", match.ID, "winner", match.WinnerID, "loser", match.LoserID)
	return match, nil
}

// GetPlayerIDs resolves each name to a player ID.
//
// The API has no lookup endpoint, so the ladder is fetched once and each name
// is matched against it in order. A player matches when its name contains the
// query (case-sensitive); the first such player in ladder order wins. The
// first unresolved name is reported as a *PlayerNotFoundError.
func (c *APIClient) GetPlayerIDs(ctx context.Context, names []string) ([]uint32, error) {
	players, err := c.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return ResolvePlayerIDs(players, names)
}

// AddMatchWithNames resolves winner and loser by name and adds the match.
func (c *APIClient) AddMatchWithNames(ctx context.Context, winner, loser string) (Match, error) {
	ids, err := c.GetPlayerIDs(ctx, []string{winner, loser})
	if err != nil {
		return Match{}, err
	}
	return c.AddMatch(ctx, MatchSubmission{WinnerID: ids[0], LoserID: ids[1]})
}

// ResolvePlayerIDs applies the GetPlayerIDs matching rules to an already
// fetched ladder.
func ResolvePlayerIDs(players []Player, names []string) ([]uint32, error) {
	ids := make([]uint32, 0, len(names))
	for _, name := range names {
		found := false
		for _, p := range players {
			if strings.Contains(p.Name, name) {
				ids = append(ids, p.ID)
				found = true
				break
			}
		}
		if !found {
			return nil, &PlayerNotFoundError{Name: name}
		}
	}
	return ids, nil
}

func (c *APIClient) credentials(accountID string) map[string]string {
	return map[string]string{
		paramAccountID: accountID,
		paramAccessKey: c.account.Key,
	}
}
