package startuppong

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is wrapped by decode errors caused by an absent required field.
var ErrMissingField = errors.New("missing required field")

// fieldSet collects the names of required fields that were absent from a response.
type fieldSet struct {
	missing []string
}

func required[T any](fs *fieldSet, name string, v *T) T {
	if v == nil {
		fs.missing = append(fs.missing, name)
		var zero T
		return zero
	}
	return *v
}

func (fs *fieldSet) err() error {
	if len(fs.missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fs.missing, ", "))
}

// mapPlayer converts the wire representation into a Player.
func mapPlayer(p playerResponse) (Player, error) {
	var fs fieldSet
	player := Player{
		ID:     required(&fs, "id", p.ID),
		Rating: required(&fs, "rating", p.Rating),
		Rank:   required(&fs, "rank", p.Rank),
		Name:   required(&fs, "name", p.Name),
	}
	if err := fs.err(); err != nil {
		return Player{}, err
	}
	return player, nil
}

// mapMatch converts the wire representation into a Match.
func mapMatch(m matchResponse) (Match, error) {
	var fs fieldSet
	match := Match{
		ID:                 required(&fs, "id", m.ID),
		PlayedTime:         required(&fs, "played_time", m.PlayedTime),
		WinnerID:           required(&fs, "winner_id", m.WinnerID),
		WinnerName:         required(&fs, "winner_name", m.WinnerName),
		WinnerRankBefore:   required(&fs, "winner_rank_before", m.WinnerRankBefore),
		WinnerRankAfter:    required(&fs, "winner_rank_after", m.WinnerRankAfter),
		WinnerRatingBefore: required(&fs, "winner_rating_before", m.WinnerRatingBefore),
		WinnerRatingAfter:  required(&fs, "winner_rating_after", m.WinnerRatingAfter),
		LoserID:            required(&fs, "loser_id", m.LoserID),
		LoserName:          required(&fs, "loser_name", m.LoserName),
		LoserRankBefore:    required(&fs, "loser_rank_before", m.LoserRankBefore),
		LoserRankAfter:     required(&fs, "loser_rank_after", m.LoserRankAfter),
		LoserRatingBefore:  required(&fs, "loser_rating_before", m.LoserRatingBefore),
		LoserRatingAfter:   required(&fs, "loser_rating_after", m.LoserRatingAfter),
	}
	if err := fs.err(); err != nil {
		return Match{}, err
	}
	return match, nil
}

func mapPlayers(resp getPlayersResponse) ([]Player, error) {
	if resp.Players == nil {
		return nil, fmt.Errorf("%w: players", ErrMissingField)
	}
	players := make([]Player, 0, len(*resp.Players))
	for i, p := range *resp.Players {
		player, err := mapPlayer(p)
		if err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
		players = append(players, player)
	}
	return players, nil
}

func mapMatches(resp getMatchesResponse) ([]Match, error) {
	if resp.Matches == nil {
		return nil, fmt.Errorf("%w: matches", ErrMissingField)
	}
	matches := make([]Match, 0, len(*resp.Matches))
	for i, m := range *resp.Matches {
		match, err := mapMatch(m)
		if err != nil {
			return nil, fmt.Errorf("matches[%d]: %w", i, err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
