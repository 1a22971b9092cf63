package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/startuppong/internal/startuppong"
	"github.com/spf13/cobra"
)

type addMatchInput struct {
	winnerID uint32
	loserID  uint32
	winner   string
	loser    string
	notify   bool
}

var (
	addMatchArgs      addMatchInput
	leaderboardNotify bool
)

func init() {
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(playerIDsCmd)
	rootCmd.AddCommand(addMatchCmd)
	rootCmd.AddCommand(leaderboardCmd)

	addMatchCmd.Flags().Uint32Var(&addMatchArgs.winnerID, "winner-id", 0, "Ladder id of the winner")
	addMatchCmd.Flags().Uint32Var(&addMatchArgs.loserID, "loser-id", 0, "Ladder id of the loser")
	addMatchCmd.Flags().StringVar(&addMatchArgs.winner, "winner", "", "Name (or part of a name) of the winner")
	addMatchCmd.Flags().StringVar(&addMatchArgs.loser, "loser", "", "Name (or part of a name) of the loser")
	addMatchCmd.Flags().BoolVar(&addMatchArgs.notify, "notify", false, "Post the recorded match to Slack")
	addMatchCmd.MarkFlagsRequiredTogether("winner-id", "loser-id")
	addMatchCmd.MarkFlagsRequiredTogether("winner", "loser")
	addMatchCmd.MarkFlagsMutuallyExclusive("winner-id", "winner")
	addMatchCmd.MarkFlagsMutuallyExclusive("loser-id", "loser")
	addMatchCmd.MarkFlagsOneRequired("winner-id", "winner")

	leaderboardCmd.Flags().BoolVar(&leaderboardNotify, "notify", false, "Post the ladder to Slack")
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Print the ladder",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
		return runPlayers(ctx, a)
	}),
}

var matchesCmd = &cobra.Command{
	Use:   "matches [company-id]",
	Short: "Print the most recent matches for a company",
	Long:  "Print the most recent matches for a company. Defaults to the configured account.",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) error {
		companyID := ""
		if len(args) == 1 {
			companyID = args[0]
		}
		return runMatches(ctx, a, companyID)
	}),
}

var playerIDsCmd = &cobra.Command{
	Use:   "player-ids NAME...",
	Short: "Resolve player names to ladder ids",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app, args []string) error {
		return runPlayerIDs(ctx, a, args)
	}),
}

var addMatchCmd = &cobra.Command{
	Use:   "add-match",
	Short: "Record a match result",
	Example: `  pong add-match --winner-id 55 --loser-id 58
  pong add-match --winner Collin --loser Michael --notify`,
	Args: cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
		return runAddMatch(ctx, a, addMatchArgs)
	}),
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the ladder, optionally posting it to Slack",
	Args:  cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
		return runLeaderboard(ctx, a, leaderboardNotify)
	}),
}

func runPlayers(ctx context.Context, a *app) error {
	players, err := a.client.GetPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get players: %w", err)
	}
	a.printPlayers(players)
	return nil
}

func runMatches(ctx context.Context, a *app, companyID string) error {
	matches, err := a.client.GetRecentMatchesForCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to get recent matches: %w", err)
	}
	if len(matches) == 0 {
		a.printf("No recent matches.\n")
		return nil
	}
	for _, m := range matches {
		a.printMatch(m)
	}
	return nil
}

func runPlayerIDs(ctx context.Context, a *app, names []string) error {
	ids, err := a.client.GetPlayerIDs(ctx, names)
	if err != nil {
		return fmt.Errorf("failed to resolve player ids: %w", err)
	}
	for i, id := range ids {
		a.printf("%s\t%d\n", names[i], id)
	}
	return nil
}

func runAddMatch(ctx context.Context, a *app, in addMatchInput) error {
	if in.notify {
		if err := a.requireNotifier(); err != nil {
			return err
		}
	}

	var (
		match startuppong.Match
		err   error
	)
	if in.winner != "" || in.loser != "" {
		match, err = a.client.AddMatchWithNames(ctx, in.winner, in.loser)
	} else {
		match, err = a.client.AddMatch(ctx, startuppong.MatchSubmission{WinnerID: in.winnerID, LoserID: in.loserID})
	}
	if err != nil {
		return fmt.Errorf("failed to add match: %w", err)
	}
	log.Info("Match recorded", "match_id", match.ID, "winner_id", match.WinnerID, "loser_id", match.LoserID)
	a.printMatch(match)

	if in.notify {
		if err := a.notifier.SendMatchResult(ctx, match, a.dryRun); err != nil {
			return fmt.Errorf("failed to notify match result: %w", err)
		}
	}
	return nil
}

func runLeaderboard(ctx context.Context, a *app, notify bool) error {
	if notify {
		if err := a.requireNotifier(); err != nil {
			return err
		}
	}
	players, err := a.client.GetPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get players: %w", err)
	}
	a.printPlayers(players)
	if !notify {
		return nil
	}
	if err := a.notifier.SendLeaderboard(ctx, players, a.dryRun); err != nil {
		return fmt.Errorf("failed to notify leaderboard: %w", err)
	}
	return nil
}

func (a *app) printPlayers(players []startuppong.Player) {
	if len(players) == 0 {
		a.printf("The ladder is empty.\n")
		return
	}
	for _, p := range players {
		a.printf("%d. %s (%.2f)\n", p.Rank, p.Name, p.Rating)
	}
}

func (a *app) printMatch(m startuppong.Match) {
	a.printf("#%d %s: %s (%d → %d) beat %s (%d → %d)\n",
		m.ID,
		m.PlayedAt().UTC().Format("2006-01-02 15:04"),
		m.WinnerName, m.WinnerRankBefore, m.WinnerRankAfter,
		m.LoserName, m.LoserRankBefore, m.LoserRankAfter,
	)
}
