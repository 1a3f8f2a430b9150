package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show challenge statistics for a user",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("user", "", "User name (required)")
	_ = statsCmd.MarkFlagRequired("user")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	u, err := resolveUser(ctx, cmd, s)
	if err != nil {
		return err
	}

	challenges, err := s.ChallengeRepo().ListByOwner(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("list challenges: %w", err)
	}

	counts := map[challenge.Status]int{}
	var failedAttempts int
	for _, ch := range challenges {
		counts[ch.Status]++
		failedAttempts += ch.FailedAttempts
	}

	fmt.Printf("Stats for %s\n", u.Name)
	fmt.Println(strings.Repeat("─", 32))
	fmt.Printf("%-12s  %d\n", "Pending", counts[challenge.StatusPending])
	fmt.Printf("%-12s  %d\n", "Completed", counts[challenge.StatusCompleted])
	fmt.Printf("%-12s  %d\n", "Skipped", counts[challenge.StatusSkipped])
	fmt.Printf("%-12s  %d\n", "Wrong tries", failedAttempts)
	fmt.Printf("%-12s  %d\n", "Next diff", challenge.NextDifficulty(counts[challenge.StatusCompleted]))
	return nil
}
