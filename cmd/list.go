package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your challenges",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("user", "", "User name (required)")
	listCmd.Flags().String("status", "", "Filter by status (PENDING, COMPLETED, SKIPPED)")
	_ = listCmd.MarkFlagRequired("user")
}

func runList(cmd *cobra.Command, args []string) error {
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

	svc, err := newService(ctx, s, false)
	if err != nil {
		return err
	}

	challenges, err := svc.List(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("list challenges: %w", err)
	}

	statusFilter, _ := cmd.Flags().GetString("status")
	if statusFilter != "" {
		filter := challenge.Status(strings.ToUpper(statusFilter))
		if !filter.Valid() {
			return fmt.Errorf("invalid status %q", statusFilter)
		}
		var filtered []*challenge.Challenge
		for _, ch := range challenges {
			if ch.Status == filter {
				filtered = append(filtered, ch)
			}
		}
		challenges = filtered
	}

	if len(challenges) == 0 {
		fmt.Println("No challenges yet. Run: codechal generate --user", u.Name)
		return nil
	}

	// Solutions are deliberately absent from this view.
	fmt.Printf("%-5s  %-10s  %-4s  %-8s  %s\n", "ID", "Status", "Diff", "Attempts", "Title")
	fmt.Println(strings.Repeat("─", 72))
	for _, ch := range challenges {
		fmt.Printf("%-5d  %-10s  %-4d  %-8d  %s\n",
			ch.ID, ch.Status, ch.Difficulty, ch.FailedAttempts, truncate(ch.Title, 40))
	}
	return nil
}
