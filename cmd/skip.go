package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/spf13/cobra"
)

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip a pending challenge and get a replacement",
	RunE:  runSkip,
}

func init() {
	skipCmd.Flags().String("user", "", "User name (required)")
	skipCmd.Flags().Int64("id", 0, "Challenge ID (required)")
	_ = skipCmd.MarkFlagRequired("user")
	_ = skipCmd.MarkFlagRequired("id")
}

func runSkip(cmd *cobra.Command, args []string) error {
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

	svc, err := newService(ctx, s, true)
	if err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt64("id")
	if err := svc.Skip(ctx, u.ID, id); err != nil {
		var regen *challenge.RegenerationError
		if errors.As(err, &regen) {
			// The skip itself is committed at this point.
			fmt.Printf("Challenge #%d skipped.\n", id)
			return fmt.Errorf("replacement generation failed: %w", regen.Err)
		}
		if errors.Is(err, challenge.ErrNotFound) {
			return fmt.Errorf("challenge %d not found", id)
		}
		return fmt.Errorf("skip: %w", err)
	}

	fmt.Printf("Challenge #%d skipped. A replacement is waiting:\n\n", id)
	challenges, err := svc.List(ctx, u.ID)
	if err == nil && len(challenges) > 0 {
		printChallenge(challenges[0])
	}
	return nil
}
