package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an answer to a pending challenge",
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().String("user", "", "User name (required)")
	submitCmd.Flags().Int64("id", 0, "Challenge ID (required)")
	submitCmd.Flags().Int("answer", 0, "Your integer answer (required)")
	_ = submitCmd.MarkFlagRequired("user")
	_ = submitCmd.MarkFlagRequired("id")
	_ = submitCmd.MarkFlagRequired("answer")
}

func runSubmit(cmd *cobra.Command, args []string) error {
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

	id, _ := cmd.Flags().GetInt64("id")
	answer, _ := cmd.Flags().GetInt("answer")

	ch, err := svc.Submit(ctx, u.ID, id, answer)
	if err != nil {
		var rl *challenge.RateLimitedError
		if errors.As(err, &rl) {
			return fmt.Errorf("%s", rl.Error())
		}
		if errors.Is(err, challenge.ErrNotFound) {
			return fmt.Errorf("challenge %d not found", id)
		}
		if errors.Is(err, challenge.ErrConflict) {
			return fmt.Errorf("submit: %w", err)
		}
		return fmt.Errorf("submit: %w", err)
	}

	if ch.Status == challenge.StatusCompleted {
		fmt.Printf("Correct! Challenge #%d completed.\n", ch.ID)
	} else {
		fmt.Printf("Wrong answer. Failed attempts on challenge #%d: %d\n", ch.ID, ch.FailedAttempts)
	}
	return nil
}
