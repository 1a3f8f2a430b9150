package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new coding challenge",
	Long: `Generate a new pending challenge for a user.

Difficulty normally follows your progress (it rises as you complete
challenges); --difficulty overrides that for a single generation.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("user", "", "User name (required)")
	generateCmd.Flags().Int("difficulty", 0, "Override difficulty (1-5)")
	_ = generateCmd.MarkFlagRequired("user")
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	var override *int
	if cmd.Flags().Changed("difficulty") {
		d, _ := cmd.Flags().GetInt("difficulty")
		override = &d
	}

	ch, err := svc.GenerateNew(ctx, u.ID, override)
	if err != nil {
		var limit *challenge.LimitExceededError
		if errors.As(err, &limit) {
			return fmt.Errorf("%s", limit.Error())
		}
		return fmt.Errorf("generate challenge: %w", err)
	}

	printChallenge(ch)
	return nil
}

func printChallenge(ch *challenge.Challenge) {
	fmt.Printf("Challenge #%d (difficulty %d)\n", ch.ID, ch.Difficulty)
	fmt.Println(ch.Title)
	fmt.Println()
	fmt.Println(ch.Description)
	fmt.Println()
	fmt.Printf("Submit with: codechal submit --id %d --answer <n>\n", ch.ID)
}
