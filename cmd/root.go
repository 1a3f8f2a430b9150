package cmd

import (
	"context"
	"fmt"

	"github.com/chriscasey/codechallenger/internal/challenge"
	"github.com/chriscasey/codechallenger/internal/llm"
	"github.com/chriscasey/codechallenger/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codechal",
	Short: "AI-generated coding challenges in your terminal",
	Long: "Codechal generates small coding puzzles with integer answers, " +
		"tracks your progress, and adapts difficulty as you complete them.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODECHAL_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CODECHAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by flags and environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveUser maps the --user flag to a stable user identity, creating
// the user on first use.
func resolveUser(ctx context.Context, cmd *cobra.Command, s *store.Store) (*store.User, error) {
	name, _ := cmd.Flags().GetString("user")
	u, err := s.UserRepo().GetOrCreateByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return u, nil
}

// newService builds the lifecycle service. withGenerator controls whether
// an LLM provider is constructed; read-only and submit commands skip it
// so they work without API keys.
func newService(ctx context.Context, s *store.Store, withGenerator bool) (*challenge.Service, error) {
	var gen challenge.Generator
	if withGenerator {
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return nil, fmt.Errorf("LLM provider: %w", err)
		}
		gen = challenge.NewGenerator(provider, challenge.DefaultConfig())
	}
	return challenge.NewService(s.ChallengeRepo(), gen, challenge.DefaultConfig()), nil
}
