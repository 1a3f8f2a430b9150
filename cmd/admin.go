package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative views across all users",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every challenge, including solutions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		challenges, err := s.ChallengeRepo().ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list all challenges: %w", err)
		}

		if len(challenges) == 0 {
			fmt.Println("No challenges recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-36s  %-10s  %-4s  %-10s  %s\n",
			"ID", "Owner", "Status", "Diff", "Solution", "Title")
		fmt.Println(strings.Repeat("─", 100))
		for _, ch := range challenges {
			fmt.Printf("%-5d  %-36s  %-10s  %-4d  %-10d  %s\n",
				ch.ID, ch.OwnerID, ch.Status, ch.Difficulty, ch.Solution, truncate(ch.Title, 30))
		}
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List known users",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		users, err := s.UserRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users recorded.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %s\n", "ID", "Name", "Created")
		fmt.Println(strings.Repeat("─", 72))
		for _, u := range users {
			fmt.Printf("%-36s  %-20s  %s\n",
				u.ID, u.Name, u.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminUsersCmd)
}
