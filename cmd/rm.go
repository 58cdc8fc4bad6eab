package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/goals"
)

var rmCmd = &cobra.Command{
	Use:     "rm <goal>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a goal, active or completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	s, err := openSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	g, err := s.goals.Resolve(args[0])
	if err != nil {
		return err
	}
	if !s.goals.Remove(g.ID) {
		return goals.ErrNotFound
	}
	fmt.Printf("  Removed %s\n", g.Title)
	return nil
}
