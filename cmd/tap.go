package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/rewards"
)

var tapCmd = &cobra.Command{
	Use:   "tap <goal>",
	Short: "Record today's progress on a goal (by list number or id)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTap,
}

func init() {
	rootCmd.AddCommand(tapCmd)
}

func runTap(_ *cobra.Command, args []string) error {
	s, err := openSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	g, err := s.goals.Resolve(args[0])
	if err != nil {
		return err
	}

	s.goals.OnCompleted(func(ev model.CompletedEvent) {
		heading, body := rewards.CompletionMessage(ev.Title)
		fmt.Println()
		fmt.Println(cli.RenderTitle(heading))
		fmt.Println()
		fmt.Println("  " + body)
		fmt.Println()
	})

	res := s.goals.Tap(g.ID)
	if !res.Tapped {
		switch res.Denied {
		case goals.DenyTappedToday:
			fmt.Printf("  %s  %s\n", g.Title, cli.Good("Good job! Come back tomorrow!"))
		case goals.DenyCompleted:
			fmt.Printf("  %s  %s\n", g.Title, cli.Muted("already completed"))
		default:
			return goals.ErrNotFound
		}
		return nil
	}

	if res.Completed {
		return nil
	}
	fmt.Printf("  %s  %s\n", res.Goal.Title, cli.Warn(cli.FormatDaysLeft(res.Goal.Days)))
	fmt.Println(indent(cli.RenderBlocks(res.Goal.Days, res.Goal.Color, 5), "  "))
	return nil
}
