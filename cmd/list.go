package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/model"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show active goals",
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "Include completed goals")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	sum := s.goals.Summary()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GOALS  %d/%d active", sum.Active, goals.MaxActive)))
	fmt.Println()

	active := s.goals.Active()
	if len(active) == 0 {
		fmt.Println("  No active goals. Add one with `goalchaser add`.")
	} else {
		fmt.Print(goalTable(s.goals, active, time.Now()))
	}

	if flagListAll {
		done := s.goals.Completed()
		if len(done) > 0 {
			fmt.Println()
			fmt.Print(rewardTable(done))
		}
	} else if sum.Completed > 0 {
		fmt.Printf("\n  %s\n", cli.Muted(fmt.Sprintf("%d completed, see `goalchaser rewards`", sum.Completed)))
	}
	fmt.Println()
	return nil
}

func goalTable(st *goals.Store, active []model.Goal, now time.Time) string {
	rows := make([][]string, 0, len(active))
	for i, g := range active {
		status := cli.Good("ready")
		if !st.Tappable(g.ID) {
			status = cli.Muted("done today")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cli.Truncate(g.Title, 32),
			cli.Swatch(g.Color),
			cli.FormatDaysLeft(g.Days),
			cli.FormatLastTapped(g.LastTapped, now),
			status,
			cli.ShortID(g.ID),
		})
	}
	return cli.RenderTable(cli.Table{
		Headers:    []string{"#", "Goal", "Color", "Left", "Last tap", "Today", "ID"},
		Rows:       rows,
		RightAlign: []bool{true, false, false, true, false, false, false},
	})
}

func rewardTable(done []model.Goal) string {
	rows := make([][]string, 0, len(done))
	for _, g := range done {
		rows = append(rows, []string{cli.Good("✓"), cli.Truncate(g.Title, 40), cli.ShortID(g.ID)})
	}
	return cli.RenderTable(cli.Table{
		Title:   "Rewards",
		Headers: []string{"", "Goal", "ID"},
		Rows:    rows,
	})
}
