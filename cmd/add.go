package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/goals"
	"github.com/theirongolddev/goalchaser/internal/model"
)

var (
	flagAddDays  int
	flagAddColor string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a goal (opens a form when no title is given)",
	Args:  cobra.ArbitraryArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntVarP(&flagAddDays, "days", "d", 0, "Target days, 1-31 (default from config)")
	addCmd.Flags().StringVarP(&flagAddColor, "color", "c", string(model.DefaultColor), "Color tag: red, orange, yellow, green, blue, purple")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	s, err := openSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	in := goals.NewGoal{
		Title: strings.Join(args, " "),
		Days:  flagAddDays,
		Color: model.Color(strings.ToLower(strings.TrimSpace(flagAddColor))),
	}
	if in.Days == 0 {
		in.Days = s.cfg.General.DefaultDays
	}
	if !in.Color.IsValid() {
		return fmt.Errorf("unknown color %q", flagAddColor)
	}
	if err := goals.CheckDays(in.Days); err != nil {
		return err
	}

	if s.goals.Summary().Remaining == 0 {
		return goals.ValidationError{Reason: goals.ErrLimitReached}
	}

	if in.Title == "" {
		if err := addForm(&in).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("add form: %w", err)
		}
	}

	id, err := s.goals.Add(in)
	if err != nil {
		return err
	}

	g, _ := s.goals.Get(id)
	fmt.Printf("  Added %s  %s  %s\n", g.Title, cli.Swatch(g.Color), cli.FormatDaysLeft(g.Days))
	fmt.Println(cli.Muted("  id " + cli.ShortID(g.ID)))
	return nil
}

// addForm asks for the fields a new goal needs, seeded from in.
func addForm(in *goals.NewGoal) *huh.Form {
	days := strconv.Itoa(in.Days)

	colorOpts := make([]huh.Option[model.Color], 0, len(model.Colors))
	for _, c := range model.Colors {
		colorOpts = append(colorOpts, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("Input your goal").
				CharLimit(64).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return goals.ErrBlankTitle
					}
					return nil
				}).
				Value(&in.Title),
			huh.NewInput().
				Title("Days").
				Validate(func(v string) error {
					n, err := strconv.Atoi(strings.TrimSpace(v))
					if err != nil {
						return goals.ErrInvalidDays
					}
					if err := goals.CheckDays(n); err != nil {
						return err
					}
					in.Days = n
					return nil
				}).
				Value(&days),
			huh.NewSelect[model.Color]().
				Title("Color").
				Options(colorOpts...).
				Value(&in.Color),
		),
	)
}
