package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/goalchaser/internal/cli"
	"github.com/theirongolddev/goalchaser/internal/rewards"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Show completed goals",
	RunE:  runRewards,
}

var cheerCmd = &cobra.Command{
	Use:   "cheer",
	Short: "Reveal a secret reward message",
	Args:  cobra.NoArgs,
	RunE:  runCheer,
}

func init() {
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(cheerCmd)
}

func runRewards(_ *cobra.Command, _ []string) error {
	s, err := openSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	done := s.goals.Completed()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REWARDS  %d completed", len(done))))
	fmt.Println()
	if len(done) == 0 {
		fmt.Println("  Nothing completed yet. Keep tapping!")
		fmt.Println()
		return nil
	}
	fmt.Print(rewardTable(done))
	fmt.Println()
	return nil
}

func runCheer(_ *cobra.Command, _ []string) error {
	msg := rewards.Default().Pick(nil)
	fmt.Println()
	fmt.Println(cli.RenderTitle(rewards.SecretRewardHeading))
	fmt.Println()
	fmt.Println("  " + msg)
	fmt.Println()
	return nil
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	if s == "" {
		return s
	}
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
