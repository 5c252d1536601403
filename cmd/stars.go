package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
	"github.com/abhisek/hima/internal/store"
)

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Show stars earned per letter",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		all, err := progress.NewService(st.EventRepo(), st.SnapshotRepo()).All(ctx)
		if err != nil {
			return fmt.Errorf("read stars: %w", err)
		}
		quizzes, err := st.EventRepo().QuizStats(ctx)
		if err != nil {
			return fmt.Errorf("read quiz stats: %w", err)
		}

		if len(all) == 0 && len(quizzes) == 0 {
			fmt.Println("No stars yet.")
			return nil
		}

		byLetter := make(map[string]store.QuizStat, len(quizzes))
		for _, q := range quizzes {
			byLetter[q.Letter] = q
		}

		fmt.Printf("%-6s  %5s  %8s\n", "Letter", "Stars", "Quiz")
		fmt.Println(strings.Repeat("─", 24))
		total := 0
		for _, l := range chartOrder(all, byLetter) {
			quiz := "-"
			if q, ok := byLetter[l]; ok {
				quiz = fmt.Sprintf("%d/%d", q.Correct, q.Total)
			}
			fmt.Printf("%-6s  %5d  %8s\n", l, all[l], quiz)
			total += all[l]
		}
		fmt.Println(strings.Repeat("─", 24))
		fmt.Printf("%-6s  %5d\n", "TOTAL", total)
		return nil
	},
}

var starsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stars and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("this deletes all progress; run again with --yes to confirm")
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := progress.NewService(st.EventRepo(), st.SnapshotRepo()).Reset(context.Background()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

// chartOrder lists the letters that have stars or quiz answers, in chart
// order, with anything off the chart last.
func chartOrder(stars map[string]int, quizzes map[string]store.QuizStat) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range letters.All() {
		if stars[l] > 0 || quizzes[l].Total > 0 {
			out = append(out, l)
			seen[l] = true
		}
	}
	var rest []string
	for l := range stars {
		if !seen[l] {
			rest = append(rest, l)
			seen[l] = true
		}
	}
	for l := range quizzes {
		if !seen[l] {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func init() {
	starsResetCmd.Flags().Bool("yes", false, "Confirm the reset")
	starsCmd.AddCommand(starsResetCmd)
}
