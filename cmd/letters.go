package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/examples"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/progress"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Browse the alphabet and its example words",
}

var lettersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List letters with example counts and stars",
	RunE: func(cmd *cobra.Command, args []string) error {
		vowels, _ := cmd.Flags().GetBool("vowels")
		consonants, _ := cmd.Flags().GetBool("consonants")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		stars := map[string]int{}
		if st, err := openStore(cfg); err == nil {
			defer st.Close()
			stars, _ = progress.NewService(st.EventRepo(), st.SnapshotRepo()).All(context.Background())
		}

		fmt.Printf("%-6s  %-6s  %-8s  %5s  %5s\n", "Letter", "Roman", "Kind", "Words", "Stars")
		fmt.Println(strings.Repeat("─", 40))
		for _, l := range letters.All() {
			switch {
			case vowels && !letters.IsVowel(l):
				continue
			case consonants && letters.IsVowel(l):
				continue
			}
			roman, _ := letters.Romanize(l)
			fmt.Printf("%-6s  %-6s  %-8s  %5d  %5d\n", l, roman, kindOf(l), len(lib.Pool(l)), stars[l])
		}
		return nil
	},
}

var lettersShowCmd = &cobra.Command{
	Use:   "show <letter>",
	Short: "Show a letter's examples, combinations and stars",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		letter, ok := letters.Find(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", letters.ErrUnknownLetter, args[0])
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		lang := cfg.Settings().Language

		roman, _ := letters.Romanize(letter)
		fmt.Printf("Letter:    %s (%s, %s)\n", letter, roman, kindOf(letter))
		if a, ok := lib.LetterAudio(letter); ok {
			fmt.Printf("Audio:     %s\n", a)
		}
		if st, err := openStore(cfg); err == nil {
			n, _ := progress.NewService(st.EventRepo(), st.SnapshotRepo()).Stars(context.Background(), letter)
			st.Close()
			fmt.Printf("Stars:     %d\n", n)
		}

		pool := lib.Pool(letter)
		shown := examples.Select(pool, cfg.ExamplesLimit)
		fmt.Println()
		fmt.Printf("Examples (%d, showing %d)\n", len(pool), len(shown))
		fmt.Println(strings.Repeat("─", 60))
		if len(pool) == 0 {
			fmt.Println("(none)")
		}
		for i, ex := range pool {
			mark := " "
			if i < len(shown) {
				mark = "*"
			}
			fmt.Printf("%s %-3s %-12s %-14s %s\n", mark, ex.Emoji, ex.Word, ex.Meaning, examples.Sentence(ex, lang))
		}

		combos := lib.CombinationsFor(letter)
		fmt.Println()
		fmt.Println("Combinations")
		fmt.Println(strings.Repeat("─", 60))
		if len(combos) == 0 {
			fmt.Println("(none)")
		} else {
			fmt.Println(strings.Join(combos, " "))
		}
		return nil
	},
}

func kindOf(letter string) string {
	switch {
	case letters.IsVowel(letter):
		return "vowel"
	case letters.IsConsonant(letter):
		return "consonant"
	}
	return "conjunct"
}

func init() {
	lettersListCmd.Flags().Bool("vowels", false, "Only vowels")
	lettersListCmd.Flags().Bool("consonants", false, "Only consonants and conjuncts")
	lettersListCmd.MarkFlagsMutuallyExclusive("vowels", "consonants")

	lettersCmd.AddCommand(lettersListCmd)
	lettersCmd.AddCommand(lettersShowCmd)
}
