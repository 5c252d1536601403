package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/authoring"
	"github.com/abhisek/hima/internal/letters"
	"github.com/abhisek/hima/internal/llm"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/speech"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check and build asset packs",
}

var assetsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the manifest and every letter file of a pack",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fsys, name := cfg.Assets()
		if len(args) == 1 {
			fsys, name = os.DirFS(args[0]), args[0]
		}
		if fsys == nil {
			fsys, name = letters.Sample(), "bundled sample"
		}

		lib, err := letters.Load(fsys)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		m := lib.Manifest()
		fmt.Printf("Pack:     %s (%s %s)\n", name, m.Name, m.Version)
		fmt.Printf("Letters:  %d of %d\n", len(lib.Letters()), len(letters.All()))

		var missing []string
		for _, l := range letters.All() {
			if len(lib.Pool(l)) == 0 {
				missing = append(missing, l)
			}
		}
		if len(missing) > 0 {
			fmt.Printf("No words: %s\n", strings.Join(missing, " "))
		}

		problems := lib.Problems()
		if len(problems) == 0 {
			fmt.Println("OK")
			return nil
		}
		fmt.Println()
		for _, p := range problems {
			fmt.Println("✗", p)
		}
		return fmt.Errorf("%d invalid file(s)", len(problems))
	},
}

var assetsAudioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Synthesize letter and combined-sound recordings",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		engine, _ := cmd.Flags().GetString("engine")
		force, _ := cmd.Flags().GetBool("force")
		skipCombined, _ := cmd.Flags().GetBool("skip-combined")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if engine == "" {
			engine = cfg.Speech.Engine
		}

		ctx := context.Background()
		synth, err := speech.NewSynthesizer(ctx, engine, cfg.Speech)
		if err != nil {
			return fmt.Errorf("%w (use --engine gcp, polly or translate)", err)
		}
		defer synth.Close()

		jobs := make(map[string]string)
		for _, l := range letters.All() {
			jobs[audio.LetterAssetPath(l)] = l
		}
		if !skipCombined {
			for _, c := range letters.Consonants() {
				for _, syl := range letters.Combinations(c, nil) {
					jobs[audio.CombinedAssetPath(syl)] = syl
				}
			}
		}

		var made, skipped int
		for _, rel := range sortedKeys(jobs) {
			path := filepath.Join(out, filepath.FromSlash(rel))
			if _, err := os.Stat(path); err == nil && !force {
				skipped++
				continue
			}
			data, err := synth.Synthesize(ctx, jobs[rel], settings.DefaultLocale)
			if err != nil {
				return fmt.Errorf("synthesize %s: %w", jobs[rel], err)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			made++
			fmt.Println("wrote", rel)
		}
		fmt.Printf("%d written, %d already present\n", made, skipped)
		return nil
	},
}

var assetsExamplesCmd = &cobra.Command{
	Use:   "examples <letter>",
	Short: "Generate example words for a letter with an LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		write, _ := cmd.Flags().GetBool("write")

		letter, ok := letters.Find(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", letters.ErrUnknownLetter, args[0])
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if write && cfg.AssetsDir == "" {
			return errors.New("--write needs an asset pack directory (--assets or assets_dir)")
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}

		llmCfg, err := llm.Resolve()
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			return err
		}

		gcfg := authoring.DefaultConfig()
		if count > 0 {
			gcfg.Count = count
		}
		found, err := authoring.New(provider, gcfg).Generate(ctx, letter, lib.Pool(letter))
		if err != nil {
			return err
		}

		if !write {
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(found)
		}
		path, err := authoring.WriteExamples(cfg.AssetsDir, letter, found)
		if err != nil {
			return err
		}
		fmt.Printf("added %d example(s) to %s\n", len(found), path)
		return nil
	},
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	assetsAudioCmd.Flags().StringP("out", "o", "", "Pack directory to write audio/ into")
	assetsAudioCmd.Flags().String("engine", "", "Cloud engine: gcp, polly or translate (default from config)")
	assetsAudioCmd.Flags().Bool("force", false, "Overwrite existing recordings")
	assetsAudioCmd.Flags().Bool("skip-combined", false, "Only synthesize single letters")
	_ = assetsAudioCmd.MarkFlagRequired("out")

	assetsExamplesCmd.Flags().IntP("count", "n", 0, "Number of words to ask for")
	assetsExamplesCmd.Flags().Bool("write", false, "Merge the words into the letter file of the pack")

	assetsCmd.AddCommand(assetsValidateCmd)
	assetsCmd.AddCommand(assetsAudioCmd)
	assetsCmd.AddCommand(assetsExamplesCmd)
}
