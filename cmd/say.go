package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/audio"
	"github.com/abhisek/hima/internal/settings"
)

var sayCmd = &cobra.Command{
	Use:   "say <token>",
	Short: "Play a letter, word or combined sound",
	Long: `Play a playback token through the configured player and speech engine.

Tokens:
  क                             letter recording, else speak the letter
  tts:<text>                    speak text
  asset:<path>|fallback:<text>  play a recording, else speak text
  combined:<syllable>           combined sound recording, else speak it`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		langFlag, _ := cmd.Flags().GetString("language")
		device, _ := cmd.Flags().GetBool("device")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}

		prefs := cfg.Settings()
		if langFlag != "" {
			if prefs.Language, err = settings.ParseLanguage(langFlag); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("device") {
			prefs.PreferDeviceSpeech = device
		}

		ctx := context.Background()
		sound, err := newAudioStack(ctx, cfg, lib, settings.Static(prefs), false)
		if err != nil {
			return err
		}
		defer sound.Close()

		in := audio.ParseToken(strings.Join(args, " "))
		plan := sound.service.Plan(ctx, in)
		if dryRun || plan.Silent() {
			printPlan(in, plan)
			return nil
		}

		res := sound.service.Play(ctx, in)
		if res.Asset != "" {
			sound.player.Wait()
			fmt.Println("played", res.Asset)
		} else if res.Spoke {
			fmt.Println("spoke", plan.Speech.Text)
		}
		return nil
	},
}

func printPlan(in audio.Intent, p audio.Plan) {
	fmt.Printf("Intent:  %s (%s)\n", in, in.Kind)
	if p.Silent() {
		fmt.Println("Plan:    nothing to play")
		return
	}
	for _, a := range p.Assets {
		fmt.Printf("Asset:   %s\n", a)
	}
	if p.Speech != nil {
		fmt.Printf("Speech:  %s [%s]\n", p.Speech.Text, p.Speech.Locale)
	}
}

func init() {
	sayCmd.Flags().Bool("dry-run", false, "Print the playback plan without playing it")
	sayCmd.Flags().StringP("language", "l", "", "Language for speech (hindi or marathi)")
	sayCmd.Flags().Bool("device", false, "Speak letters with the device voice instead of recordings")
}
