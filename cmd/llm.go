package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hima/internal/llm"
	"github.com/abhisek/hima/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM requests made while authoring examples",
}

// withEvents opens the configured store and hands its event repo to fn.
func withEvents(cmd *cobra.Command, fn func(ctx context.Context, events store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(context.Background(), st.EventRepo())
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEvents(cmd, func(ctx context.Context, events store.EventRepo) error {
			records, err := events.QueryLLMEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No LLM events found.")
				return nil
			}

			fmt.Printf("%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
				"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
			fmt.Println(strings.Repeat("─", 108))
			for _, e := range records {
				if purpose != "" && e.Purpose != purpose {
					continue
				}
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				cost := "?"
				if c := llm.LookupCost(e.Model); c != nil {
					cost = formatCost(c.Cost(e.InputTokens, e.OutputTokens))
				}
				fmt.Printf("%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					truncate(e.Purpose, 12),
					truncate(e.Model, 28),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					cost,
					ok,
				)
			}
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEvents(cmd, func(ctx context.Context, events store.EventRepo) error {
			e, err := events.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			fmt.Printf("ID:        %d\n", e.ID)
			fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Provider:  %s\n", e.Provider)
			fmt.Printf("Model:     %s\n", e.Model)
			fmt.Printf("Purpose:   %s\n", e.Purpose)
			fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Printf("Latency:   %dms\n", e.LatencyMs)
			fmt.Printf("Success:   %v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Printf("Error:     %s\n", e.ErrorMessage)
			}
			printSection("REQUEST", e.RequestBody)
			printSection("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM token usage and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEvents(cmd, func(ctx context.Context, events store.EventRepo) error {
			records, err := events.QueryLLMEvents(ctx, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(records) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			fmt.Println("Estimated Cost (USD)")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "Input", "Output", "Cost")
			fmt.Println(strings.Repeat("─", 72))

			var total float64
			var unknown []string
			for _, u := range usageByModel(records) {
				c := llm.LookupCost(u.model)
				if c == nil {
					unknown = append(unknown, u.model)
					fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n", truncate(u.model, 32), u.calls, u.in, u.out, "?")
					continue
				}
				cost := c.Cost(u.in, u.out)
				total += cost
				fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n", truncate(u.model, 32), u.calls, u.in, u.out, formatCost(cost))
			}

			fmt.Println(strings.Repeat("─", 72))
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(total))
			if len(unknown) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

type modelUsage struct {
	model   string
	calls   int
	in, out int
}

func usageByModel(records []store.LLMEventRecord) []modelUsage {
	byModel := map[string]*modelUsage{}
	for _, r := range records {
		u, ok := byModel[r.Model]
		if !ok {
			u = &modelUsage{model: r.Model}
			byModel[r.Model] = u
		}
		u.calls++
		u.in += r.InputTokens
		u.out += r.OutputTokens
	}
	out := make([]modelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].model < out[j].model })
	return out
}

func printSection(title, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(title)
	fmt.Println(sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. example-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
