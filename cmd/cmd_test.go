package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/hima/internal/store"
)

func TestChartOrder(t *testing.T) {
	stars := map[string]int{"ग": 1, "अ": 2, "x": 1}
	quizzes := map[string]store.QuizStat{"क": {Letter: "क", Correct: 1, Total: 2}}

	assert.Equal(t, []string{"अ", "क", "ग", "x"}, chartOrder(stars, quizzes))
}

func TestUsageByModel(t *testing.T) {
	rec := func(model string, in, out int) store.LLMEventRecord {
		return store.LLMEventRecord{LLMRequestEventData: store.LLMRequestEventData{
			Model: model, InputTokens: in, OutputTokens: out,
		}}
	}
	got := usageByModel([]store.LLMEventRecord{
		rec("b", 10, 5), rec("a", 1, 1), rec("b", 2, 3),
	})
	assert.Equal(t, []modelUsage{
		{model: "a", calls: 1, in: 1, out: 1},
		{model: "b", calls: 2, in: 12, out: 8},
	}, got)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0060", formatCost(0.006))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"letters", "say", "stars", "assets", "llm", "config", "version"} {
		assert.Contains(t, names, want)
	}
}
