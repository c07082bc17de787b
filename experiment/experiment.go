// Package experiment runs a fixed list of test prompts against a completion
// session, measures latency, and serializes the ordered result log.
package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"ai_text_completion/settings"
)

// Case is one named prompt/settings pair in the experiment list.
type Case struct {
	Name     string
	Prompt   string
	Settings settings.Settings
}

// DefaultCases returns the fixed experiment list, in run order.
func DefaultCases() []Case {
	return []Case{
		{
			Name:     "Creative Story",
			Prompt:   "Once upon a time, there was a robot who discovered they could feel emotions.",
			Settings: settings.Settings{Temperature: 0.8, MaxTokens: 200},
		},
		{
			Name:     "Simple Explanation",
			Prompt:   "Explain photosynthesis to a 10-year-old.",
			Settings: settings.Settings{Temperature: 0.3, MaxTokens: 150},
		},
		{
			Name:     "Poetry",
			Prompt:   "Write a haiku about the ocean.",
			Settings: settings.Settings{Temperature: 0.9, MaxTokens: 100},
		},
		{
			Name:     "Information",
			Prompt:   "Summarize the main benefits of renewable energy sources.",
			Settings: settings.Settings{Temperature: 0.2, MaxTokens: 200},
		},
		{
			Name:     "Technical Explanation",
			Prompt:   "Explain recursion in programming like I'm five years old.",
			Settings: settings.Settings{Temperature: 0.4, MaxTokens: 150},
		},
	}
}

// Completer is the completion operation the runner drives.
type Completer interface {
	Complete(ctx context.Context, prompt string, s settings.Settings) (string, error)
}

// Runner executes experiment cases strictly in order, one at a time.
type Runner struct {
	completer Completer
	out       io.Writer

	// Pause is the fixed delay between consecutive requests. It is plain
	// pacing, not adaptive throttling; tests set it to zero.
	Pause time.Duration
}

// NewRunner creates a runner reporting progress to out.
func NewRunner(completer Completer, out io.Writer) *Runner {
	return &Runner{
		completer: completer,
		out:       out,
		Pause:     time.Second,
	}
}

// Run executes every case and returns the ordered result log. A failing
// case is recorded and the run continues; nothing aborts the remaining
// iterations.
func (r *Runner) Run(ctx context.Context, cases []Case) []Result {
	results := make([]Result, 0, len(cases))

	for i, c := range cases {
		fmt.Fprintf(r.out, "\nTest %d/%d: %s\n", i+1, len(cases), c.Name)
		fmt.Fprintf(r.out, "Prompt: %s\n", c.Prompt)

		start := time.Now()
		response, err := r.completer.Complete(ctx, c.Prompt, c.Settings)
		elapsed := round2(time.Since(start).Seconds())

		res := Result{
			TestName:  c.Name,
			Prompt:    c.Prompt,
			Settings:  c.Settings,
			TimeTaken: elapsed,
		}

		if err != nil {
			res.Success = false
			res.Error = err.Error()
			fmt.Fprintf(r.out, "Failed: %s\n", res.Error)
			slog.Debug("experiment_case_failed", "name", c.Name, "error", err)
		} else {
			res.Success = true
			res.Response = &response
			fmt.Fprintf(r.out, "Response: %s\n", preview(response, 100))
			fmt.Fprintf(r.out, "Time: %.2fs\n", res.TimeTaken)
			slog.Debug("experiment_case_done",
				"name", c.Name,
				"time_taken", res.TimeTaken,
				"response_length", utf8.RuneCountInString(response),
			)
		}

		results = append(results, res)

		if i < len(cases)-1 && r.Pause > 0 {
			time.Sleep(r.Pause)
		}
	}

	return results
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// preview truncates s to maxLen characters on a rune boundary.
func preview(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
