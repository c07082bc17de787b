package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"ai_text_completion/settings"
)

// Result is one entry in the ordered experiment log. The JSON shape is
// stable: {test_name, prompt, response|null, settings, time_taken, success,
// error?}.
type Result struct {
	TestName  string            `json:"test_name"`
	Prompt    string            `json:"prompt"`
	Response  *string           `json:"response"`
	Settings  settings.Settings `json:"settings"`
	TimeTaken float64           `json:"time_taken"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
}

// Summary aggregates a result log.
type Summary struct {
	Total      int
	Successful int
	Failed     int
	// AvgTime is the mean elapsed time over successful results only. Zero
	// when nothing succeeded.
	AvgTime float64
}

// Summarize computes aggregate counts over results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}

	var totalTime float64
	for _, r := range results {
		if r.Success {
			s.Successful++
			totalTime += r.TimeTaken
		} else {
			s.Failed++
		}
	}
	if s.Successful > 0 {
		s.AvgTime = totalTime / float64(s.Successful)
	}
	return s
}

// PrintSummary writes the aggregate report.
func PrintSummary(out io.Writer, results []Result) {
	s := Summarize(results)

	rule := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "EXPERIMENT RESULTS")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total tests: %d\n", s.Total)
	fmt.Fprintf(out, "Successful: %d\n", s.Successful)
	fmt.Fprintf(out, "Failed: %d\n", s.Failed)
	if s.Successful > 0 {
		fmt.Fprintf(out, "Average response time: %.2fs\n", s.AvgTime)
	}
}

// PrintDetails writes the per-result report, including a rough quality note
// on response length.
func PrintDetails(out io.Writer, results []Result) {
	fmt.Fprintln(out, "\nDetailed Results:")
	fmt.Fprintln(out, strings.Repeat("-", 50))

	for i, r := range results {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, r.TestName)

		if !r.Success {
			fmt.Fprintf(out, "   Error: %s\n", r.Error)
			continue
		}

		responseLen := 0
		if r.Response != nil {
			responseLen = utf8.RuneCountInString(*r.Response)
		}
		fmt.Fprintf(out, "   Response length: %d characters\n", responseLen)
		fmt.Fprintf(out, "   Time: %.2fs\n", r.TimeTaken)
		fmt.Fprintf(out, "   Settings: Creativity=%v, Length=%d\n", r.Settings.Temperature, r.Settings.MaxTokens)

		switch {
		case responseLen < 30:
			fmt.Fprintln(out, "   Note: Response seems short")
		case responseLen > 400:
			fmt.Fprintln(out, "   Note: Response is quite long")
		default:
			fmt.Fprintln(out, "   Note: Response length looks good")
		}
	}
}

// ResultsFilename returns the timestamped results file name for a run
// starting at t.
func ResultsFilename(t time.Time) string {
	return fmt.Sprintf("experiment_results_%s.json", t.Format("20060102_150405"))
}

// Save serializes results as an indented JSON array at path.
func Save(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	return nil
}
