package experiment

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"ai_text_completion/session"
	"ai_text_completion/settings"
)

// patternCompleter fails calls whose index appears in failAt.
type patternCompleter struct {
	failAt map[int]error
	calls  int
}

func (c *patternCompleter) Complete(_ context.Context, p string, _ settings.Settings) (string, error) {
	idx := c.calls
	c.calls++
	if err, ok := c.failAt[idx]; ok {
		return "", err
	}
	return "response to: " + p, nil
}

func newRunner(c Completer) *Runner {
	r := NewRunner(c, &strings.Builder{})
	r.Pause = 0
	return r
}

func TestRunMixedResults(t *testing.T) {
	c := &patternCompleter{failAt: map[int]error{
		1: &session.APIError{StatusCode: 429},
		3: &session.TransportError{Err: errors.New("dial tcp: timeout")},
	}}

	results := newRunner(c).Run(context.Background(), DefaultCases())

	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}

	s := Summarize(results)
	if s.Total != 5 || s.Successful != 3 || s.Failed != 2 {
		t.Errorf("summary = %+v, want total 5, successful 3, failed 2", s)
	}

	// Mean elapsed time covers successes only.
	var want float64
	for _, r := range results {
		if r.Success {
			want += r.TimeTaken
		}
	}
	want /= 3
	if s.AvgTime != want {
		t.Errorf("AvgTime = %v, want %v", s.AvgTime, want)
	}

	// Order and per-result shape.
	for i, r := range results {
		if r.TestName != DefaultCases()[i].Name {
			t.Errorf("result %d name = %q, want %q", i, r.TestName, DefaultCases()[i].Name)
		}
		if r.Success && (r.Response == nil || r.Error != "") {
			t.Errorf("success result %d malformed: %+v", i, r)
		}
		if !r.Success && (r.Response != nil || r.Error == "") {
			t.Errorf("failure result %d malformed: %+v", i, r)
		}
	}
}

func TestRunNeverAborts(t *testing.T) {
	c := &patternCompleter{failAt: map[int]error{
		0: errors.New("a"), 1: errors.New("b"), 2: errors.New("c"),
		3: errors.New("d"), 4: errors.New("e"),
	}}

	results := newRunner(c).Run(context.Background(), DefaultCases())
	if len(results) != 5 {
		t.Fatalf("got %d results after all failures, want 5", len(results))
	}
	if c.calls != 5 {
		t.Errorf("completer called %d times, want 5", c.calls)
	}
	if s := Summarize(results); s.Failed != 5 || s.AvgTime != 0 {
		t.Errorf("summary = %+v, want 5 failures and zero avg time", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Successful != 0 || s.Failed != 0 || s.AvgTime != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero value", s)
	}
}

func TestDefaultCases(t *testing.T) {
	cases := DefaultCases()
	if len(cases) != 5 {
		t.Fatalf("got %d cases, want 5", len(cases))
	}
	for i, c := range cases {
		if c.Name == "" || c.Prompt == "" {
			t.Errorf("case %d has empty fields: %+v", i, c)
		}
		if c.Settings.Temperature < settings.MinTemperature || c.Settings.Temperature > settings.MaxTemperature {
			t.Errorf("case %d temperature %v out of range", i, c.Settings.Temperature)
		}
		if c.Settings.MaxTokens < settings.MinMaxTokens || c.Settings.MaxTokens > settings.MaxMaxTokens {
			t.Errorf("case %d max tokens %v out of range", i, c.Settings.MaxTokens)
		}
	}
}

func TestResultsFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	got := ResultsFilename(ts)
	want := "experiment_results_20260830_140509.json"
	if got != want {
		t.Errorf("ResultsFilename = %q, want %q", got, want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	response := "a generated story"
	results := []Result{
		{
			TestName:  "Creative Story",
			Prompt:    "Once upon a time...",
			Response:  &response,
			Settings:  settings.Settings{Temperature: 0.8, MaxTokens: 200},
			TimeTaken: 1.42,
			Success:   true,
		},
		{
			TestName:  "Poetry",
			Prompt:    "Write a haiku about the ocean.",
			Response:  nil,
			Settings:  settings.Settings{Temperature: 0.9, MaxTokens: 100},
			TimeTaken: 0.31,
			Success:   false,
			Error:     "API error: 429",
		},
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := Save(path, results); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading results file: %v", err)
	}

	var loaded []Result
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if !reflect.DeepEqual(results, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, results)
	}

	// Wire keys are the documented ones.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"test_name", "prompt", "response", "settings", "time_taken", "success"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("serialized result missing key %q", key)
		}
	}
	settingsObj := raw[0]["settings"].(map[string]any)
	if settingsObj["temperature"] != 0.8 || settingsObj["max_tokens"] != float64(200) {
		t.Errorf("settings keys wrong: %v", settingsObj)
	}
	if raw[1]["response"] != nil {
		t.Errorf("failed result response = %v, want null", raw[1]["response"])
	}
	if _, ok := raw[0]["error"]; ok {
		t.Error("success result should omit the error key")
	}
}

func TestSaveFailureReported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "dir", "out.json"), []Result{})
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestPreview(t *testing.T) {
	short := "short response"
	if got := preview(short, 100); got != short {
		t.Errorf("preview(%q) = %q, want unchanged", short, got)
	}

	long := strings.Repeat("é", 150)
	got := preview(long, 100)
	if !utf8.ValidString(got) {
		t.Errorf("preview produced invalid UTF-8: %q", got)
	}
	if want := strings.Repeat("é", 100) + "..."; got != want {
		t.Errorf("preview = %q, want 100 characters plus ellipsis", got)
	}
}

func TestPrintDetailsCountsCharacters(t *testing.T) {
	// 40 characters but 80 bytes; the length report and the quality note
	// both go by characters.
	response := strings.Repeat("é", 40)
	results := []Result{
		{TestName: "accented", Prompt: "p", Response: &response, Settings: settings.Default(), TimeTaken: 1.0, Success: true},
	}

	var out strings.Builder
	PrintDetails(&out, results)
	got := out.String()

	if !strings.Contains(got, "Response length: 40 characters") {
		t.Errorf("detail report counts bytes, not characters:\n%s", got)
	}
	if !strings.Contains(got, "Note: Response length looks good") {
		t.Errorf("quality note not based on character count:\n%s", got)
	}
}

func TestPrintReports(t *testing.T) {
	response := strings.Repeat("x", 50)
	results := []Result{
		{TestName: "ok case", Prompt: "p", Response: &response, Settings: settings.Default(), TimeTaken: 1.5, Success: true},
		{TestName: "bad case", Prompt: "p", Success: false, Error: "API error: 500"},
	}

	var out strings.Builder
	PrintSummary(&out, results)
	PrintDetails(&out, results)
	got := out.String()

	for _, want := range []string{
		"EXPERIMENT RESULTS",
		"Total tests: 2",
		"Successful: 1",
		"Failed: 1",
		"Average response time: 1.50s",
		"1. ok case",
		"Response length: 50 characters",
		"Note: Response length looks good",
		"2. bad case",
		"Error: API error: 500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
