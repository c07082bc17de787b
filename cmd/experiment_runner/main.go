// The experiment_runner command runs the fixed five-prompt experiment list
// against the completion API and writes a timestamped JSON result log.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	root "ai_text_completion"
	"ai_text_completion/config"
	"ai_text_completion/display"
	"ai_text_completion/experiment"
	"ai_text_completion/logging"
	"ai_text_completion/session"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(root.VersionInfo())
		return
	}

	cfg, envErr := config.Load()
	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	if envErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", envErr)
		slog.Warn("dotenv_load_failed", "error", envErr)
	}
	slog.Info("starting experiment runner", "version", root.Version(), "model", cfg.Model)

	out := os.Stdout
	fmt.Fprintln(out, "Simple AI Experiment Runner")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintln(out, "This will test 5 different prompts and show the results.")

	fmt.Fprint(out, "\nRun experiments? (y/n): ")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes", "":
	default:
		fmt.Fprintln(out, "Okay, maybe next time!")
		return
	}

	if cfg.APIKey == "" {
		fmt.Fprintf(out, "You need an API key. Set %s first.\n", config.CredentialEnv)
		os.Exit(1)
	}

	fmt.Fprintln(out, "Starting experiments...")

	sess, err := session.New(cfg.Model, cfg.APIKey,
		session.WithTimeout(time.Duration(cfg.APITimeoutSeconds)*time.Second))
	if err != nil {
		fmt.Fprintf(out, "\nError: %s\n", display.Hint(err))
		os.Exit(1)
	}

	runner := experiment.NewRunner(sess, out)
	results := runner.Run(context.Background(), experiment.DefaultCases())

	experiment.PrintSummary(out, results)
	experiment.PrintDetails(out, results)

	// A failed write is reported but the printed results above stand.
	path := experiment.ResultsFilename(time.Now())
	if err := experiment.Save(path, results); err != nil {
		fmt.Fprintf(out, "\nCouldn't save results: %v\n", err)
		slog.Error("results_save_failed", "path", path, "error", err)
	} else {
		fmt.Fprintf(out, "\nResults saved to: %s\n", path)
		slog.Info("results_saved", "path", path, "count", len(results))
	}

	fmt.Fprintln(out, "\nExperiment complete!")
}
