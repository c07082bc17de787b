// The ai_text_completion command is an interactive chat loop against the
// OpenRouter completion API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	root "ai_text_completion"
	"ai_text_completion/config"
	"ai_text_completion/display"
	"ai_text_completion/logging"
	"ai_text_completion/session"
	"ai_text_completion/settings"
	"ai_text_completion/shell"
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
	slog.Info("starting", "version", root.Version(), "model", cfg.Model)

	out := os.Stdout
	renderer := display.NewRenderer(out)
	renderer.Welcome()

	if cfg.APIKey == "" {
		fmt.Fprintln(out, "\nYou need an API key.")
		fmt.Fprintln(out, "1. Sign up at https://openrouter.ai")
		fmt.Fprintf(out, "2. Set %s in a .env file\n", config.CredentialEnv)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
	readLineString := func() string {
		line, _ := readLine()
		return line
	}

	model := shell.ChooseModel(out, readLineString)
	fmt.Fprintf(out, "Using: %s\n", model)

	sess, err := session.New(model, cfg.APIKey,
		session.WithTimeout(time.Duration(cfg.APITimeoutSeconds)*time.Second))
	if err != nil {
		renderer.Error(err)
		os.Exit(1)
	}

	fmt.Fprintln(out, "Testing connection...")
	if !sess.Probe(context.Background()) {
		fmt.Fprintln(out, "Can't connect. Check your API key.")
		os.Exit(1)
	}
	fmt.Fprintln(out, "Connected!")

	initial := settings.Resolve(out, readLineString)

	sh := shell.New(sess, model, initial, readLine, out)

	// An interrupt ends the loop with the farewell message.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(out)
		sh.Farewell()
		os.Exit(0)
	}()

	sh.Run(context.Background())
}
