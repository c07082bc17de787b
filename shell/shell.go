// Package shell implements the interactive prompt loop. The loop is a small
// state machine: read input, validate it, call the completion session,
// render, repeat. Commands (exit, help, settings, numeric example picks) are
// handled while awaiting input and never reach the session.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"ai_text_completion/display"
	"ai_text_completion/prompt"
	"ai_text_completion/settings"
)

// state is the shell's position in its input/validate/respond cycle.
type state int

const (
	stateAwaitingInput state = iota
	stateValidatingPrompt
	stateAwaitingResponse
)

// Completer is the completion operation the shell drives. *session.Session
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string, s settings.Settings) (string, error)
}

// ReadLineFunc reads one line of user input. The second return is false when
// input is exhausted.
type ReadLineFunc func() (string, bool)

// Shell runs the interactive loop over one completion session.
type Shell struct {
	completer Completer
	model     string
	settings  settings.Settings
	readLine  ReadLineFunc
	out       io.Writer
	renderer  *display.Renderer
}

// New creates a shell. The initial settings are replaced wholesale whenever
// the user runs the settings command.
func New(completer Completer, model string, initial settings.Settings, readLine ReadLineFunc, out io.Writer) *Shell {
	return &Shell{
		completer: completer,
		model:     model,
		settings:  initial,
		readLine:  readLine,
		out:       out,
		renderer:  display.NewRenderer(out),
	}
}

// Run drives the loop until the user exits or input runs out.
func (s *Shell) Run(ctx context.Context) {
	fmt.Fprintln(s.out, "\nReady! Type 'exit' to quit.")
	s.renderer.Examples()

	st := stateAwaitingInput
	var input string

	for {
		switch st {
		case stateAwaitingInput:
			fmt.Fprint(s.out, "\nYour prompt: ")
			line, ok := s.readLine()
			if !ok {
				s.Farewell()
				return
			}
			input = strings.TrimSpace(line)

			switch strings.ToLower(input) {
			case "exit":
				s.Farewell()
				return
			case "help":
				s.renderer.Help()
				continue
			case "settings":
				s.settings = settings.Resolve(s.out, s.readLineString)
				slog.Debug("settings_replaced",
					"temperature", s.settings.Temperature,
					"max_tokens", s.settings.MaxTokens,
				)
				continue
			}

			if example, ok := prompt.ExampleByToken(input); ok {
				input = example
				fmt.Fprintf(s.out, "Using: %s\n", input)
			}
			st = stateValidatingPrompt

		case stateValidatingPrompt:
			if ok, msg := prompt.Validate(input); !ok {
				fmt.Fprintf(s.out, "Error: %s\n", msg)
				st = stateAwaitingInput
				continue
			}
			st = stateAwaitingResponse

		case stateAwaitingResponse:
			fmt.Fprintln(s.out, "\nThinking...")
			text, err := s.completer.Complete(ctx, input, s.settings)
			if err != nil {
				s.renderer.Error(err)
			} else {
				s.renderer.Response(s.model, text)
			}
			st = stateAwaitingInput
		}
	}
}

// Farewell prints the exit message. Also called by the interrupt handler.
func (s *Shell) Farewell() {
	fmt.Fprintln(s.out, "Goodbye!")
}

func (s *Shell) readLineString() string {
	line, _ := s.readLine()
	return line
}
