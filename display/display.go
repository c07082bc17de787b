// Package display renders the terminal output of both binaries: banners,
// response blocks, and user-facing error messages.
package display

import (
	"fmt"
	"io"
	"strings"

	"ai_text_completion/prompt"

	"github.com/fatih/color"
)

// Shared color printers for terminal output.
var (
	colorCyan   = color.New(color.FgCyan, color.Bold)
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
)

const ruleWidth = 50

// Renderer writes formatted output to a single destination.
type Renderer struct {
	Out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Welcome prints the application banner.
func (r *Renderer) Welcome() {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, colorCyan.Sprint(rule))
	fmt.Fprintln(r.Out, colorCyan.Sprint("         AI Text Completion App"))
	fmt.Fprintln(r.Out, colorCyan.Sprint(rule))
}

// Response prints generated text in a bordered block headed by the model
// name.
func (r *Renderer) Response(model, text string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintf(r.Out, "Response from %s:\n", colorGreen.Sprint(model))
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, text)
	fmt.Fprintln(r.Out, rule)
}

// Help prints the recognized shell commands.
func (r *Renderer) Help() {
	fmt.Fprintln(r.Out, "\nCommands: exit, settings, help")
}

// Examples prints the numbered example prompts.
func (r *Renderer) Examples() {
	fmt.Fprintf(r.Out, "\nExample prompts (type 1-%d):\n", len(prompt.Examples))
	for i, example := range prompt.Examples {
		fmt.Fprintf(r.Out, "%d. %s\n", i+1, example)
	}
}

// Error prints a user-facing message for err, chosen from the typed hint
// table.
func (r *Renderer) Error(err error) {
	fmt.Fprintf(r.Out, "\n%s %s\n", colorRed.Sprint("Error:"), Hint(err))
}

// Notice prints an informational line.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.Out, colorYellow.Sprint(msg))
}
