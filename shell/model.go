package shell

import (
	"fmt"
	"io"
	"strings"
)

// ModelChoice is one entry in the interactive model menu.
type ModelChoice struct {
	ID   string
	Name string
}

// ModelChoices are the models offered by the picker, in menu order.
var ModelChoices = []ModelChoice{
	{"meta-llama/llama-3.2-3b-instruct:free", "Llama 3.2 (Free)"},
	{"microsoft/phi-3-mini-128k-instruct:free", "Phi-3 Mini (Free)"},
	{"google/gemma-2-9b-it:free", "Gemma 2 (Free)"},
	{"openai/gpt-3.5-turbo", "GPT-3.5 (Cheap)"},
}

// ChooseModel prints the model menu and returns the selected model id.
// Anything other than a valid menu number selects the first entry.
func ChooseModel(out io.Writer, readLine func() string) string {
	fmt.Fprintln(out, "\nPick a model:")
	for i, choice := range ModelChoices {
		fmt.Fprintf(out, "%d. %s\n", i+1, choice.Name)
	}
	fmt.Fprintf(out, "\nWhich one? (1-%d, default 1): ", len(ModelChoices))

	input := strings.TrimSpace(readLine())
	for i, choice := range ModelChoices {
		if input == fmt.Sprintf("%d", i+1) {
			fmt.Fprintf(out, "Selected: %s\n", choice.Name)
			return choice.ID
		}
	}
	return ModelChoices[0].ID
}
