// Package settings holds the generation parameters sent with every
// completion request and the logic for resolving them from user input.
//
// Resolution follows a clamp-or-default policy: blank, unparseable, or
// out-of-range input silently falls back to the default value. This is a
// deliberate property of the tool, not error swallowing, so it is expressed
// as pure functions rather than recovered parse failures.
package settings

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultTemperature is used when temperature input is blank or invalid.
	DefaultTemperature = 0.7
	// DefaultMaxTokens is used when max-tokens input is blank or invalid.
	DefaultMaxTokens = 200

	MinTemperature = 0.1
	MaxTemperature = 1.5
	MinMaxTokens   = 50
	MaxMaxTokens   = 500
)

// Settings are the generation parameters for a single completion request.
// A Settings value is immutable once produced; the shell replaces it
// wholesale when the user re-runs the resolver.
type Settings struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Default returns the fallback settings.
func Default() Settings {
	return Settings{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// ResolveTemperature parses raw as a temperature. Blank, unparseable, or
// out-of-range input yields DefaultTemperature.
func ResolveTemperature(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTemperature
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || t < MinTemperature || t > MaxTemperature {
		return DefaultTemperature
	}
	return t
}

// ResolveMaxTokens parses raw as a max-tokens count. Blank, unparseable, or
// out-of-range input yields DefaultMaxTokens.
func ResolveMaxTokens(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultMaxTokens
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < MinMaxTokens || n > MaxMaxTokens {
		return DefaultMaxTokens
	}
	return n
}

// Resolve prompts for both fields on out and reads answers via readLine.
// The two fields resolve independently; a bad value in one does not affect
// the other.
func Resolve(out io.Writer, readLine func() string) Settings {
	fmt.Fprintln(out, "\nSettings (press Enter for defaults):")

	fmt.Fprintf(out, "Creativity (%.1f-%.1f, default %.1f): ", MinTemperature, MaxTemperature, DefaultTemperature)
	temperature := ResolveTemperature(readLine())

	fmt.Fprintf(out, "Response length (%d-%d, default %d): ", MinMaxTokens, MaxMaxTokens, DefaultMaxTokens)
	maxTokens := ResolveMaxTokens(readLine())

	return Settings{
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
