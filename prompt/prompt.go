// Package prompt validates user prompts before they are sent to the API.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest prompt accepted, in characters.
const MaxLength = 2000

// Examples are the canned prompts the interactive shell offers by number.
var Examples = []string{
	"Once upon a time, there was a robot who...",
	"Explain photosynthesis to a 10-year-old.",
	"Write a haiku about the ocean.",
	"What are the benefits of renewable energy?",
	"Explain recursion like I'm five.",
}

// Validate checks a candidate prompt. It returns false with a user-facing
// message for empty/whitespace-only prompts and prompts over MaxLength.
// Accepted prompts are passed through untouched, no trimming.
func Validate(p string) (bool, string) {
	if strings.TrimSpace(p) == "" {
		return false, "Please enter something."
	}
	if utf8.RuneCountInString(p) > MaxLength {
		return false, fmt.Sprintf("That's too long. Keep it under %d characters.", MaxLength)
	}
	return true, ""
}

// ExampleByToken resolves a numeric token ("1".."5") to the matching example
// prompt. The second return is false when the token is not a valid 1-based
// example index.
func ExampleByToken(token string) (string, bool) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > len(Examples) {
		return "", false
	}
	return Examples[n-1], true
}
