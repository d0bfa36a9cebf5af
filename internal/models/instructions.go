package models

import (
	"regexp"
	"strings"
)

var (
	scriptPattern = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	linePattern   = regexp.MustCompile(`\r?\n`)
)

// Step is one non-empty line of recipe instructions.
type Step struct {
	Text   string
	Bullet bool // строка начиналась с "- "
}

// ParseInstructions splits free-text instructions into steps.
// Script blocks are stripped and blank lines dropped.
func ParseInstructions(text string) []Step {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	safe := scriptPattern.ReplaceAllString(text, "")

	var steps []Step
	for _, line := range linePattern.Split(safe, -1) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") {
			steps = append(steps, Step{Text: trimmed[2:], Bullet: true})
			continue
		}
		steps = append(steps, Step{Text: line})
	}
	return steps
}
