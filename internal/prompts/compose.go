package prompts

import (
	"fmt"
	"strings"
)

// Section is a titled payload block appended to a composed prompt,
// such as the email content or the retrieved context.
type Section struct {
	Title string
	Body  string
}

// Compose builds the full prompt for an inference stage: instructions,
// response-format spec, then each payload section under its title.
func Compose(stage Stage, sections ...Section) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	for _, s := range sections {
		sb.WriteString("\n\n## ")
		sb.WriteString(s.Title)
		sb.WriteString("\n\n")
		sb.WriteString(s.Body)
	}

	return sb.String(), nil
}
