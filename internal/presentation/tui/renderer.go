package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Style is detected from the terminal background; width 0 disables wrapping.
func NewRenderer(width int) func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}

// TypeMarkdown documents an object type: its name as a heading, the
// description, and the schema (if any) as a YAML code block.
func TypeMarkdown(name, description string, schemaYAML []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)
	if description != "" {
		sb.WriteString(description)
		sb.WriteString("\n\n")
	}
	if len(schemaYAML) == 0 {
		sb.WriteString("_Normalized in code; no declarative schema._\n")
		return sb.String()
	}
	sb.WriteString("## Schema\n\n```yaml\n")
	sb.Write(schemaYAML)
	if !strings.HasSuffix(string(schemaYAML), "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString("```\n")
	return sb.String()
}
