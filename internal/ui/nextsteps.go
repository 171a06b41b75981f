package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NextSteps builds the post-generation help text for a project.
func NextSteps(projectName string, typescript, installed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Next steps\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", projectName)
	fmt.Fprintf(&b, "2. `cp .env.example .env` and adjust the values\n")
	step := 3
	if !installed {
		fmt.Fprintf(&b, "%d. `npm install`\n", step)
		step++
	}
	fmt.Fprintf(&b, "%d. `npm run dev`\n", step)
	if typescript {
		fmt.Fprintf(&b, "\nBuild for production with `npm run build`.\n")
	}
	fmt.Fprintf(&b, "\nHealth check: `curl http://localhost:3000/api/v1/health`\n")
	return b.String()
}

// RenderNextSteps renders the next-steps markdown for the terminal. It
// falls back to the raw markdown when rendering fails or color is
// disabled.
func (t *Theme) RenderNextSteps(markdown string) string {
	if t.NoColor {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
