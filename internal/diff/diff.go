package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff turning oldText into newText.
// It returns an empty string when the texts are equal.
func Unified(oldName, newName, oldText, newText string) string {
	if oldText == newText {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldText, newText)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldText, edits))
}

// Output diffs the file currently at outputPath against the content a build would write.
// A missing output file is treated as empty.
func Output(outputPath, newContent string) (string, error) {
	oldContent, err := os.ReadFile(outputPath)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}

	name := filepath.Base(outputPath)
	return Unified(name+" (current)", name+" (new)", string(oldContent), newContent), nil
}

// Render formats a unified diff for the terminal
func Render(unified string) string {
	if unified == "" {
		return ""
	}

	// Wrap in diff code fence for proper syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown
	}

	return rendered
}
