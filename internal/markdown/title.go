package markdown

import (
	"regexp"
	"strings"
)

// titlePattern matches a level 1 heading the same way headings are classified
var titlePattern = regexp.MustCompile(`^#\s+(.*)$`)

// ExtractTitle returns the text of the level 1 heading a document must start with
func ExtractTitle(document string) (string, error) {
	document = strings.TrimLeft(NormalizeNewlines(document), " \t\n")

	firstLine, _, _ := strings.Cut(document, "\n")
	m := titlePattern.FindStringSubmatch(firstLine)
	if m == nil {
		return "", ErrMissingTitle
	}

	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", ErrMissingTitle
	}
	return title, nil
}
