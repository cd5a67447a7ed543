package site

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// FrontMatter holds the optional YAML header of a page
type FrontMatter struct {
	Title    string `yaml:"title"`
	Draft    bool   `yaml:"draft"`
	Template string `yaml:"template"`
}

// SplitFrontMatter separates a leading YAML front matter block from the page body.
// Documents without front matter are returned unchanged.
func SplitFrontMatter(doc string) (FrontMatter, string, error) {
	var fm FrontMatter

	lines := strings.Split(doc, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return fm, doc, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelim {
			end = i
			break
		}
	}
	if end == -1 {
		return fm, "", fmt.Errorf("front matter is not closed with %s", frontMatterDelim)
	}

	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return fm, "", fmt.Errorf("invalid front matter: %w", err)
	}

	return fm, strings.Join(lines[end+1:], "\n"), nil
}
