package collator

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// stripFrontMatter removes a leading front matter block (YAML or TOML
// delimited) from content. Content without front matter passes through
// unchanged. A malformed block returns an error so the caller can keep the
// original text and record a warning instead of failing the collation.
func stripFrontMatter(content string) (string, error) {
	var meta map[string]any

	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content, err
	}

	// Drop the blank left behind by the closing delimiter line.
	return strings.TrimLeft(string(body), "\r\n"), nil
}
