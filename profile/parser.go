package profile

import (
	"errors"
	"strings"
)

// Parse failure modes. Callers that treat any failure as "no profile" can
// just check the error for nil; the sentinels exist for log messages and
// tests.
var (
	// ErrNoFrontmatter signals a document that does not open with a `---`
	// fence.
	ErrNoFrontmatter = errors.New("profile document has no frontmatter fence")
	// ErrUnterminatedFrontmatter signals an opening fence with no closing
	// fence.
	ErrUnterminatedFrontmatter = errors.New("profile frontmatter is not terminated")
	// ErrMissingName signals frontmatter without the mandatory name field.
	ErrMissingName = errors.New("profile frontmatter has no name field")
)

// Profile is a named agent configuration parsed from a markdown document.
type Profile struct {
	// Name uniquely identifies the profile within one load.
	Name string
	// Description feeds the router's keyword matching.
	Description string
	// Tools lists the tool names this agent is allowed to use. Empty means
	// no restriction is expressed by the profile.
	Tools []string
	// ModelPreference names the desired backend tier, e.g. "default",
	// "fast" or "powerful".
	ModelPreference string
	// SystemPrompt is the markdown body after the frontmatter, trimmed.
	SystemPrompt string
}

// Parse reads a markdown document with a frontmatter block into a Profile.
//
// The format is deliberately narrow: single-line `key: value` fields only,
// no multiline values, no quoted values containing colons. Recognized keys
// are name (mandatory), description, model and tools (an inline bracketed
// list like `["read_file", "list_dir"]`). Unrecognized keys are ignored.
func Parse(content string) (*Profile, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "---") {
		return nil, ErrNoFrontmatter
	}

	rest := content[3:]
	end := strings.Index(rest, "---")
	if end < 0 {
		return nil, ErrUnterminatedFrontmatter
	}
	frontmatter := strings.TrimSpace(rest[:end])
	body := strings.TrimSpace(rest[end+3:])

	p := Profile{ModelPreference: "default", SystemPrompt: body}
	nameSeen := false

	for _, line := range strings.Split(frontmatter, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "name:"):
			p.Name = strings.TrimSpace(strings.TrimPrefix(line, "name:"))
			nameSeen = true
		case strings.HasPrefix(line, "description:"):
			p.Description = strings.TrimSpace(strings.TrimPrefix(line, "description:"))
		case strings.HasPrefix(line, "model:"):
			p.ModelPreference = strings.TrimSpace(strings.TrimPrefix(line, "model:"))
		case strings.HasPrefix(line, "tools:"):
			p.Tools = parseStringList(strings.TrimSpace(strings.TrimPrefix(line, "tools:")))
		}
	}

	if !nameSeen {
		return nil, ErrMissingName
	}
	return &p, nil
}

// parseStringList reads an inline bracketed list such as `["a", 'b', c]`.
// Malformed entries collapse to empty strings and are dropped rather than
// failing the parse.
func parseStringList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		item = strings.Trim(item, `"`)
		item = strings.Trim(item, `'`)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
