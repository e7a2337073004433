// Package parser turns raw user input and Markdown file content into
// structured journal and todo entries. Parsing never fails a whole file for
// one bad block: errors accumulate next to the entries that did parse.
package parser

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`(?:^|\s)@([A-Za-z0-9_-]+)`)

// ExtractTags collects @tags from text, lowercased and deduplicated in
// order of first appearance. Tags are a derived property of the rendered
// text: they are recomputed on every parse, never stored separately.
func ExtractTags(text string) []string {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Tags extracts the tags of an entry from its title and body together.
func Tags(title, body string) []string {
	return ExtractTags(tagSource(title, body))
}

// tagSource joins title and body into the text tags are scanned from.
func tagSource(title, body string) string {
	if body == "" {
		return title
	}
	return title + "\n" + body
}
