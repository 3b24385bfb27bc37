package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinContentLength is the trimmed rune count ValidateContent requires.
const MinContentLength = 10

var variablePattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// ExtractVariables returns the placeholder names found in content, in order
// of first appearance and without duplicates. Placeholders are never
// substituted.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	vars := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}

	return vars
}

// ValidateContent reports whether content carries enough non-whitespace text
// to be a usable prompt.
func ValidateContent(content string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(content)) >= MinContentLength
}
