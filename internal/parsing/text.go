// Package parsing turns raw model responses into structured character data.
// Class parsing is strict and returns a ParseError when the response cannot
// be validated; adventure guide parsing never fails and degrades to a
// placeholder guide instead.
package parsing

import "strings"

// CleanResponseText normalizes a short free-text model response such as a
// generated name: quotes are stripped, a single trailing period is removed,
// and surrounding whitespace is trimmed.
func CleanResponseText(text string) string {
	text = strings.ReplaceAll(text, `"`, "")
	text = strings.ReplaceAll(text, "'", "")
	text = strings.TrimSpace(text)
	return strings.TrimSuffix(text, ".")
}

// ExtractJSON returns the outermost brace-delimited span of text, or "" when
// no JSON object is present. Models frequently wrap JSON in prose or
// markdown fences; everything outside the braces is discarded.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}
