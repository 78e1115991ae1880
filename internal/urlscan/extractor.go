package urlscan

import (
	"regexp"
)

var urlPattern = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)`)

// Extractor scans raw text for URL-shaped substrings. Matches come back in
// order of appearance with duplicates preserved; each occurrence is scored
// independently downstream.
type Extractor struct{}

// NewExtractor creates a new URL extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns every URL match in the text
func (e *Extractor) Extract(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
