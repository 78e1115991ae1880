package urlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFindsURLsInOrder(t *testing.T) {
	e := NewExtractor()
	text := "Visit https://example.com/login first, then http://other.org/path?q=1 too"

	urls := e.Extract(text)

	assert.Equal(t, []string{"https://example.com/login", "http://other.org/path?q=1"}, urls)
}

func TestExtractKeepsDuplicates(t *testing.T) {
	// Duplicate occurrences are scored independently downstream, so the
	// extractor must not deduplicate.
	e := NewExtractor()
	text := "http://evil.tk/a and again http://evil.tk/a"

	urls := e.Extract(text)

	assert.Equal(t, []string{"http://evil.tk/a", "http://evil.tk/a"}, urls)
}

func TestExtractNoMatches(t *testing.T) {
	e := NewExtractor()

	urls := e.Extract("no links in this text")

	assert.NotNil(t, urls)
	assert.Empty(t, urls)
}

func TestExtractWWWPrefix(t *testing.T) {
	e := NewExtractor()

	urls := e.Extract("see https://www.example.com/page")

	assert.Equal(t, []string{"https://www.example.com/page"}, urls)
}
