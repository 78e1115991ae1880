package core

import (
	"context"
)

// EmailParser splits raw email text into headers and body
type EmailParser interface {
	Parse(raw string) *ParsedEmail
}

// URLExtractor finds URL-shaped substrings in raw text, in order, duplicates kept
type URLExtractor interface {
	Extract(text string) []string
}

// URLScorer evaluates extracted URLs against heuristic risk rules
type URLScorer interface {
	Score(urls []string) URLBatch
}

// HomographDetector flags visually-deceptive domains among the given URLs
type HomographDetector interface {
	Detect(urls []string) []HomographFinding
}

// DomainAuthenticator evaluates SPF/DKIM and domain age for a sender domain.
// Lookup failures fold into the result; Check never returns an error.
type DomainAuthenticator interface {
	Check(ctx context.Context, domain string) *AuthenticationResult
}

// TXTResolver performs DNS TXT lookups
type TXTResolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// DomainAgeResolver estimates the registration age of a domain in days
type DomainAgeResolver interface {
	AgeInDays(ctx context.Context, domain string) (int, error)
}

// AuthCacheRepository caches authentication results per domain
type AuthCacheRepository interface {
	// Get retrieves a cached entry for a domain
	Get(ctx context.Context, domain string) (*AuthCacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *AuthCacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, domain string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
