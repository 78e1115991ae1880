package domainage

import (
	"context"
	"time"
)

// PlaceholderResolver computes the domain age from a fixed creation date.
// It stands in for a real registry-backed resolver; swap in the WHOIS
// resolver for genuine registration recency.
type PlaceholderResolver struct {
	created time.Time
}

// NewPlaceholderResolver creates a resolver that pretends every domain was
// created on the given date
func NewPlaceholderResolver(created time.Time) *PlaceholderResolver {
	return &PlaceholderResolver{created: created}
}

// AgeInDays returns the days elapsed since the fixed creation date
func (r *PlaceholderResolver) AgeInDays(_ context.Context, _ string) (int, error) {
	return int(time.Since(r.created).Hours() / 24), nil
}
