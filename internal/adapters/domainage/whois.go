package domainage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"go.uber.org/zap"
)

var createdDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// WhoisResolver estimates domain age from WHOIS registration data. For
// subdomains whose WHOIS record does not parse, it retries the parent domain.
type WhoisResolver struct {
	logger *zap.Logger
}

// NewWhoisResolver creates a WHOIS-backed age resolver
func NewWhoisResolver(logger *zap.Logger) *WhoisResolver {
	return &WhoisResolver{logger: logger}
}

// AgeInDays returns the days since the domain's WHOIS creation date
func (r *WhoisResolver) AgeInDays(ctx context.Context, domain string) (int, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return 0, fmt.Errorf("whois query for %s failed: %w", domain, err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil || parsed.Domain == nil {
		// Subdomains often have no record of their own; try the parent.
		parts := strings.Split(domain, ".")
		if len(parts) > 2 {
			return r.AgeInDays(ctx, strings.Join(parts[1:], "."))
		}
		return 0, fmt.Errorf("whois record for %s did not parse", domain)
	}

	createdStr := strings.TrimSpace(parsed.Domain.CreatedDate)
	var created time.Time
	for _, layout := range createdDateLayouts {
		if t, err := time.Parse(layout, createdStr); err == nil {
			created = t
			break
		}
	}
	if created.IsZero() {
		return 0, fmt.Errorf("whois record for %s has no usable creation date", domain)
	}

	age := int(time.Since(created).Hours() / 24)
	r.logger.Debug("Resolved domain age from WHOIS",
		zap.String("domain", domain),
		zap.Int("age_days", age))
	return age, nil
}
