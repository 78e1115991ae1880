package auth

import (
	"context"
	"strings"
	"time"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const spfRecordPrefix = "v=spf1"

// Authenticator evaluates SPF and DKIM for a sender domain via DNS TXT
// lookups and attaches a domain-age estimate. Lookup failures are folded into
// the result as pass=false with a diagnostic; Check never fails.
type Authenticator struct {
	resolver     core.TXTResolver
	ageResolver  core.DomainAgeResolver
	cache        core.AuthCacheRepository
	selectors    []string
	cacheEnabled bool
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewAuthenticator creates a new domain authenticator. cache may be nil when
// caching is disabled.
func NewAuthenticator(
	resolver core.TXTResolver,
	ageResolver core.DomainAgeResolver,
	cache core.AuthCacheRepository,
	selectors []string,
	cacheEnabled bool,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Authenticator {
	return &Authenticator{
		resolver:     resolver,
		ageResolver:  ageResolver,
		cache:        cache,
		selectors:    selectors,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Check evaluates SPF, DKIM and domain age for the given domain. An empty
// domain short-circuits to pass=false without any network call.
func (a *Authenticator) Check(ctx context.Context, domain string) *core.AuthenticationResult {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return &core.AuthenticationResult{
			SPF:  core.SPFResult{Pass: false},
			DKIM: core.DKIMResult{Pass: false},
		}
	}

	if a.cacheEnabled && a.cache != nil {
		if entry, err := a.cache.Get(ctx, domain); err == nil {
			a.logger.Debug("Authentication cache hit", zap.String("domain", domain))
			result := entry.Result
			return &result
		}
	}

	result := &core.AuthenticationResult{}

	// SPF and DKIM are independent lookups for the same domain.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.SPF = a.checkSPF(gctx, domain)
		return nil
	})
	g.Go(func() error {
		result.DKIM = a.checkDKIM(gctx, domain)
		return nil
	})
	_ = g.Wait()

	if age, err := a.ageResolver.AgeInDays(ctx, domain); err == nil {
		result.DomainAgeDays = &age
	} else {
		a.logger.Debug("Domain age lookup failed",
			zap.String("domain", domain),
			zap.Error(err))
	}

	if a.cacheEnabled && a.cache != nil {
		entry := &core.AuthCacheEntry{
			Domain:    domain,
			Result:    *result,
			CachedAt:  time.Now(),
			ExpiresAt: time.Now().Add(a.cacheTTL),
		}
		if err := a.cache.Set(ctx, entry); err != nil {
			a.logger.Error("Failed to cache authentication result", zap.Error(err))
		}
	}

	return result
}

// checkSPF declares a pass when any TXT record on the domain starts with
// "v=spf1". Lookup failure degrades to pass=false with the error captured.
func (a *Authenticator) checkSPF(ctx context.Context, domain string) core.SPFResult {
	records, err := a.resolver.LookupTXT(ctx, domain)
	if err != nil {
		return core.SPFResult{
			Pass:   false,
			Status: "SPF lookup failed",
			Error:  err.Error(),
		}
	}

	for _, record := range records {
		if strings.HasPrefix(record, spfRecordPrefix) {
			return core.SPFResult{
				Pass:   true,
				Status: "SPF record found",
				Record: record,
			}
		}
	}

	return core.SPFResult{
		Pass:   false,
		Status: "No SPF record found",
	}
}

// checkDKIM probes the selector list in order against
// <selector>._domainkey.<domain>; the first selector returning any record is
// a pass. Per-selector failures are skipped so one missing selector does not
// abort the scan.
func (a *Authenticator) checkDKIM(ctx context.Context, domain string) core.DKIMResult {
	for _, selector := range a.selectors {
		name := selector + "._domainkey." + domain
		records, err := a.resolver.LookupTXT(ctx, name)
		if err != nil {
			continue
		}
		if len(records) > 0 {
			return core.DKIMResult{
				Pass:     true,
				Status:   "DKIM record found",
				Selector: selector,
			}
		}
	}

	return core.DKIMResult{
		Pass:   false,
		Status: "No DKIM records found",
	}
}
