package factory

import (
	"fmt"
	"time"

	"github.com/navneetjaguri/phishing-detection-portal/internal/adapters/dnsx"
	"github.com/navneetjaguri/phishing-detection-portal/internal/adapters/domainage"
	"github.com/navneetjaguri/phishing-detection-portal/internal/auth"
	"github.com/navneetjaguri/phishing-detection-portal/internal/config"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/homograph"
	"github.com/navneetjaguri/phishing-detection-portal/internal/parser"
	"github.com/navneetjaguri/phishing-detection-portal/internal/urlscan"
	"go.uber.org/zap"
)

// PipelineFactory creates the pipeline stages from configuration
type PipelineFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewPipelineFactory creates a new pipeline factory
func NewPipelineFactory(cfg *config.Config, logger *zap.Logger) *PipelineFactory {
	return &PipelineFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateParser creates the email parser
func (f *PipelineFactory) CreateParser() core.EmailParser {
	return parser.New()
}

// CreateExtractor creates the URL extractor
func (f *PipelineFactory) CreateExtractor() core.URLExtractor {
	return urlscan.NewExtractor()
}

// CreateScorer creates the URL risk scorer from the configured rule tables
func (f *PipelineFactory) CreateScorer() (core.URLScorer, error) {
	urlCfg := f.cfg.GetURLScan()
	return urlscan.NewScorer(urlscan.ScorerConfig{
		Shorteners:     urlCfg.Shorteners,
		SuspiciousTLDs: urlCfg.SuspiciousTLDs,
		HostPatterns:   urlCfg.HostPatterns,
	}, f.logger)
}

// CreateHomographDetector creates the homograph detector from the configured brand list
func (f *PipelineFactory) CreateHomographDetector() core.HomographDetector {
	return homograph.NewDetector(f.cfg.GetHomograph().BrandDomains, f.logger)
}

// CreateTXTResolver creates the DNS TXT resolver
func (f *PipelineFactory) CreateTXTResolver() (core.TXTResolver, error) {
	dnsCfg := f.cfg.GetDNS()
	timeout, err := time.ParseDuration(dnsCfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid DNS timeout: %w", err)
	}
	return dnsx.NewResolver(dnsCfg.Servers, timeout, f.logger), nil
}

// CreateAgeResolver creates the domain-age resolver. The placeholder resolver
// stays the default; the WHOIS resolver is an opt-in for real registration
// recency.
func (f *PipelineFactory) CreateAgeResolver() (core.DomainAgeResolver, error) {
	switch resolver := f.cfg.GetString("age.resolver"); resolver {
	case "placeholder":
		created, err := time.Parse("2006-01-02", f.cfg.GetString("age.placeholder_created"))
		if err != nil {
			return nil, fmt.Errorf("invalid placeholder creation date: %w", err)
		}
		return domainage.NewPlaceholderResolver(created), nil
	case "whois":
		return domainage.NewWhoisResolver(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported age resolver: %s", resolver)
	}
}

// CreateAuthenticator creates the domain authenticator. authCache may be nil
// when caching is disabled.
func (f *PipelineFactory) CreateAuthenticator(
	resolver core.TXTResolver,
	ageResolver core.DomainAgeResolver,
	authCache core.AuthCacheRepository,
	cacheEnabled bool,
	cacheTTL time.Duration,
) core.DomainAuthenticator {
	return auth.NewAuthenticator(
		resolver,
		ageResolver,
		authCache,
		f.cfg.GetAuth().DKIMSelectors,
		cacheEnabled,
		cacheTTL,
		f.logger,
	)
}
