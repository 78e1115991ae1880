package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/navneetjaguri/phishing-detection-portal/internal/config"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/factory"
	"github.com/navneetjaguri/phishing-detection-portal/internal/logging"
	"github.com/navneetjaguri/phishing-detection-portal/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewPipelineFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register pipeline stages
	if err := container.Provide(func(f *factory.PipelineFactory) core.EmailParser {
		return f.CreateParser()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.PipelineFactory) core.URLExtractor {
		return f.CreateExtractor()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.PipelineFactory) (core.URLScorer, error) {
		return f.CreateScorer()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.PipelineFactory) core.HomographDetector {
		return f.CreateHomographDetector()
	}); err != nil {
		return nil, err
	}

	// Register auth cache (nil when disabled)
	if err := container.Provide(func(f *factory.CacheFactory) (core.AuthCacheRepository, error) {
		if !f.IsCacheEnabled() {
			return nil, nil
		}
		return f.CreateAuthCache()
	}); err != nil {
		return nil, err
	}

	// Register domain authenticator
	if err := container.Provide(func(
		pf *factory.PipelineFactory,
		cf *factory.CacheFactory,
		authCache core.AuthCacheRepository,
	) (core.DomainAuthenticator, error) {
		resolver, err := pf.CreateTXTResolver()
		if err != nil {
			return nil, err
		}
		ageResolver, err := pf.CreateAgeResolver()
		if err != nil {
			return nil, err
		}
		cacheTTL, err := cf.GetCacheTTL()
		if err != nil {
			return nil, err
		}
		return pf.CreateAuthenticator(resolver, ageResolver, authCache, cf.IsCacheEnabled(), cacheTTL), nil
	}); err != nil {
		return nil, err
	}

	// Register text sanitizer
	if err := container.Provide(func(f *factory.TextProcessorFactory) core.TextSanitizer {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register analyzer service
	if err := container.Provide(func(
		cfg *config.Config,
		logger *zap.Logger,
		emailParser core.EmailParser,
		extractor core.URLExtractor,
		scorer core.URLScorer,
		homographs core.HomographDetector,
		authenticator core.DomainAuthenticator,
		sanitizer core.TextSanitizer,
	) *core.AnalyzerService {
		return core.NewAnalyzerService(
			emailParser,
			extractor,
			scorer,
			homographs,
			authenticator,
			sanitizer,
			cfg.GetInt("analysis.max_email_bytes"),
			logger,
		)
	}); err != nil {
		return nil, err
	}

	// Register transport
	if err := container.Provide(factory.NewTransportFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.TransportFactory) (ports.Transport, error) {
		return f.CreateTransport()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
