package factory

import (
	"fmt"
	"time"

	"github.com/navneetjaguri/phishing-detection-portal/internal/adapters/cache"
	"github.com/navneetjaguri/phishing-detection-portal/internal/config"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates the authentication result cache
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAuthCache creates the in-memory authentication cache
func (f *CacheFactory) CreateAuthCache() (core.AuthCacheRepository, error) {
	cleanupFreq, err := f.cfg.GetDuration("auth.cache.cleanup_frequency")
	if err != nil {
		return nil, fmt.Errorf("invalid cache cleanup frequency: %w", err)
	}
	return cache.NewMemoryCache(f.logger, cleanupFreq), nil
}

// GetCacheTTL returns the configured cache TTL
func (f *CacheFactory) GetCacheTTL() (time.Duration, error) {
	return f.cfg.GetDuration("auth.cache.ttl")
}

// IsCacheEnabled returns whether auth result caching is enabled
func (f *CacheFactory) IsCacheEnabled() bool {
	return f.cfg.GetBool("auth.cache.enabled")
}
