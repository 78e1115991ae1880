package factory

import (
	"fmt"

	"github.com/navneetjaguri/phishing-detection-portal/internal/adapters/httpapi"
	"github.com/navneetjaguri/phishing-detection-portal/internal/adapters/smtpgw"
	"github.com/navneetjaguri/phishing-detection-portal/internal/config"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/ports"
	"go.uber.org/zap"
)

// TransportFactory creates the serving transport based on configuration
type TransportFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.AnalyzerService
}

// NewTransportFactory creates a new transport factory
func NewTransportFactory(cfg *config.Config, logger *zap.Logger, service *core.AnalyzerService) *TransportFactory {
	return &TransportFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateTransport creates a transport based on the configuration
func (f *TransportFactory) CreateTransport() (ports.Transport, error) {
	transport := f.cfg.GetString("server.transport")

	switch transport {
	case "http":
		shutdownTimeout, err := f.cfg.GetDuration("server.shutdown_timeout")
		if err != nil {
			return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
		}
		return httpapi.NewServer(
			f.service,
			f.logger,
			f.cfg.GetString("server.listen_address"),
			shutdownTimeout,
		), nil
	case "smtp":
		return smtpgw.NewGateway(
			f.service,
			f.logger,
			f.cfg.GetString("smtp.listen_address"),
			f.cfg.GetString("smtp.upstream.address"),
			f.cfg.GetInt("smtp.upstream.port"),
			f.cfg.GetBool("smtp.upstream.enabled"),
			f.cfg.GetBool("smtp.block_high_risk"),
			f.cfg.GetString("smtp.headers.score"),
			f.cfg.GetString("smtp.headers.risk"),
			f.cfg.GetString("smtp.headers.flagged"),
		), nil
	default:
		return nil, fmt.Errorf("unsupported transport: %s", transport)
	}
}
