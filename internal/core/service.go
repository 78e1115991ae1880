package core

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TextSanitizer normalizes inbound text before analysis
type TextSanitizer interface {
	ProcessText(text string, maxSize int) string
}

// AnalyzerService runs the phishing risk-analysis pipeline. It is stateless;
// every call is an independent request-scoped computation.
type AnalyzerService struct {
	parser        EmailParser
	extractor     URLExtractor
	scorer        URLScorer
	homographs    HomographDetector
	authenticator DomainAuthenticator
	sanitizer     TextSanitizer
	maxEmailBytes int
	logger        *zap.Logger
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(
	parser EmailParser,
	extractor URLExtractor,
	scorer URLScorer,
	homographs HomographDetector,
	authenticator DomainAuthenticator,
	sanitizer TextSanitizer,
	maxEmailBytes int,
	logger *zap.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		parser:        parser,
		extractor:     extractor,
		scorer:        scorer,
		homographs:    homographs,
		authenticator: authenticator,
		sanitizer:     sanitizer,
		maxEmailBytes: maxEmailBytes,
		logger:        logger,
	}
}

// AnalyzeEmail runs the full pipeline on raw email text and returns the
// analysis record. Sub-check failures degrade into the result; only invalid
// input produces an error.
func (s *AnalyzerService) AnalyzeEmail(ctx context.Context, raw string) (*AnalysisResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyEmail
	}
	if s.sanitizer != nil {
		raw = s.sanitizer.ProcessText(raw, s.maxEmailBytes)
	}

	parsed := s.parser.Parse(raw)
	urls := s.extractor.Extract(raw)

	var (
		batch      URLBatch
		homographs []HomographFinding
		auth       *AuthenticationResult
	)

	// The three signal stages are independent; each writes its own slot and
	// Wait is the barrier before aggregation.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		batch = s.scorer.Score(urls)
		return nil
	})
	g.Go(func() error {
		homographs = s.homographs.Detect(urls)
		return nil
	})
	g.Go(func() error {
		auth = s.authenticator.Check(gctx, parsed.FromDomain)
		return nil
	})
	_ = g.Wait()

	score, level, indicators := AggregateRisk(auth, batch, homographs)
	recommendations := BuildRecommendations(score, auth, batch, homographs)

	s.logger.Info("Analyzed email",
		zap.String("sender_domain", parsed.FromDomain),
		zap.Int("risk_score", score),
		zap.String("risk_level", string(level)),
		zap.Int("urls", len(urls)),
		zap.Int("suspicious_urls", len(batch.Suspicious)),
		zap.Int("homographs", len(homographs)))

	return &AnalysisResult{
		Timestamp:       time.Now(),
		RiskScore:       score,
		RiskLevel:       level,
		SPFResult:       auth.SPF,
		DKIMResult:      auth.DKIM,
		DomainAgeDays:   auth.DomainAgeDays,
		SuspiciousURLs:  batch.Suspicious,
		URLFindings:     batch.Findings,
		Homographs:      homographs,
		Indicators:      indicators,
		Recommendations: recommendations,
		EmailData: EmailSummary{
			From:      parsed.From,
			Subject:   parsed.Subject,
			Timestamp: parsed.Date,
		},
	}, nil
}

// CheckHomographs runs homograph detection on a caller-supplied URL list
func (s *AnalyzerService) CheckHomographs(urls []string) ([]HomographFinding, error) {
	if urls == nil {
		return nil, ErrNoURLs
	}
	return s.homographs.Detect(urls), nil
}

// CheckDomainAuthentication runs the SPF/DKIM checks for a single domain
func (s *AnalyzerService) CheckDomainAuthentication(ctx context.Context, domain string) (*AuthenticationResult, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, ErrEmptyDomain
	}
	return s.authenticator.Check(ctx, domain), nil
}
