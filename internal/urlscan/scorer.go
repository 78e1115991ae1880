package urlscan

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
)

const (
	scoreSuspiciousPattern = 25
	scoreIPHost            = 30
	scoreShortener         = 15
	scoreSuspiciousTLD     = 10
	scoreExcessiveLabels   = 15
	scoreLongURL           = 10

	maxURLScore         = 100
	suspiciousThreshold = 50

	maxHostLabels = 4
	maxURLLength  = 200
)

var (
	ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	ipv6Pattern = regexp.MustCompile(`^(?i)([0-9a-f]{0,4}:){2,7}[0-9a-f]{0,4}$`)
)

// ScorerConfig holds the immutable heuristic tables for URL scoring
type ScorerConfig struct {
	Shorteners     []string
	SuspiciousTLDs []string
	HostPatterns   []string
}

// Scorer evaluates URLs against independent additive risk rules. A URL too
// malformed to parse is itself an indicator and gets the maximum score.
type Scorer struct {
	shorteners     map[string]struct{}
	suspiciousTLDs []string
	hostPatterns   []*regexp.Regexp
	logger         *zap.Logger
}

// NewScorer creates a new URL risk scorer from the given rule tables
func NewScorer(cfg ScorerConfig, logger *zap.Logger) (*Scorer, error) {
	shorteners := make(map[string]struct{}, len(cfg.Shorteners))
	for _, s := range cfg.Shorteners {
		shorteners[strings.ToLower(s)] = struct{}{}
	}

	patterns := make([]*regexp.Regexp, 0, len(cfg.HostPatterns))
	for _, p := range cfg.HostPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid host pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	return &Scorer{
		shorteners:     shorteners,
		suspiciousTLDs: cfg.SuspiciousTLDs,
		hostPatterns:   patterns,
		logger:         logger,
	}, nil
}

// Score evaluates every URL and returns the findings plus the suspicious subset
func (s *Scorer) Score(urls []string) core.URLBatch {
	batch := core.URLBatch{
		Suspicious: []string{},
		Findings:   make([]core.URLFinding, 0, len(urls)),
	}

	for _, u := range urls {
		finding := s.scoreOne(u)
		batch.Findings = append(batch.Findings, finding)
		if finding.Suspicious {
			batch.Suspicious = append(batch.Suspicious, u)
		}
	}

	return batch
}

func (s *Scorer) scoreOne(raw string) core.URLFinding {
	finding := core.URLFinding{
		URL:     raw,
		Reasons: []string{},
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		finding.Suspicious = true
		finding.RiskScore = maxURLScore
		finding.Reasons = append(finding.Reasons, "Invalid URL format")
		if s.logger != nil {
			s.logger.Debug("URL failed to parse", zap.String("url", raw))
		}
		return finding
	}
	host := strings.ToLower(parsed.Hostname())

	for _, pattern := range s.hostPatterns {
		if pattern.MatchString(host) {
			finding.Suspicious = true
			finding.Reasons = append(finding.Reasons, "Suspicious domain pattern")
			finding.RiskScore += scoreSuspiciousPattern
			break
		}
	}

	if _, ok := s.shorteners[host]; ok {
		finding.Reasons = append(finding.Reasons, "URL shortener detected")
		finding.RiskScore += scoreShortener
	}

	if isIPAddress(host) {
		finding.Suspicious = true
		finding.Reasons = append(finding.Reasons, "Using IP address instead of domain name")
		finding.RiskScore += scoreIPHost
	}

	for _, tld := range s.suspiciousTLDs {
		if strings.HasSuffix(host, strings.ToLower(tld)) {
			finding.Reasons = append(finding.Reasons, "Suspicious top-level domain")
			finding.RiskScore += scoreSuspiciousTLD
			break
		}
	}

	if len(strings.Split(host, ".")) > maxHostLabels {
		finding.Reasons = append(finding.Reasons, "Excessive subdomains")
		finding.RiskScore += scoreExcessiveLabels
	}

	if len(raw) > maxURLLength {
		finding.Reasons = append(finding.Reasons, "Unusually long URL")
		finding.RiskScore += scoreLongURL
	}

	if finding.RiskScore >= suspiciousThreshold {
		finding.Suspicious = true
	}

	return finding
}

func isIPAddress(host string) bool {
	return ipv4Pattern.MatchString(host) || ipv6Pattern.MatchString(host)
}
