package homograph

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
	"golang.org/x/net/idna"
)

const (
	punycodePrefix = "xn--"

	// Typosquat similarity window. Exactly 1.0 means the domain IS the brand
	// and must not be flagged.
	similarityFloor   = 0.8
	similarityCeiling = 1.0
)

// Character classes that visually impersonate Latin hostnames
var scriptClasses = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[а-я]`),                    // Cyrillic
	regexp.MustCompile(`(?i)[αβγδεζηθικλμνξοπρστυφχψω]`), // Greek
	regexp.MustCompile(`[０-９]`),                         // Full-width digits
}

// Detector flags visually-deceptive domains: punycode hosts, foreign-script
// substitution, and typosquats of a fixed brand list. A single host can
// produce several findings.
type Detector struct {
	brands []string
	logger *zap.Logger
}

// NewDetector creates a detector with the given reference brand domains
func NewDetector(brands []string, logger *zap.Logger) *Detector {
	normalized := make([]string, len(brands))
	for i, b := range brands {
		normalized[i] = strings.ToLower(strings.TrimSpace(b))
	}
	return &Detector{
		brands: normalized,
		logger: logger,
	}
}

// Detect inspects every URL's host and returns all findings
func (d *Detector) Detect(urls []string) []core.HomographFinding {
	findings := []core.HomographFinding{}

	for _, u := range urls {
		host := hostOf(u)
		if host == "" {
			continue
		}

		if strings.Contains(host, punycodePrefix) {
			decoded, err := idna.ToUnicode(host)
			if err != nil {
				decoded = host
			}
			findings = append(findings, core.HomographFinding{
				Original: host,
				Decoded:  decoded,
				Type:     core.HomographPunycode,
				Risk:     core.RiskHigh,
			})
		}

		for _, class := range scriptClasses {
			if class.MatchString(host) {
				findings = append(findings, core.HomographFinding{
					Original: host,
					Type:     core.HomographUnicode,
					Risk:     core.RiskMedium,
				})
				break
			}
		}

		for _, brand := range d.brands {
			sim := similarity(host, brand)
			if sim > similarityFloor && sim < similarityCeiling {
				findings = append(findings, core.HomographFinding{
					Original:    host,
					Type:        core.HomographTyposquat,
					Risk:        core.RiskHigh,
					SuspectedOf: brand,
					Similarity:  sim,
				})
			}
		}
	}

	if d.logger != nil && len(findings) > 0 {
		d.logger.Debug("Homograph findings", zap.Int("count", len(findings)))
	}

	return findings
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// similarity is a normalized Levenshtein similarity in [0, 1]: identical
// strings score 1.0, fully distinct strings score 0.
func similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 {
		if lb == 0 {
			return 1
		}
		return 0
	}
	if lb == 0 {
		return 0
	}

	distance := fuzzy.LevenshteinDistance(a, b)
	max := la
	if lb > max {
		max = lb
	}
	return 1 - float64(distance)/float64(max)
}
