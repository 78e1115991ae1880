package core

import (
	"fmt"
)

// Aggregation weights. The homograph term carries a cap for consistency with
// the URL-count term; without it the score saturates anyway once clamped, but
// the per-term contributions stay inspectable.
const (
	weightSPFFailure   = 25
	weightDKIMFailure  = 25
	weightPerSuspicious = 15
	maxSuspiciousTerm  = 30
	weightPerHomograph = 20
	maxHomographTerm   = 60
	weightYoungDomain  = 15

	youngDomainMaxAgeDays = 30

	highRiskThreshold   = 70
	mediumRiskThreshold = 40
	lowRiskThreshold    = 30
)

// AggregateRisk combines the three signal sets into a clamped 0-100 score,
// a risk tier, and the ordered indicator list.
func AggregateRisk(auth *AuthenticationResult, urls URLBatch, homographs []HomographFinding) (int, RiskLevel, []Indicator) {
	score := 0
	indicators := []Indicator{}

	if !auth.SPF.Pass {
		score += weightSPFFailure
		indicators = append(indicators, Indicator{
			Type:        "auth_failure",
			Severity:    SeverityMedium,
			Description: "SPF authentication failed or missing",
		})
	}
	if !auth.DKIM.Pass {
		score += weightDKIMFailure
		indicators = append(indicators, Indicator{
			Type:        "auth_failure",
			Severity:    SeverityMedium,
			Description: "DKIM signature missing or invalid",
		})
	}

	urlTerm := len(urls.Suspicious) * weightPerSuspicious
	if urlTerm > maxSuspiciousTerm {
		urlTerm = maxSuspiciousTerm
	}
	score += urlTerm
	for _, u := range urls.Suspicious {
		indicators = append(indicators, Indicator{
			Type:        "suspicious_url",
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Suspicious URL detected: %s", u),
		})
	}

	homographTerm := len(homographs) * weightPerHomograph
	if homographTerm > maxHomographTerm {
		homographTerm = maxHomographTerm
	}
	score += homographTerm
	for _, h := range homographs {
		indicators = append(indicators, Indicator{
			Type:        "homograph_attack",
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Potential homograph attack: %s", h.Original),
		})
	}

	if auth.DomainAgeDays != nil && *auth.DomainAgeDays < youngDomainMaxAgeDays {
		score += weightYoungDomain
		indicators = append(indicators, Indicator{
			Type:        "new_domain",
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Recently registered sender domain (%d days old)", *auth.DomainAgeDays),
		})
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, riskLevelFor(score), indicators
}

func riskLevelFor(score int) RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return RiskLevelHigh
	case score >= mediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// BuildRecommendations generates the recommendation list. Order follows
// trigger-check order, not severity; consumers rely on it being deterministic.
func BuildRecommendations(score int, auth *AuthenticationResult, urls URLBatch, homographs []HomographFinding) []string {
	recommendations := []string{}

	if score >= highRiskThreshold {
		recommendations = append(recommendations,
			"HIGH RISK: Do not click any links or download attachments",
			"Report this email to your security team immediately",
		)
	}
	if !auth.SPF.Pass {
		recommendations = append(recommendations, "SPF authentication failed - sender may be spoofed")
	}
	if !auth.DKIM.Pass {
		recommendations = append(recommendations, "DKIM signature missing or invalid")
	}
	if len(homographs) > 0 {
		recommendations = append(recommendations, "Homograph attack detected - verify domain names carefully")
	}
	if len(urls.Suspicious) > 0 {
		recommendations = append(recommendations, "Suspicious URLs detected - hover to verify destinations")
	}
	if score < lowRiskThreshold {
		recommendations = append(recommendations, "Low risk detected, but always verify sender identity")
	}

	return recommendations
}
