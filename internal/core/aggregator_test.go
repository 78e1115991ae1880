package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passingAuth() *AuthenticationResult {
	return &AuthenticationResult{
		SPF:  SPFResult{Pass: true, Status: "SPF record found"},
		DKIM: DKIMResult{Pass: true, Status: "DKIM record found"},
	}
}

func failingAuth() *AuthenticationResult {
	return &AuthenticationResult{
		SPF:  SPFResult{Pass: false, Status: "No SPF record found"},
		DKIM: DKIMResult{Pass: false, Status: "No DKIM records found"},
	}
}

func TestAggregateCleanEmail(t *testing.T) {
	score, level, indicators := AggregateRisk(passingAuth(), URLBatch{}, nil)

	assert.Equal(t, 0, score)
	assert.Equal(t, RiskLevelLow, level)
	assert.Empty(t, indicators)
}

func TestAggregateAuthFailures(t *testing.T) {
	score, level, indicators := AggregateRisk(failingAuth(), URLBatch{}, nil)

	assert.Equal(t, 50, score)
	assert.Equal(t, RiskLevelMedium, level)
	require.Len(t, indicators, 2)
	assert.Equal(t, "auth_failure", indicators[0].Type)
	assert.Equal(t, SeverityMedium, indicators[0].Severity)
}

func TestAggregateSuspiciousURLTermCapped(t *testing.T) {
	batch := URLBatch{Suspicious: []string{
		"http://a.tk/1", "http://b.tk/2", "http://c.tk/3", "http://d.tk/4",
	}}

	score, _, indicators := AggregateRisk(passingAuth(), batch, nil)

	// Four URLs would be 60 uncapped; the term tops out at 30.
	assert.Equal(t, 30, score)
	assert.Len(t, indicators, 4)
	for _, ind := range indicators {
		assert.Equal(t, "suspicious_url", ind.Type)
		assert.Equal(t, SeverityHigh, ind.Severity)
	}
}

func TestAggregateHomographTermCapped(t *testing.T) {
	findings := make([]HomographFinding, 5)
	for i := range findings {
		findings[i] = HomographFinding{Original: "xn--fake.com", Type: HomographPunycode, Risk: RiskHigh}
	}

	score, level, _ := AggregateRisk(passingAuth(), URLBatch{}, findings)

	// Five findings would be 100 uncapped; the term tops out at 60.
	assert.Equal(t, 60, score)
	assert.Equal(t, RiskLevelMedium, level)
}

func TestAggregateYoungDomain(t *testing.T) {
	age := 10
	auth := passingAuth()
	auth.DomainAgeDays = &age

	score, _, indicators := AggregateRisk(auth, URLBatch{}, nil)

	assert.Equal(t, 15, score)
	require.Len(t, indicators, 1)
	assert.Equal(t, "new_domain", indicators[0].Type)
	assert.Contains(t, indicators[0].Description, "10 days old")
}

func TestAggregateOldDomainNotFlagged(t *testing.T) {
	age := 30
	auth := passingAuth()
	auth.DomainAgeDays = &age

	score, _, indicators := AggregateRisk(auth, URLBatch{}, nil)

	assert.Equal(t, 0, score)
	assert.Empty(t, indicators)
}

func TestAggregateUnknownAgeNotFlagged(t *testing.T) {
	score, _, indicators := AggregateRisk(passingAuth(), URLBatch{}, nil)

	assert.Equal(t, 0, score)
	assert.Empty(t, indicators)
}

func TestAggregateScoreClampedAt100(t *testing.T) {
	age := 5
	auth := failingAuth()
	auth.DomainAgeDays = &age
	batch := URLBatch{Suspicious: []string{"http://a.tk", "http://b.tk", "http://c.tk"}}
	findings := []HomographFinding{
		{Original: "xn--a.com", Type: HomographPunycode, Risk: RiskHigh},
		{Original: "xn--b.com", Type: HomographPunycode, Risk: RiskHigh},
		{Original: "xn--c.com", Type: HomographPunycode, Risk: RiskHigh},
	}

	score, level, _ := AggregateRisk(auth, batch, findings)

	assert.Equal(t, 100, score)
	assert.Equal(t, RiskLevelHigh, level)
}

func TestRiskLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelLow},
		{39, RiskLevelLow},
		{40, RiskLevelMedium},
		{69, RiskLevelMedium},
		{70, RiskLevelHigh},
		{100, RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, riskLevelFor(tt.score), "score %d", tt.score)
	}
}

func TestRecommendationsHighRiskOrder(t *testing.T) {
	auth := failingAuth()
	batch := URLBatch{Suspicious: []string{"http://evil.tk"}}
	findings := []HomographFinding{{Original: "xn--evil.com", Type: HomographPunycode}}

	recs := BuildRecommendations(85, auth, batch, findings)

	assert.Equal(t, []string{
		"HIGH RISK: Do not click any links or download attachments",
		"Report this email to your security team immediately",
		"SPF authentication failed - sender may be spoofed",
		"DKIM signature missing or invalid",
		"Homograph attack detected - verify domain names carefully",
		"Suspicious URLs detected - hover to verify destinations",
	}, recs)
}

func TestRecommendationsLowRisk(t *testing.T) {
	recs := BuildRecommendations(0, passingAuth(), URLBatch{}, nil)

	assert.Equal(t, []string{
		"Low risk detected, but always verify sender identity",
	}, recs)
}

func TestRecommendationsMediumRiskNoLowNote(t *testing.T) {
	recs := BuildRecommendations(50, failingAuth(), URLBatch{}, nil)

	assert.Equal(t, []string{
		"SPF authentication failed - sender may be spoofed",
		"DKIM signature missing or invalid",
	}, recs)
}
