package core_test

import (
	"context"
	"testing"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"github.com/navneetjaguri/phishing-detection-portal/internal/homograph"
	"github.com/navneetjaguri/phishing-detection-portal/internal/parser"
	"github.com/navneetjaguri/phishing-detection-portal/internal/urlscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthenticator struct {
	result  *core.AuthenticationResult
	domains []string
}

func (f *fakeAuthenticator) Check(_ context.Context, domain string) *core.AuthenticationResult {
	f.domains = append(f.domains, domain)
	if f.result != nil {
		return f.result
	}
	return &core.AuthenticationResult{
		SPF:  core.SPFResult{Pass: true, Status: "SPF record found"},
		DKIM: core.DKIMResult{Pass: true, Status: "DKIM record found"},
	}
}

func newTestService(t *testing.T, auth core.DomainAuthenticator) *core.AnalyzerService {
	t.Helper()
	scorer, err := urlscan.NewScorer(urlscan.ScorerConfig{
		Shorteners:     []string{"bit.ly"},
		SuspiciousTLDs: []string{".tk"},
		HostPatterns:   []string{"(?i)secure.*update"},
	}, zap.NewNop())
	require.NoError(t, err)

	return core.NewAnalyzerService(
		parser.New(),
		urlscan.NewExtractor(),
		scorer,
		homograph.NewDetector([]string{"paypal.com"}, zap.NewNop()),
		auth,
		nil,
		262144,
		zap.NewNop(),
	)
}

const phishingEmail = `From: PayPal Security <security@paypa1.com>
Subject: Urgent account verification

Your account is suspended. Verify now at http://192.168.1.1/login
or http://paypa1.com/verify within 24 hours.
`

func TestAnalyzeEmailEmptyInput(t *testing.T) {
	svc := newTestService(t, &fakeAuthenticator{})

	for _, raw := range []string{"", "   ", "\n\t\n"} {
		_, err := svc.AnalyzeEmail(context.Background(), raw)
		assert.ErrorIs(t, err, core.ErrEmptyEmail)
	}
}

func TestAnalyzeEmailCleanMessage(t *testing.T) {
	auth := &fakeAuthenticator{}
	svc := newTestService(t, auth)

	result, err := svc.AnalyzeEmail(context.Background(), "From: alice@example.com\nSubject: lunch\n\nSee you at noon.")

	require.NoError(t, err)
	assert.Equal(t, 0, result.RiskScore)
	assert.Equal(t, core.RiskLevelLow, result.RiskLevel)
	assert.Empty(t, result.SuspiciousURLs)
	assert.Empty(t, result.Homographs)
	assert.Equal(t, []string{"Low risk detected, but always verify sender identity"}, result.Recommendations)
	assert.Equal(t, []string{"example.com"}, auth.domains)
	assert.Equal(t, "alice@example.com", result.EmailData.From)
	assert.Equal(t, "lunch", result.EmailData.Subject)
}

func TestAnalyzeEmailPhishingMessage(t *testing.T) {
	auth := &fakeAuthenticator{result: &core.AuthenticationResult{
		SPF:  core.SPFResult{Pass: false, Status: "No SPF record found"},
		DKIM: core.DKIMResult{Pass: false, Status: "No DKIM records found"},
	}}
	svc := newTestService(t, auth)

	result, err := svc.AnalyzeEmail(context.Background(), phishingEmail)

	require.NoError(t, err)

	// 25 SPF + 25 DKIM + 15 suspicious URL + 20 typosquat = 85
	assert.Equal(t, 85, result.RiskScore)
	assert.Equal(t, core.RiskLevelHigh, result.RiskLevel)
	assert.Equal(t, []string{"http://192.168.1.1/login"}, result.SuspiciousURLs)
	require.Len(t, result.Homographs, 1)
	assert.Equal(t, core.HomographTyposquat, result.Homographs[0].Type)
	assert.Equal(t, "paypal.com", result.Homographs[0].SuspectedOf)
	assert.Len(t, result.URLFindings, 2)
	assert.Equal(t, []string{"paypa1.com"}, auth.domains)
	assert.Contains(t, result.Recommendations, "HIGH RISK: Do not click any links or download attachments")
	assert.False(t, result.Timestamp.IsZero())
}

func TestAnalyzeEmailDeterministicApartFromTimestamp(t *testing.T) {
	svc := newTestService(t, &fakeAuthenticator{})

	first, err := svc.AnalyzeEmail(context.Background(), phishingEmail)
	require.NoError(t, err)
	second, err := svc.AnalyzeEmail(context.Background(), phishingEmail)
	require.NoError(t, err)

	first.Timestamp = second.Timestamp
	assert.Equal(t, first, second)
}

func TestCheckHomographs(t *testing.T) {
	svc := newTestService(t, &fakeAuthenticator{})

	findings, err := svc.CheckHomographs([]string{"http://xn--80ak6aa92e.com/"})

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, core.HomographPunycode, findings[0].Type)
}

func TestCheckHomographsNilURLs(t *testing.T) {
	svc := newTestService(t, &fakeAuthenticator{})

	_, err := svc.CheckHomographs(nil)

	assert.ErrorIs(t, err, core.ErrNoURLs)
}

func TestCheckHomographsEmptyList(t *testing.T) {
	// An empty list is a valid request; only a missing list is rejected.
	svc := newTestService(t, &fakeAuthenticator{})

	findings, err := svc.CheckHomographs([]string{})

	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestCheckDomainAuthentication(t *testing.T) {
	auth := &fakeAuthenticator{}
	svc := newTestService(t, auth)

	result, err := svc.CheckDomainAuthentication(context.Background(), "example.com")

	require.NoError(t, err)
	assert.True(t, result.SPF.Pass)
	assert.Equal(t, []string{"example.com"}, auth.domains)
}

func TestCheckDomainAuthenticationEmptyDomain(t *testing.T) {
	svc := newTestService(t, &fakeAuthenticator{})

	_, err := svc.CheckDomainAuthentication(context.Background(), "  ")

	assert.ErrorIs(t, err, core.ErrEmptyDomain)
}
