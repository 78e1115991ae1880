package core

import (
	"time"
)

// ParsedEmail holds the header fields and body derived from raw email text.
// Absent headers are empty strings, never errors.
type ParsedEmail struct {
	From                  string            `json:"from"`
	To                    string            `json:"to"`
	Subject               string            `json:"subject"`
	Date                  string            `json:"date"`
	FromDomain            string            `json:"fromDomain"`
	ReturnPath            string            `json:"returnPath"`
	ReceivedSPF           string            `json:"receivedSpf"`
	AuthenticationResults string            `json:"authenticationResults"`
	Body                  string            `json:"body"`
	Headers               map[string]string `json:"headers"`
}

// Header returns the value of a header by its lower-cased name, or "" when absent
func (p *ParsedEmail) Header(name string) string {
	return p.Headers[name]
}

// URLFinding is the scored result for a single URL occurrence
type URLFinding struct {
	URL        string   `json:"url"`
	Suspicious bool     `json:"isSuspicious"`
	Reasons    []string `json:"reasons"`
	RiskScore  int      `json:"riskScore"`
}

// URLBatch groups per-URL findings with the subset judged suspicious
type URLBatch struct {
	Suspicious []string     `json:"suspicious"`
	Findings   []URLFinding `json:"analysis"`
}

// HomographType identifies which visual-spoofing check fired
type HomographType string

const (
	HomographPunycode  HomographType = "punycode"
	HomographUnicode   HomographType = "unicode_homograph"
	HomographTyposquat HomographType = "typosquatting"
)

// Risk grades attached to homograph findings
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
)

// HomographFinding records one visually-deceptive domain detection
type HomographFinding struct {
	Original    string        `json:"original"`
	Decoded     string        `json:"decoded,omitempty"`
	Type        HomographType `json:"type"`
	Risk        string        `json:"risk"`
	SuspectedOf string        `json:"suspiciousOf,omitempty"`
	Similarity  float64       `json:"similarity,omitempty"`
}

// SPFResult is the outcome of the SPF TXT lookup for a sender domain
type SPFResult struct {
	Pass   bool   `json:"pass"`
	Status string `json:"status,omitempty"`
	Record string `json:"record,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DKIMResult is the outcome of the DKIM selector scan for a sender domain
type DKIMResult struct {
	Pass     bool   `json:"pass"`
	Status   string `json:"status,omitempty"`
	Selector string `json:"selector,omitempty"`
	Error    string `json:"error,omitempty"`
}

// AuthenticationResult bundles SPF, DKIM and the domain-age estimate.
// DomainAgeDays is nil when no age could be resolved.
type AuthenticationResult struct {
	SPF           SPFResult  `json:"spf"`
	DKIM          DKIMResult `json:"dkim"`
	DomainAgeDays *int       `json:"domainAge,omitempty"`
}

// AuthCacheEntry is a cached authentication result for a domain
type AuthCacheEntry struct {
	Domain    string
	Result    AuthenticationResult
	CachedAt  time.Time
	ExpiresAt time.Time
}

// Severity of an indicator
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Indicator is a typed signal contributing to the aggregate verdict
type Indicator struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// RiskLevel is the tier derived from the aggregate score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// EmailSummary carries the sender/subject fields shown alongside a verdict
type EmailSummary struct {
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
}

// AnalysisResult is the final record produced for one analyzed email.
// It is fully constructed by the pipeline and never mutated after return.
type AnalysisResult struct {
	Timestamp       time.Time          `json:"timestamp"`
	RiskScore       int                `json:"riskScore"`
	RiskLevel       RiskLevel          `json:"riskLevel"`
	SPFResult       SPFResult          `json:"spfResult"`
	DKIMResult      DKIMResult         `json:"dkimResult"`
	DomainAgeDays   *int               `json:"domainAge,omitempty"`
	SuspiciousURLs  []string           `json:"suspiciousUrls"`
	URLFindings     []URLFinding       `json:"urlAnalysis"`
	Homographs      []HomographFinding `json:"homographs"`
	Indicators      []Indicator        `json:"indicators"`
	Recommendations []string           `json:"recommendations"`
	EmailData       EmailSummary       `json:"emailData"`
}
