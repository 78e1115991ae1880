package parser

import (
	"regexp"
	"strings"

	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
)

var domainPattern = regexp.MustCompile(`@([^>]+)`)

// Parser splits raw email text into headers and body. The first blank line is
// the boundary; header lines without a colon are ignored. It never fails:
// missing headers resolve to empty strings, and input without a blank line is
// treated as all headers with an empty body.
type Parser struct{}

// New creates a new email parser
func New() *Parser {
	return &Parser{}
}

// Parse parses raw email text into a ParsedEmail
func (p *Parser) Parse(raw string) *core.ParsedEmail {
	lines := strings.Split(raw, "\n")
	headers := make(map[string]string)

	bodyStart := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			bodyStart = i + 1
			break
		}

		colon := strings.Index(trimmed, ":")
		if colon > 0 {
			key := strings.ToLower(strings.TrimSpace(trimmed[:colon]))
			value := strings.TrimSpace(trimmed[colon+1:])
			headers[key] = value
		}
	}

	body := ""
	if bodyStart >= 0 && bodyStart <= len(lines) {
		body = strings.Join(lines[bodyStart:], "\n")
	}

	return &core.ParsedEmail{
		From:                  headers["from"],
		To:                    headers["to"],
		Subject:               headers["subject"],
		Date:                  headers["date"],
		FromDomain:            extractDomain(headers["from"]),
		ReturnPath:            headers["return-path"],
		ReceivedSPF:           headers["received-spf"],
		AuthenticationResults: headers["authentication-results"],
		Body:                  body,
		Headers:               headers,
	}
}

// extractDomain pulls the sender domain out of a From header value: the
// substring after "@" up to the first ">" or end of string, trimmed.
func extractDomain(from string) string {
	m := domainPattern.FindStringSubmatch(from)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
