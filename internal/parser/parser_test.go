package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleEmail = `From: PayPal Security <security@paypal-alerts.com>
To: victim@example.com
Subject: Urgent account verification
Date: Mon, 13 Jan 2025 10:00:00 +0000
Return-Path: <bounce@paypal-alerts.com>
X-Custom: some value

Dear customer,

Please verify your account at http://paypal-alerts.com/verify
`

func TestParseHeadersAndBody(t *testing.T) {
	p := New()
	email := p.Parse(sampleEmail)

	assert.Equal(t, "PayPal Security <security@paypal-alerts.com>", email.From)
	assert.Equal(t, "victim@example.com", email.To)
	assert.Equal(t, "Urgent account verification", email.Subject)
	assert.Equal(t, "Mon, 13 Jan 2025 10:00:00 +0000", email.Date)
	assert.Equal(t, "<bounce@paypal-alerts.com>", email.ReturnPath)
	assert.Equal(t, "some value", email.Header("x-custom"))
	assert.Contains(t, email.Body, "Dear customer,")
	assert.Contains(t, email.Body, "http://paypal-alerts.com/verify")
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"angle brackets", "PayPal <security@paypal-alerts.com>", "paypal-alerts.com"},
		{"bare address", "bob@example.org", "example.org"},
		{"no at sign", "Mailer Daemon", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDomain(tt.from))
		})
	}
}

func TestParseCRLFInput(t *testing.T) {
	p := New()
	email := p.Parse("From: a@b.com\r\nSubject: hi\r\n\r\nbody line")

	assert.Equal(t, "a@b.com", email.From)
	assert.Equal(t, "hi", email.Subject)
	assert.Equal(t, "body line", email.Body)
}

func TestParseMissingHeadersAreEmpty(t *testing.T) {
	p := New()
	email := p.Parse("Subject: only a subject\n\nbody")

	assert.Equal(t, "", email.From)
	assert.Equal(t, "", email.FromDomain)
	assert.Equal(t, "", email.ReturnPath)
	assert.Equal(t, "", email.Header("received-spf"))
}

func TestParseNoBlankLine(t *testing.T) {
	// Without a blank line the entire input is headers and the body is empty.
	p := New()
	email := p.Parse("From: a@b.com\nSubject: no body here")

	assert.Equal(t, "a@b.com", email.From)
	assert.Equal(t, "no body here", email.Subject)
	assert.Equal(t, "", email.Body)
}

func TestParseIgnoresColonlessLines(t *testing.T) {
	p := New()
	email := p.Parse("From: a@b.com\nthis line has no colon\nSubject: hi\n\nbody")

	assert.Equal(t, "a@b.com", email.From)
	assert.Equal(t, "hi", email.Subject)
	assert.Len(t, email.Headers, 2)
}
