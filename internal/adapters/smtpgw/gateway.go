package smtpgw

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/navneetjaguri/phishing-detection-portal/internal/core"
	"go.uber.org/zap"
)

// Gateway is an SMTP content filter: it accepts messages, runs the phishing
// analyzer on the raw text, prepends X-Phishing-* headers, and relays the
// annotated message to the configured upstream. Analysis errors never bounce
// mail.
type Gateway struct {
	service       *core.AnalyzerService
	logger        *zap.Logger
	listenAddr    string
	server        *smtp.Server
	upstreamAddr  string
	upstreamPort  int
	forwardEnable bool
	blockHighRisk bool
	scoreHeader   string
	riskHeader    string
	flaggedHeader string
}

// NewGateway creates a new SMTP gateway
func NewGateway(
	service *core.AnalyzerService,
	logger *zap.Logger,
	listenAddr string,
	upstreamAddr string,
	upstreamPort int,
	forwardEnable bool,
	blockHighRisk bool,
	scoreHeader string,
	riskHeader string,
	flaggedHeader string,
) *Gateway {
	return &Gateway{
		service:       service,
		logger:        logger,
		listenAddr:    listenAddr,
		upstreamAddr:  upstreamAddr,
		upstreamPort:  upstreamPort,
		forwardEnable: forwardEnable,
		blockHighRisk: blockHighRisk,
		scoreHeader:   scoreHeader,
		riskHeader:    riskHeader,
		flaggedHeader: flaggedHeader,
	}
}

// Start starts the SMTP gateway
func (g *Gateway) Start() error {
	g.server = smtp.NewServer(&smtpBackend{gateway: g})

	g.server.Addr = g.listenAddr
	g.server.Domain = "localhost"
	g.server.ReadTimeout = 30 * time.Second
	g.server.WriteTimeout = 30 * time.Second
	g.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	g.server.MaxRecipients = 50
	g.server.AllowInsecureAuth = true

	g.logger.Info("SMTP gateway starting", zap.String("address", g.listenAddr))

	go func() {
		if err := g.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				g.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP gateway
func (g *Gateway) Stop() error {
	if g.server != nil {
		return g.server.Close()
	}
	return nil
}

// relayUpstream sends the annotated message to the upstream MTA
func (g *Gateway) relayUpstream(sender string, recipients []string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", g.upstreamAddr, g.upstreamPort)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to upstream: %w", err)
	}
	if err := conn.SetDeadline(time.Now().Add(30 * time.Second)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}
	if err := c.Mail(sender, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	accepted := false
	for _, recipient := range recipients {
		if err := c.Rcpt(recipient, nil); err != nil {
			g.logger.Warn("RCPT TO failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			continue
		}
		accepted = true
	}
	if !accepted {
		return fmt.Errorf("all recipients were rejected")
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}
	if _, err := wc.Write(message); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send message data: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		g.logger.Warn("QUIT command failed", zap.Error(err))
	}

	return nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	gateway *Gateway
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		gateway:    b.gateway,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	gateway    *Gateway
	sender     string
	recipients []string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// AuthPlain handles PLAIN authentication (not needed for the gateway)
func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt adds a recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data analyzes the message and relays it with phishing verdict headers
func (s *smtpSession) Data(r io.Reader) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		s.gateway.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, analysisErr := s.gateway.service.AnalyzeEmail(ctx, string(rawData))
	if analysisErr != nil {
		s.gateway.logger.Error("Failed to analyze message",
			zap.Error(analysisErr),
			zap.String("sender", s.sender))
	}

	if analysisErr == nil && s.gateway.blockHighRisk && result.RiskLevel == core.RiskLevelHigh {
		s.gateway.logger.Info("Rejecting high-risk message",
			zap.String("sender", s.sender),
			zap.Int("risk_score", result.RiskScore))
		return fmt.Errorf("550 Rejected as likely phishing (score: %d)", result.RiskScore)
	}

	var annotated bytes.Buffer
	if analysisErr == nil {
		flagged := result.RiskLevel != core.RiskLevelLow
		fmt.Fprintf(&annotated, "%s: %d\r\n", s.gateway.scoreHeader, result.RiskScore)
		fmt.Fprintf(&annotated, "%s: %s\r\n", s.gateway.riskHeader, result.RiskLevel)
		fmt.Fprintf(&annotated, "%s: %t\r\n", s.gateway.flaggedHeader, flagged)
	} else {
		fmt.Fprintf(&annotated, "X-Phishing-Analysis-Error: %s\r\n", analysisErr.Error())
	}
	annotated.Write(rawData)

	if s.gateway.forwardEnable {
		if err := s.gateway.relayUpstream(s.sender, s.recipients, annotated.Bytes()); err != nil {
			s.gateway.logger.Error("Failed to relay message upstream",
				zap.Error(err),
				zap.String("sender", s.sender))
			return err
		}
	}

	if analysisErr == nil {
		s.gateway.logger.Info("Processed message",
			zap.String("sender", s.sender),
			zap.Int("risk_score", result.RiskScore),
			zap.String("risk_level", string(result.RiskLevel)))
	}

	return nil
}

// Logout handles SMTP logout
func (s *smtpSession) Logout() error {
	return nil
}
