package dnsx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// Resolver performs TXT lookups against a fixed list of upstream DNS servers,
// falling through to the next server on failure. Every query is bounded by
// the configured timeout.
type Resolver struct {
	servers []string
	client  *dns.Client
	logger  *zap.Logger
}

// NewResolver creates a new TXT resolver
func NewResolver(servers []string, timeout time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		servers: servers,
		client:  &dns.Client{Timeout: timeout},
		logger:  logger,
	}
}

// LookupTXT queries the upstream servers for TXT records on name. Record
// chunks are joined per record. An empty answer with a successful response is
// not an error; it means the name has no TXT records.
func (r *Resolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeTXT)

	var lastErr error
	for _, server := range r.servers {
		resp, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			lastErr = fmt.Errorf("TXT query for %s returned %s", name, dns.RcodeToString[resp.Rcode])
			continue
		}

		var records []string
		for _, answer := range resp.Answer {
			if txt, ok := answer.(*dns.TXT); ok {
				records = append(records, strings.Join(txt.Txt, ""))
			}
		}

		r.logger.Debug("TXT lookup",
			zap.String("name", name),
			zap.String("server", server),
			zap.Int("records", len(records)))
		return records, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no DNS servers configured")
	}
	return nil, lastErr
}
