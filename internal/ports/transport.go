package ports

// Transport is a long-running front end that exposes the analyzer service
// (HTTP API or SMTP gateway)
type Transport interface {
	// Start starts serving requests
	Start() error

	// Stop shuts the transport down
	Stop() error
}
