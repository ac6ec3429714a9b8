package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/devserve/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// TLSListener wraps bound sockets in a server-side TLS layer.
// The certificate and key are read from disk each time Listen is called.
type TLSListener struct {
	pair model.CertPair
}

// NewTLSListener creates a TLSListener serving the given certificate pair.
//
// Parameters:
//   - pair: Paths of the PEM certificate and private key files
//
// Returns a pointer to the newly created TLSListener instance.
func NewTLSListener(pair model.CertPair) *TLSListener {
	return &TLSListener{pair: pair}
}

// Config loads the certificate pair and builds the server TLS configuration.
func (l *TLSListener) Config() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(l.pair.CertFile, l.pair.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1"},
	}, nil
}

// Listen binds addr and returns a listener that performs a TLS handshake
// on every accepted connection.
//
// Parameters:
//   - protocol: The network protocol (typically "tcp")
//   - addr: The address to listen on
//
// Returns a TLS-enabled network listener or an error if setup fails.
// The certificate is loaded before the socket is bound.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	tlsConfig, err := l.Config()
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen(protocol, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	return tls.NewListener(ln, tlsConfig), nil
}

// PlainListener binds unencrypted sockets.
type PlainListener struct{}

// NewPlainListener creates a new PlainListener instance.
func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

// Listen binds addr on the given network without TLS.
func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := net.Listen(protocol, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return ln, nil
}
