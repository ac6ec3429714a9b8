package cert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dtroode/devserve/internal/logger"
	"github.com/dtroode/devserve/internal/model"
)

const (
	MkcertCertFile  = "localhost.pem"
	MkcertKeyFile   = "localhost-key.pem"
	OpenSSLCertFile = "cert.pem"
	OpenSSLKeyFile  = "key.pem"

	InstallHint = "https://github.com/FiloSottile/mkcert"
)

var opensslArgs = []string{
	"req", "-x509",
	"-newkey", "rsa:4096",
	"-keyout", OpenSSLKeyFile,
	"-out", OpenSSLCertFile,
	"-days", "365",
	"-nodes",
	"-subj", "/C=US/ST=CA/L=SF/O=Dev/CN=localhost",
}

var _ model.CertProvisioner = (*Provisioner)(nil)

// Provisioner obtains a self-signed certificate for localhost in a directory,
// preferring mkcert and falling back to openssl.
type Provisioner struct {
	dir    string
	runner model.CommandRunner
	out    io.Writer
	logger *logger.Logger
}

// NewProvisioner creates a Provisioner writing certificates into dir.
// Progress lines meant for the user are printed to out.
func NewProvisioner(dir string, runner model.CommandRunner, out io.Writer, logger *logger.Logger) *Provisioner {
	return &Provisioner{
		dir:    dir,
		runner: runner,
		out:    out,
		logger: logger,
	}
}

// Provision returns a certificate pair whose files both exist on disk,
// or model.ErrProvisioningFailed when neither tool produced one.
func (p *Provisioner) Provision(ctx context.Context) (model.CertPair, error) {
	if pair, ok := p.withMkcert(ctx); ok {
		return pair, nil
	}

	if pair, ok := p.withOpenSSL(ctx); ok {
		return pair, nil
	}

	return model.CertPair{}, model.ErrProvisioningFailed
}

func (p *Provisioner) withMkcert(ctx context.Context) (model.CertPair, bool) {
	if !p.runner.Run(ctx, p.dir, "mkcert", "-help") {
		p.logger.Debug("mkcert is not available")
		return model.CertPair{}, false
	}

	fmt.Fprintln(p.out, "📜 Using mkcert for certificates...")

	if !p.runner.Run(ctx, p.dir, "mkcert", "-install") {
		p.logger.Warn("mkcert could not install the local CA, browsers may not trust the certificate")
	}
	if !p.runner.Run(ctx, p.dir, "mkcert", "localhost") {
		p.logger.Warn("mkcert failed to generate a certificate")
	}

	return p.existing(MkcertCertFile, MkcertKeyFile)
}

func (p *Provisioner) withOpenSSL(ctx context.Context) (model.CertPair, bool) {
	fmt.Fprintln(p.out, "🔐 Creating self-signed certificate with openssl...")

	if !p.runner.Run(ctx, p.dir, "openssl", opensslArgs...) {
		p.logger.Warn("openssl failed to generate a certificate")
	}

	return p.existing(OpenSSLCertFile, OpenSSLKeyFile)
}

// existing reports the pair only if both files are present as regular files.
func (p *Provisioner) existing(certFile, keyFile string) (model.CertPair, bool) {
	pair := model.CertPair{
		CertFile: filepath.Join(p.dir, certFile),
		KeyFile:  filepath.Join(p.dir, keyFile),
	}

	for _, name := range []string{pair.CertFile, pair.KeyFile} {
		info, err := os.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			p.logger.Debug("certificate file missing", "file", name)
			return model.CertPair{}, false
		}
	}

	return pair, true
}
