package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dtroode/devserve/internal/cert"
	"github.com/dtroode/devserve/internal/model"
)

// Provision obtains a certificate pair from p. When no tool could produce
// one, the failure and an install hint are written to out. If ctx was
// cancelled while provisioning, the context error is returned and nothing
// is written.
func Provision(ctx context.Context, p model.CertProvisioner, out io.Writer) (model.CertPair, error) {
	pair, err := p.Provision(ctx)
	if err == nil {
		return pair, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.CertPair{}, fmt.Errorf("provisioning interrupted: %w", ctxErr)
	}

	if errors.Is(err, model.ErrProvisioningFailed) {
		fmt.Fprintln(out, "❌ Certificate creation failed")
		fmt.Fprintln(out, "💡 Try installing mkcert: "+cert.InstallHint)
	}
	return model.CertPair{}, err
}
