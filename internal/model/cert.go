package model

import "context"

// CertPair holds the paths of a provisioned certificate and its private key.
type CertPair struct {
	CertFile string
	KeyFile  string
}

// CertProvisioner obtains a certificate/key pair on disk.
type CertProvisioner interface {
	Provision(ctx context.Context) (CertPair, error)
}

// CommandRunner invokes an external program in a working directory.
// It only reports whether the program ran and exited with status 0.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) bool
}
