package model

import "errors"

var (
	ErrProvisioningFailed = errors.New("certificate provisioning failed")
	ErrServerNotStarted   = errors.New("server not started")
)
