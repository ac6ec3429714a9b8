package cert

import (
	"context"
	"os/exec"

	"github.com/dtroode/devserve/internal/logger"
	"github.com/dtroode/devserve/internal/model"
)

var _ model.CommandRunner = (*ExecRunner)(nil)

// ExecRunner runs external programs and reports only whether they
// succeeded. Their output is discarded.
type ExecRunner struct {
	logger *logger.Logger
}

func NewExecRunner(logger *logger.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) bool {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	if err := cmd.Run(); err != nil {
		r.logger.Debug("external command failed", "command", name, "args", args)
		return false
	}
	return true
}
