package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/gnolang/shrink/codec"
	"github.com/gnolang/shrink/types"
)

// commandPredicate runs an external command on every candidate. A candidate
// is interesting, i.e. still fails, when the command exits with a non-zero
// status. The candidate is written to the command's stdin as JSON.
type commandPredicate struct {
	name    string
	args    []string
	timeout time.Duration
	codec   codec.Codec
	logger  *zap.Logger

	runs int
}

func (p *commandPredicate) Interesting(ctx context.Context, v types.Value) (bool, error) {
	payload, err := p.codec.Encode(v)
	if err != nil {
		return false, err
	}

	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	c := exec.CommandContext(runCtx, p.name, p.args...)
	c.Stdin = bytes.NewReader(payload)
	c.Stdout = io.Discard
	c.Stderr = &stderr

	p.runs++
	err = c.Run()
	if err == nil {
		return false, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		p.logger.Warn("Predicate command timed out",
			zap.String("command", p.name),
			zap.Duration("timeout", p.timeout),
		)
		return false, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		p.logger.Debug("Predicate command failed",
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.String("stderr", stderr.String()),
		)
		return true, nil
	}
	return false, fmt.Errorf("running %s: %w", p.name, err)
}
