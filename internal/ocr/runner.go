package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner lets us stub the tesseract binary in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// stderr from a failing tesseract run can be very chatty; cap what we log.
const maxLoggedStderr = 8 << 10

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()

	attrs := []any{
		"cmd", name,
		"args", strings.Join(args, " "),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		stderr := errb.String()
		if len(stderr) > maxLoggedStderr {
			stderr = stderr[:maxLoggedStderr] + "...(truncated)"
		}
		slog.Error("exec failed", append(attrs, "error", err, "stderr", stderr)...)
	} else {
		slog.Debug("exec ok", append(attrs, "stdout_bytes", out.Len(), "stderr_bytes", errb.Len())...)
	}

	return out.Bytes(), errb.Bytes(), err
}
