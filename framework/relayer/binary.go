package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Binary runs relayer operations by spawning the relayer as a local child
// process: launcher tokens, then "-c <config>", then the operation name
// tokens, then the parameter tokens. It captures stdout and decodes the
// last non-empty line as the reply envelope; the relayer may print
// unrelated diagnostics before it.
//
// The process exit status is deliberately not inspected: a non-zero exit
// without a parseable reply line surfaces as a DecodeError.
type Binary struct {
	logger   *zap.Logger
	launcher []string
	config   string
}

var _ Executor = (*Binary)(nil)

// NewBinary returns a Binary invoking the relayer via the given launcher
// tokens against the configuration file at configPath.
func NewBinary(logger *zap.Logger, launcher []string, configPath string) *Binary {
	if logger == nil {
		panic(errors.New("nil logger"))
	}
	if len(launcher) == 0 {
		panic(errors.New("launcher cannot be empty"))
	}
	if configPath == "" {
		panic(errors.New("configPath cannot be empty"))
	}
	return &Binary{
		logger:   logger.With(zap.String("launcher", strings.Join(launcher, " "))),
		launcher: launcher,
		config:   configPath,
	}
}

// Execute spawns one relayer invocation and returns its decoded reply.
func (b *Binary) Execute(ctx context.Context, name string, args []string) (Reply, error) {
	argv := make([]string, 0, len(b.launcher)+2+len(args))
	argv = append(argv, b.launcher...)
	argv = append(argv, "-c", b.config)
	argv = append(argv, strings.Fields(name)...)
	argv = append(argv, args...)

	b.logger.Debug("running relayer command", zap.Strings("argv", argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Exit status is not part of the reply protocol; keep going and
		// let the reply line decide the outcome.
		b.logger.Debug("relayer process error", zap.Error(err))
	}
	if stderr.Len() > 0 {
		b.logger.Debug("relayer stderr", zap.String("stderr", stderr.String()))
	}

	line := lastLine(stdout.Bytes())
	b.logger.Debug("relayer reply line", zap.ByteString("line", line))

	var reply Reply
	if err := json.Unmarshal(line, &reply); err != nil {
		return Reply{}, &DecodeError{Op: name, Data: line, Err: err}
	}
	return reply, nil
}

// lastLine returns the last non-empty line of the captured output.
func lastLine(out []byte) []byte {
	lines := bytes.Split(out, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if line := bytes.TrimSpace(lines[i]); len(line) > 0 {
			return line
		}
	}
	return nil
}
