package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a version-control command and returns its captured
// standard output. It is the only contact surface between this package
// and the git executable.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CLIRunner runs the git executable against a repository path.
type CLIRunner struct {
	RepoPath string
}

// Compile-time interface conformance check.
var _ Runner = CLIRunner{}

// Run executes git with the given arguments and returns trimmed
// standard output. On failure the captured standard error text is
// folded into the returned error.
func (r CLIRunner) Run(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", r.RepoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
