package backend

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dots/pkg/logging"
)

// Step is one external command in a backend operation
type Step struct {
	// Name is a short label such as "commit" or "push"
	Name string `json:"name"`

	Binary string   `json:"binary"`
	Args   []string `json:"args"`

	// Dir is the working directory, the repository root
	Dir string `json:"dir"`
}

// CommandLine returns the step as it would be typed in a shell
func (s Step) CommandLine() string {
	if len(s.Args) == 0 {
		return s.Binary
	}
	return s.Binary + " " + strings.Join(s.Args, " ")
}

// Runner executes a single step and blocks until it exits. A non-nil error
// means the process could not start or exited non-zero.
type Runner interface {
	Run(ctx context.Context, step Step) error
}

// ExecRunner runs steps as child processes
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the current process's standard streams
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, step Step) error {
	logging.LogCommand(step.Binary, step.Args)

	cmd := exec.CommandContext(ctx, step.Binary, step.Args...)
	cmd.Dir = step.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run()
}
