package backend_test

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/arthur-debert/dots/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	t.Run("inherits streams and working directory", func(t *testing.T) {
		dir := t.TempDir()
		var stdout bytes.Buffer
		runner := &backend.ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

		err := runner.Run(context.Background(), backend.Step{
			Name:   "pwd",
			Binary: "sh",
			Args:   []string{"-c", "pwd"},
			Dir:    dir,
		})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), dir[len(dir)-8:])
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		runner := &backend.ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := runner.Run(context.Background(), backend.Step{
			Name:   "fail",
			Binary: "sh",
			Args:   []string{"-c", "exit 3"},
		})
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		runner := &backend.ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		err := runner.Run(context.Background(), backend.Step{
			Name:   "missing",
			Binary: "dots-no-such-binary",
		})
		assert.Error(t, err)
	})
}

func TestStepCommandLine(t *testing.T) {
	assert.Equal(t, "git", backend.Step{Binary: "git"}.CommandLine())
	assert.Equal(t, "git push origin master", backend.Step{Binary: "git", Args: []string{"push", "origin", "master"}}.CommandLine())
}
