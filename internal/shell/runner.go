// Package shell abstracts the external commands the bootstrap workflow
// shells out to (pip, npm, the framework's manage command).
//
// Every bootstrap step is a fatal, non-retried shell invocation, so the
// Runner seam is the single place where process spawning happens and the
// single place tests substitute a fake.
package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external command invocation.
type Command struct {
	// Name is the binary name, resolved via PATH.
	Name string

	// Args are the command-line arguments, not including the binary name.
	Args []string

	// Dir is the working directory. Empty means the caller's cwd.
	Dir string

	// Env holds extra KEY=VALUE pairs appended to the inherited environment.
	Env []string
}

// String renders the invocation for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands.
type Runner interface {
	// Run executes the command and blocks until it exits.
	// A non-zero exit status is returned as an error.
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands via os/exec, inheriting stdout and stderr so
// operator-visible failure output is whatever the subcommand printed.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements the Runner interface.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	// #nosec G204 - commands come from the fixed step definitions, not user input
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Env = os.Environ()
	c.Env = append(c.Env, cmd.Env...)

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.String(), err)
	}
	return nil
}
