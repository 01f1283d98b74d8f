package shell

import (
	"context"
	"strings"
	"sync"
)

// Recorder is a Runner for tests. It records every invocation in order and
// can be scripted to fail on a specific command.
type Recorder struct {
	mu sync.Mutex

	// Commands holds every invocation in execution order.
	Commands []Command

	// FailOn makes Run return FailErr for the first command whose String()
	// contains this substring. Empty means never fail.
	FailOn string

	// FailErr is the error returned when FailOn matches.
	FailErr error
}

// Run implements the Runner interface.
func (r *Recorder) Run(_ context.Context, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, cmd)
	if r.FailOn != "" && strings.Contains(cmd.String(), r.FailOn) {
		return r.FailErr
	}
	return nil
}

// Strings returns the recorded invocations rendered as command lines.
func (r *Recorder) Strings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.String()
	}
	return out
}
