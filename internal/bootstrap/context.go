package bootstrap

import (
	"context"
	"time"

	"github.com/addonhub/devctl/internal/config"
	"github.com/addonhub/devctl/internal/shell"
)

// TaskResult records one completed task.
type TaskResult struct {
	Name     string
	Duration time.Duration
}

// State holds the in-memory record of a single bootstrap run.
// It is not persisted; every invocation starts from scratch.
type State struct {
	Completed []TaskResult
}

// NewState creates an empty run state.
func NewState() *State {
	return &State{}
}

// MarkCompleted appends a task to the completion record.
func (s *State) MarkCompleted(name string, d time.Duration) {
	s.Completed = append(s.Completed, TaskResult{Name: name, Duration: d})
}

// CompletedNames returns the completed task names in execution order.
func (s *State) CompletedNames() []string {
	names := make([]string, len(s.Completed))
	for i, r := range s.Completed {
		names[i] = r.Name
	}
	return names
}

// Context wraps the dependencies and state shared by all tasks in a run.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Shell    shell.Runner
	Observer Observer
}

// NewContext creates a run context. A nil observer selects the zap-backed
// default.
func NewContext(ctx context.Context, cfg *config.Config, runner shell.Runner, observer Observer) *Context {
	if observer == nil {
		observer = NewDefaultObserver()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Shell:    runner,
		Observer: observer,
	}
}

// RunCommand executes an external command through the context's runner,
// logging the invocation first.
func (c *Context) RunCommand(cmd shell.Command) error {
	c.Observer.Printf("exec: %s", cmd.String())
	return c.Shell.Run(c, cmd)
}
