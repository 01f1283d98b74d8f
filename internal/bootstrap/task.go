package bootstrap

// Task defines a single named step of the bootstrap workflow.
type Task interface {
	// Name returns the unique task name.
	Name() string

	// Deps returns the names of tasks that must complete before this one.
	Deps() []string

	// Run executes the task.
	Run(ctx *Context) error
}

// funcTask is the Task implementation used by the steps package.
type funcTask struct {
	name string
	deps []string
	run  func(ctx *Context) error
}

// NewTask builds a Task from a name, its predecessors, and a run function.
func NewTask(name string, deps []string, run func(ctx *Context) error) Task {
	return &funcTask{name: name, deps: deps, run: run}
}

func (t *funcTask) Name() string   { return t.name }
func (t *funcTask) Deps() []string { return t.deps }

func (t *funcTask) Run(ctx *Context) error { return t.run(ctx) }
