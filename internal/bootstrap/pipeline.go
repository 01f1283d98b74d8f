package bootstrap

import (
	"fmt"
	"time"
)

// Pipeline holds the registered tasks of the bootstrap workflow.
type Pipeline struct {
	tasks map[string]Task
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{tasks: make(map[string]Task)}
}

// Register adds a task. Registering two tasks with the same name is an error.
func (p *Pipeline) Register(tasks ...Task) error {
	for _, t := range tasks {
		if _, exists := p.tasks[t.Name()]; exists {
			return fmt.Errorf("task %q registered twice", t.Name())
		}
		p.tasks[t.Name()] = t
	}
	return nil
}

// Resolve returns the tasks needed to run the given targets, dependencies
// first, each task at most once. The order is deterministic: dependencies
// are visited in their declared order, targets in argument order.
func (p *Pipeline) Resolve(targets ...string) ([]Task, error) {
	var order []Task
	done := make(map[string]bool)
	visiting := make(map[string]bool)

	var visit func(name string) error
	visit = func(name string) error {
		if done[name] {
			return nil
		}
		if visiting[name] {
			return fmt.Errorf("dependency cycle through task %q", name)
		}
		task, ok := p.tasks[name]
		if !ok {
			return fmt.Errorf("unknown task %q", name)
		}

		visiting[name] = true
		for _, dep := range task.Deps() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		visiting[name] = false

		done[name] = true
		order = append(order, task)
		return nil
	}

	for _, target := range targets {
		if err := visit(target); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Run resolves the targets and executes the resulting sequence.
//
// Execution is strictly sequential and fail-fast: the first task error is
// returned wrapped with the task name and no later task runs. Completed
// tasks are recorded in ctx.State.
func (p *Pipeline) Run(ctx *Context, targets ...string) error {
	order, err := p.Resolve(targets...)
	if err != nil {
		return err
	}
	return p.runSequence(ctx, order)
}

// RunOnly executes exactly the named tasks in the given order, without
// dependency expansion. Used for the single-step entry points, where the
// operator owns the preconditions.
func (p *Pipeline) RunOnly(ctx *Context, names ...string) error {
	order := make([]Task, 0, len(names))
	for _, name := range names {
		task, ok := p.tasks[name]
		if !ok {
			return fmt.Errorf("unknown task %q", name)
		}
		order = append(order, task)
	}
	return p.runSequence(ctx, order)
}

func (p *Pipeline) runSequence(ctx *Context, order []Task) error {
	start := time.Now()
	ctx.Observer.Printf("Running %d tasks...", len(order))

	for i, task := range order {
		taskStart := time.Now()
		label := fmt.Sprintf("%s (%d/%d)", task.Name(), i+1, len(order))

		LogTaskStart(ctx.Observer, label)

		if err := task.Run(ctx); err != nil {
			LogTaskFailed(ctx.Observer, label, err)
			recordTaskRun(task.Name(), "failure", time.Since(taskStart))
			return fmt.Errorf("task %s failed: %w", task.Name(), err)
		}

		elapsed := time.Since(taskStart)
		ctx.State.MarkCompleted(task.Name(), elapsed)
		recordTaskRun(task.Name(), "success", elapsed)
		LogTaskComplete(ctx.Observer, label, elapsed)
	}

	ctx.Observer.Printf("All tasks completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
