// Package bootstrap runs the environment-bootstrap workflow as an explicit
// dependency graph of named tasks.
//
// The workflow that used to live in a Makefile is expressed here as Task
// values with declared predecessors, resolved into a topological order and
// executed strictly sequentially. Execution is fail-fast: the first task
// error aborts the remainder of the run. There are no retries and no
// rollback; the discipline is destroy-and-rebuild, and concurrent runs
// against the same environment are not supported.
//
// Concrete tasks live in the steps subpackage.
package bootstrap
