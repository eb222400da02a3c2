// Package stategraph provides a graph-based LLM workflow orchestration engine.
package stategraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph building and compilation.
var (
	// ErrNoEntryPoint indicates SetEntry() was not called before Compile().
	ErrNoEntryPoint = errors.New("entry point not set")

	// ErrEntryNotFound indicates the entry point references a non-existent node.
	ErrEntryNotFound = errors.New("entry point node not found")

	// ErrNodeNotFound indicates an edge or route references a non-existent node.
	ErrNodeNotFound = errors.New("node not found")

	// ErrCycle indicates the graph contains a cycle.
	ErrCycle = errors.New("graph contains a cycle")

	// ErrUnreachableNode indicates a node is not reachable from the entry point.
	ErrUnreachableNode = errors.New("node unreachable from entry")

	// ErrNoPathToEnd indicates a node has no path to END.
	ErrNoPathToEnd = errors.New("no path to END")

	// ErrConflictingEdges indicates a node has both static edges and a route table.
	ErrConflictingEdges = errors.New("node has both static and conditional edges")
)

// Sentinel errors for execution.
var (
	// ErrNilContext indicates Run() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")
)

// ValidationError aggregates every defect Compile() found in the graph
// definition. Use errors.Is against the sentinel errors above to test for
// a specific defect.
type ValidationError struct {
	// Issues are the individual defects, one error per defect.
	Issues []error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Error()
	}
	return fmt.Sprintf("invalid graph: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the individual defects for errors.Is/As support.
func (e *ValidationError) Unwrap() []error {
	return e.Issues
}

// DuplicateNodeError indicates AddNode was called twice with the same ID.
// It is recorded at build time and surfaced by Compile().
type DuplicateNodeError struct {
	// NodeID is the ID that was registered more than once.
	NodeID string
}

// Error implements the error interface.
func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node ID: %s", e.NodeID)
}

// UnknownRouteError indicates a router returned a key absent from its
// route table.
type UnknownRouteError struct {
	// FromNode is the node whose router misfired.
	FromNode string
	// Returned is the route key the router returned.
	Returned Route
}

// Error implements the error interface.
func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("router from %s returned unknown route %q", e.FromNode, string(e.Returned))
}

// CycleViolationError indicates the executor scheduled a node twice.
// A validated acyclic graph can never trigger this; if it fires, it signals
// an executor bug, not a workflow bug.
type CycleViolationError struct {
	// NodeID is the node that was scheduled a second time.
	NodeID string
}

// Error implements the error interface.
func (e *CycleViolationError) Error() string {
	return fmt.Sprintf("node %s scheduled twice in one run", e.NodeID)
}

// NodeError wraps an error with node context.
type NodeError struct {
	// NodeID is the identifier of the node that failed.
	NodeID string
	// Op is the operation that failed (e.g., "execute").
	Op string
	// Err is the underlying error from the node.
	Err error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("node %s: %s: %v", e.NodeID, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *NodeError) Unwrap() error {
	return e.Err
}

// PanicError captures panic information from node execution.
type PanicError struct {
	// NodeID is the identifier of the node that panicked.
	NodeID string
	// Value is the value passed to panic().
	Value any
	// Stack is the full stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("node %s panicked: %v", e.NodeID, e.Value)
}

// CancellationError captures which node execution was cancelled at.
type CancellationError struct {
	// NodeID is the node that was about to execute.
	NodeID string
	// Cause is the underlying cancellation cause.
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("cancelled before node %s: %v", e.NodeID, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}
