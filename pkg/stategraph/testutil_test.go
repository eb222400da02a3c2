package stategraph

import (
	"context"
)

// Test state types used across tests.

// Counter is a simple state for testing incrementing.
// A delta's non-zero Value overwrites.
type Counter struct {
	Value int
}

func (c Counter) Merge(delta Counter) Counter {
	if delta.Value != 0 {
		c.Value = delta.Value
	}
	return c
}

// Fields is a multi-field state for fan-out, collision, and routing tests.
// Populated delta fields overwrite.
type Fields struct {
	A, B, C, D string
	Route      string
}

func (f Fields) Merge(delta Fields) Fields {
	if delta.A != "" {
		f.A = delta.A
	}
	if delta.B != "" {
		f.B = delta.B
	}
	if delta.C != "" {
		f.C = delta.C
	}
	if delta.D != "" {
		f.D = delta.D
	}
	if delta.Route != "" {
		f.Route = delta.Route
	}
	return f
}

// Helper node functions.

// increment returns a delta with the snapshot's value plus one.
func increment(ctx Context, s Counter) (Counter, error) {
	return Counter{Value: s.Value + 1}, nil
}

// passthrough returns an empty delta.
func passthrough[S State[S]](ctx Context, s S) (S, error) {
	var zero S
	return zero, nil
}

// setA/setB/setC/setD build nodes that write one field.
func setA(v string) NodeFunc[Fields] {
	return func(ctx Context, s Fields) (Fields, error) { return Fields{A: v}, nil }
}

func setB(v string) NodeFunc[Fields] {
	return func(ctx Context, s Fields) (Fields, error) { return Fields{B: v}, nil }
}

func setC(v string) NodeFunc[Fields] {
	return func(ctx Context, s Fields) (Fields, error) { return Fields{C: v}, nil }
}

// makeFailingNode creates a node that returns the given error.
func makeFailingNode(err error) NodeFunc[Fields] {
	return func(ctx Context, s Fields) (Fields, error) {
		return Fields{}, err
	}
}

// makePanicNode creates a node that panics with the given value.
func makePanicNode(value any) NodeFunc[Fields] {
	return func(ctx Context, s Fields) (Fields, error) {
		panic(value)
	}
}

// testCtx creates a simple test context.
func testCtx() Context {
	return NewContext(context.Background())
}
