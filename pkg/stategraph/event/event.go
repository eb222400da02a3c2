// Package event provides run-progress events for stategraph executions.
//
// The executor publishes an event when a node starts, completes, or fails,
// and one more when the run finishes. Subscribers receive events on
// buffered channels; delivery is best-effort and never blocks the run.
package event

import "time"

// Type identifies the kind of lifecycle event.
type Type string

// Event types published by the executor.
const (
	TypeNodeStarted   Type = "node.started"
	TypeNodeCompleted Type = "node.completed"
	TypeNodeFailed    Type = "node.failed"
	TypeRunCompleted  Type = "run.completed"
)

// Event is one run-progress notification.
// Events are immutable once created.
type Event struct {
	// Type is the kind of event.
	Type Type
	// RunID identifies the run the event belongs to.
	RunID string
	// NodeID is set for node-level events, empty for run-level ones.
	NodeID string
	// Duration is set for node.completed events.
	Duration time.Duration
	// Nodes is the number of executed nodes, set for run.completed.
	Nodes int
	// Err is set for node.failed and failed run.completed events.
	Err error
	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NodeStarted creates a node.started event.
func NodeStarted(runID, nodeID string) Event {
	return Event{
		Type:      TypeNodeStarted,
		RunID:     runID,
		NodeID:    nodeID,
		Timestamp: time.Now(),
	}
}

// NodeCompleted creates a node.completed event.
func NodeCompleted(runID, nodeID string, duration time.Duration) Event {
	return Event{
		Type:      TypeNodeCompleted,
		RunID:     runID,
		NodeID:    nodeID,
		Duration:  duration,
		Timestamp: time.Now(),
	}
}

// NodeFailed creates a node.failed event.
func NodeFailed(runID, nodeID string, err error) Event {
	return Event{
		Type:      TypeNodeFailed,
		RunID:     runID,
		NodeID:    nodeID,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// RunCompleted creates a run.completed event.
// Err is nil for successful runs.
func RunCompleted(runID string, nodes int, err error) Event {
	return Event{
		Type:      TypeRunCompleted,
		RunID:     runID,
		Nodes:     nodes,
		Err:       err,
		Timestamp: time.Now(),
	}
}
