package stategraph

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/stategraph/pkg/stategraph/event"
	"github.com/randalmurphal/stategraph/pkg/stategraph/observability"
)

// nodeResult carries a completed node's delta back to the scheduler.
type nodeResult[S State[S]] struct {
	id       string
	delta    S
	err      error
	duration time.Duration
}

// Run executes the graph with the given initial state.
// Returns the final state and any error encountered.
//
// Execution flow:
//  1. The entry node is dispatched with the initial state.
//  2. A node becomes ready once ALL of its declared predecessors have
//     completed and merged (fan-in barrier). Ready nodes run concurrently.
//  3. Each node receives a snapshot: the initial state merged with the
//     deltas of its completed ancestors, folded in the graph's topological
//     order. Sibling branches never observe each other's writes.
//  4. After a routing node's delta merges, its router selects exactly one
//     successor from the route table; the node's other possible successors
//     are not scheduled.
//  5. The run ends when no node is running or ready. The final state is the
//     initial state merged with every executed node's delta, again in
//     topological order — so when two branches write the same field, the
//     winner is the node later in topological order (declaration order
//     breaking ties), fixed per graph rather than per run.
//
// A failing node aborts the run: the caller receives the error and the zero
// state, never a partial result. Node errors are not retried or swallowed.
func (cg *CompiledGraph[S]) Run(ctx Context, initial S, opts ...RunOption) (result S, runErr error) {
	var zero S
	if ctx == nil {
		return zero, ErrNilContext
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := ctx.RunID()
	startTime := time.Now()

	observability.LogRunStart(ctx.Logger(), runID)

	var execCtx context.Context = ctx
	var runSpan trace.Span
	if cfg.tracingEnabled {
		execCtx, runSpan = cfg.spans.StartRunSpan(ctx, "stategraph", runID)
		defer func() {
			cfg.spans.EndSpanWithError(runSpan, runErr)
		}()
	}

	var nodeCount int
	result, nodeCount, runErr = cg.schedule(execCtx, ctx, initial, &cfg)

	duration := time.Since(startTime)
	durationMs := float64(duration.Milliseconds())

	cfg.metrics.RecordGraphRun(ctx, runErr == nil, duration)
	if cfg.bus != nil {
		cfg.bus.Publish(event.RunCompleted(runID, nodeCount, runErr))
	}

	if runErr != nil {
		lastNode := ""
		var nodeErr *NodeError
		var cancelErr *CancellationError
		if errors.As(runErr, &nodeErr) {
			lastNode = nodeErr.NodeID
		} else if errors.As(runErr, &cancelErr) {
			lastNode = cancelErr.NodeID
		}
		observability.LogRunError(ctx.Logger(), runID, runErr, durationMs, lastNode)
		return zero, runErr
	}

	observability.LogRunComplete(ctx.Logger(), runID, durationMs, nodeCount)
	return result, nil
}

// schedule walks the graph frontier: it dispatches ready nodes onto
// goroutines, collects their deltas, and releases successors whose
// predecessor barriers are satisfied. Delta bookkeeping happens only on
// this goroutine, so merges are naturally serialized.
func (cg *CompiledGraph[S]) schedule(tracingCtx context.Context, fgCtx Context, initial S, cfg *runConfig) (S, int, error) {
	var zero S

	// Outstanding predecessor completions per node. The entry starts at zero.
	remaining := make(map[string]int, len(cg.topo))
	for id, preds := range cg.predecessors {
		remaining[id] = len(preds)
	}

	deltas := make([]S, len(cg.topo))
	completed := make([]bool, len(cg.topo))
	scheduled := make(map[string]bool, len(cg.topo))

	results := make(chan nodeResult[S], len(cg.topo))
	var sem chan struct{}
	if cfg.maxConcurrency > 0 {
		sem = make(chan struct{}, cfg.maxConcurrency)
	}

	// fold merges the deltas of completed nodes selected by keep, in
	// topological order, over the initial state.
	fold := func(keep func(id string) bool) S {
		state := initial
		for i, id := range cg.topo {
			if completed[i] && keep(id) {
				state = state.Merge(deltas[i])
			}
		}
		return state
	}

	inFlight := 0
	dispatch := func(id string) error {
		if scheduled[id] {
			return &CycleViolationError{NodeID: id}
		}
		scheduled[id] = true

		anc := cg.ancestors[id]
		snapshot := fold(func(nid string) bool { return anc[nid] })

		inFlight++
		go cg.executeAsync(tracingCtx, fgCtx, id, snapshot, cfg, sem, results)
		return nil
	}

	if err := dispatch(cg.entry); err != nil {
		return zero, 0, err
	}

	nodeCount := 0
	for inFlight > 0 {
		res := <-results
		inFlight--

		if res.err != nil {
			return zero, nodeCount, res.err
		}

		idx := cg.topoIndex[res.id]
		deltas[idx] = res.delta
		completed[idx] = true
		nodeCount++

		// Release successors: every static target, or the single routed one.
		if cond, ok := cg.routers[res.id]; ok {
			anc := cg.ancestors[res.id]
			routed := fold(func(nid string) bool { return anc[nid] || nid == res.id })

			routerCtx := fgCtx
			if ec, ok := fgCtx.(*executionContext); ok {
				routerCtx = ec.withNodeID(res.id)
			}

			route := cond.router(routerCtx, routed)
			target, known := cond.routes[route]
			if !known {
				return zero, nodeCount, &UnknownRouteError{FromNode: res.id, Returned: route}
			}
			fgCtx.Logger().Debug("route selected",
				"node_id", res.id, "route", string(route), "target", target)

			if target != END {
				remaining[target]--
				if remaining[target] == 0 {
					if err := dispatch(target); err != nil {
						return zero, nodeCount, err
					}
				}
			}
		} else {
			for _, to := range cg.edges[res.id] {
				if to == END {
					continue
				}
				remaining[to]--
				if remaining[to] == 0 {
					if err := dispatch(to); err != nil {
						return zero, nodeCount, err
					}
				}
			}
		}
	}

	return fold(func(string) bool { return true }), nodeCount, nil
}

// executeAsync runs one node on its own goroutine and reports the result.
// The results channel is buffered to the node count, so sends never block
// even when the scheduler has already bailed out on another node's error.
func (cg *CompiledGraph[S]) executeAsync(
	tracingCtx context.Context,
	fgCtx Context,
	id string,
	snapshot S,
	cfg *runConfig,
	sem chan struct{},
	results chan<- nodeResult[S],
) {
	if sem != nil {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
		case <-fgCtx.Done():
			results <- nodeResult[S]{id: id, err: &CancellationError{NodeID: id, Cause: fgCtx.Err()}}
			return
		}
	}

	// Check for cancellation before executing the node.
	select {
	case <-fgCtx.Done():
		results <- nodeResult[S]{id: id, err: &CancellationError{NodeID: id, Cause: fgCtx.Err()}}
		return
	default:
	}

	observability.LogNodeStart(fgCtx.Logger(), id)
	if cfg.bus != nil {
		cfg.bus.Publish(event.NodeStarted(fgCtx.RunID(), id))
	}

	nodeTracingCtx := tracingCtx
	var nodeSpan trace.Span
	if cfg.tracingEnabled {
		nodeTracingCtx, nodeSpan = cfg.spans.StartNodeSpan(tracingCtx, id)
	}

	nodeStart := time.Now()
	delta, err := cg.executeNode(fgCtx, id, snapshot)
	nodeDuration := time.Since(nodeStart)

	cfg.metrics.RecordNodeExecution(nodeTracingCtx, id, nodeDuration, err)
	if cfg.tracingEnabled {
		cfg.spans.EndSpanWithError(nodeSpan, err)
	}

	if err != nil {
		observability.LogNodeError(fgCtx.Logger(), id, err)
		if cfg.bus != nil {
			cfg.bus.Publish(event.NodeFailed(fgCtx.RunID(), id, err))
		}
		results <- nodeResult[S]{id: id, err: err, duration: nodeDuration}
		return
	}

	observability.LogNodeComplete(fgCtx.Logger(), id, float64(nodeDuration.Milliseconds()))
	if cfg.bus != nil {
		cfg.bus.Publish(event.NodeCompleted(fgCtx.RunID(), id, nodeDuration))
	}

	results <- nodeResult[S]{id: id, delta: delta, duration: nodeDuration}
}

// executeNode executes a single node with panic recovery.
// Returns the node's delta and any error (including wrapped panics).
func (cg *CompiledGraph[S]) executeNode(ctx Context, nodeID string, snapshot S) (delta S, err error) {
	fn, exists := cg.getNode(nodeID)
	if !exists {
		// This shouldn't happen if compilation was successful.
		return delta, &NodeError{
			NodeID: nodeID,
			Op:     "lookup",
			Err:    fmt.Errorf("node not found: %s", nodeID),
		}
	}

	nodeCtx := ctx
	if ec, ok := ctx.(*executionContext); ok {
		nodeCtx = ec.withNodeID(nodeID)
	}

	defer func() {
		if r := recover(); r != nil {
			var zero S
			delta = zero
			err = &PanicError{
				NodeID: nodeID,
				Value:  r,
				Stack:  string(debug.Stack()),
			}
		}
	}()

	delta, err = fn(nodeCtx, snapshot)
	if err != nil {
		var zero S
		return zero, &NodeError{
			NodeID: nodeID,
			Op:     "execute",
			Err:    err,
		}
	}

	return delta, nil
}
