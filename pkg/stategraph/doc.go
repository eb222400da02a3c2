/*
Package stategraph provides graph-based orchestration for LLM workflows.

# Overview

stategraph is a Go library for building and executing directed acyclic
graphs where nodes perform work and edges define flow. It's designed for
orchestrating multi-step LLM pipelines with fan-out to independent parallel
branches, fan-in synchronization barriers, and conditional routing.

The library is inspired by LangGraph but built for Go with:
  - Type-safe generics for state management
  - Compile-time validation of graph structure
  - Deterministic state merging across parallel branches
  - OpenTelemetry integration for observability

# Basic Usage

Define a state type with a Merge method, create a graph with nodes and
edges, then compile and run:

	type Report struct {
	    Input   string
	    Summary string
	}

	func (r Report) Merge(delta Report) Report {
	    if delta.Input != "" {
	        r.Input = delta.Input
	    }
	    if delta.Summary != "" {
	        r.Summary = delta.Summary
	    }
	    return r
	}

	func summarize(ctx stategraph.Context, r Report) (Report, error) {
	    return Report{Summary: "Summary of: " + r.Input}, nil
	}

	func main() {
	    graph := stategraph.NewGraph[Report]().
	        AddNode("summarize", summarize).
	        AddEdge("summarize", stategraph.END).
	        SetEntry("summarize")

	    compiled, err := graph.Compile()
	    if err != nil {
	        log.Fatal(err)
	    }

	    ctx := stategraph.NewContext(context.Background())
	    result, err := compiled.Run(ctx, Report{Input: "hello"})
	    if err != nil {
	        log.Fatal(err)
	    }
	    fmt.Println(result.Summary)
	}

Nodes return deltas: a state value carrying only the fields the node
produced. The executor merges deltas into the accumulated state; nodes
never mutate shared state directly.

# Fan-out and Fan-in

A node with multiple outgoing edges unblocks all of its targets at once;
the branches execute concurrently and in no defined relative order. A node
targeted by edges from several sources is a barrier: it runs only after
every source has completed and merged.

	graph.AddEdge("summarize", "risks")
	graph.AddEdge("summarize", "opportunities")
	graph.AddEdges([]string{"risks", "opportunities"}, "aggregate")

Branches should write disjoint state fields. When they collide anyway, the
winner is fixed by the graph's topological order (declaration order breaks
ties), never by goroutine timing.

# Conditional Routing

Attach a router and a closed route table to gate a branch:

	const (
	    RouteFound   stategraph.Route = "found"
	    RouteMissing stategraph.Route = "missing"
	)

	graph.AddConditionalEdges("lookup", func(ctx stategraph.Context, s Order) stategraph.Route {
	    if s.Item == "" {
	        return RouteMissing
	    }
	    return RouteFound
	}, map[stategraph.Route]string{
	    RouteFound:   "enrich",
	    RouteMissing: stategraph.END,
	})

The router runs after the node's delta merges and selects exactly one
successor. Routing to END terminates the branch early; a route key missing
from the table fails the run with UnknownRouteError.

# Failure Semantics

Runs are all-or-nothing: a node error (including a model-call failure)
aborts the run and the caller receives the error with the zero state.
The engine never retries, never substitutes defaults, and never returns a
partially populated result.
*/
package stategraph
