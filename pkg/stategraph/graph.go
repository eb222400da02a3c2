package stategraph

import (
	"fmt"
	"strings"
	"sync"
)

// Graph is a mutable builder for creating execution graphs.
// Use NewGraph to create a new graph, then chain AddNode, AddEdge,
// AddEdges, AddConditionalEdges, and SetEntry calls to define the workflow.
//
// Graph is NOT thread-safe during building. Use a single goroutine
// to construct the graph, then call Compile() to create an immutable
// CompiledGraph that can be safely shared.
//
// Example:
//
//	graph := stategraph.NewGraph[Report]().
//	    AddNode("summarize", summarize).
//	    AddNode("score", score).
//	    AddEdge("summarize", "score").
//	    AddEdge("score", stategraph.END).
//	    SetEntry("summarize")
//
//	compiled, err := graph.Compile()
type Graph[S State[S]] struct {
	mu        sync.RWMutex
	nodes     map[string]NodeFunc[S]
	order     []string // declaration order, breaks topological ties
	edges     map[string][]string
	routers   map[string]*conditional[S]
	entry     string
	buildErrs []error
}

// conditional couples a router function with its static route table.
type conditional[S State[S]] struct {
	router RouterFunc[S]
	routes map[Route]string
}

// NewGraph creates a new graph builder for state type S.
func NewGraph[S State[S]]() *Graph[S] {
	return &Graph[S]{
		nodes:   make(map[string]NodeFunc[S]),
		edges:   make(map[string][]string),
		routers: make(map[string]*conditional[S]),
	}
}

// AddNode adds a named node to the graph.
// Returns the graph for method chaining.
//
// Panics if id is empty, id is the reserved end marker (case-insensitive),
// id contains whitespace, or fn is nil. Registering the same id twice is a
// graph defect rather than API misuse: it is recorded and surfaced by
// Compile() as a DuplicateNodeError.
func (g *Graph[S]) AddNode(id string, fn NodeFunc[S]) *Graph[S] {
	if id == "" {
		panic("stategraph: node ID cannot be empty")
	}

	idLower := strings.ToLower(id)
	if idLower == "end" || idLower == "__end__" {
		panic("stategraph: node ID cannot be reserved word 'END'")
	}

	if strings.ContainsAny(id, " \t\n\r") {
		panic("stategraph: node ID cannot contain whitespace")
	}

	if fn == nil {
		panic("stategraph: node function cannot be nil")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		g.buildErrs = append(g.buildErrs, &DuplicateNodeError{NodeID: id})
		return g
	}

	g.nodes[id] = fn
	g.order = append(g.order, id)
	return g
}

// AddEdge adds an unconditional edge from one node to another.
// The target can be a node ID or stategraph.END.
// Returns the graph for method chaining.
//
// A node with multiple outgoing edges fans out: every target becomes
// independently ready once the node completes. A node targeted by multiple
// edges fans in: it runs only after ALL of its sources have completed.
//
// Edge validation happens at Compile() time, not here.
func (g *Graph[S]) AddEdge(from, to string) *Graph[S] {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges[from] = append(g.edges[from], to)
	return g
}

// AddEdges adds an edge from every source to the target — shorthand for
// declaring a fan-in barrier: the target runs only after all sources have
// completed.
// Returns the graph for method chaining.
func (g *Graph[S]) AddEdges(froms []string, to string) *Graph[S] {
	for _, from := range froms {
		g.AddEdge(from, to)
	}
	return g
}

// AddConditionalEdges attaches a router to a node. After the node's delta
// is merged, the router is invoked on the resulting snapshot and its Route
// is looked up in routes to select the single successor to schedule; the
// node's other possible successors are not scheduled. A route mapped to
// stategraph.END terminates the branch.
// Returns the graph for method chaining.
//
// Panics if router is nil or routes is empty. A node can have either static
// edges or a route table, not both; mixing them fails at Compile() time.
func (g *Graph[S]) AddConditionalEdges(from string, router RouterFunc[S], routes map[Route]string) *Graph[S] {
	if router == nil {
		panic("stategraph: router function cannot be nil")
	}
	if len(routes) == 0 {
		panic("stategraph: route table cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.routers[from]; exists {
		g.buildErrs = append(g.buildErrs, fmt.Errorf("conditional edges for %s registered twice", from))
		return g
	}

	table := make(map[Route]string, len(routes))
	for route, target := range routes {
		table[route] = target
	}
	g.routers[from] = &conditional[S]{router: router, routes: table}
	return g
}

// SetEntry designates the entry point node.
// This must be called before Compile().
// Returns the graph for method chaining.
func (g *Graph[S]) SetEntry(id string) *Graph[S] {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entry = id
	return g
}
