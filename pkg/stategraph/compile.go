package stategraph

import (
	"fmt"
	"sort"
)

// Compile validates the graph and creates an executable CompiledGraph.
// Returns a *ValidationError describing every defect if validation fails.
//
// Validation checks:
//  1. No duplicate node registrations
//  2. Entry point set and referencing an existing node
//  3. All edge sources and targets reference existing nodes (or END)
//  4. All route-table targets reference existing nodes (or END)
//  5. No node mixes static edges with a route table
//  6. The graph is acyclic over the union of static and route edges
//  7. Every node is reachable from the entry point
//  8. Every node has a path to END
//
// Compilation is pure: the same Graph compiles to equivalent executables,
// and the builder is left untouched.
func (g *Graph[S]) Compile() (*CompiledGraph[S], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	issues := append([]error(nil), g.buildErrs...)

	if g.entry == "" {
		issues = append(issues, ErrNoEntryPoint)
	} else if _, exists := g.nodes[g.entry]; !exists {
		issues = append(issues, fmt.Errorf("%w: %s", ErrEntryNotFound, g.entry))
	}

	for from, targets := range g.edges {
		if _, exists := g.nodes[from]; !exists {
			issues = append(issues, fmt.Errorf("%w: edge source '%s' does not exist", ErrNodeNotFound, from))
		}
		if _, hasRouter := g.routers[from]; hasRouter {
			issues = append(issues, fmt.Errorf("%w: %s", ErrConflictingEdges, from))
		}
		for _, to := range targets {
			if to != END {
				if _, exists := g.nodes[to]; !exists {
					issues = append(issues, fmt.Errorf("%w: edge target '%s' does not exist", ErrNodeNotFound, to))
				}
			}
		}
	}

	for from, cond := range g.routers {
		if _, exists := g.nodes[from]; !exists {
			issues = append(issues, fmt.Errorf("%w: conditional edge source '%s' does not exist", ErrNodeNotFound, from))
		}
		for route, target := range cond.routes {
			if target != END {
				if _, exists := g.nodes[target]; !exists {
					issues = append(issues, fmt.Errorf("%w: route %q target '%s' does not exist", ErrNodeNotFound, string(route), target))
				}
			}
		}
	}

	// Structural checks only make sense once every reference resolves.
	if len(issues) == 0 {
		topo, cyclic := g.topoOrder()
		if len(cyclic) > 0 {
			sort.Strings(cyclic)
			issues = append(issues, fmt.Errorf("%w: involving %v", ErrCycle, cyclic))
		} else {
			for _, id := range g.unreachableNodes() {
				issues = append(issues, fmt.Errorf("%w: %s", ErrUnreachableNode, id))
			}
			for _, id := range g.nodesWithoutPathToEnd() {
				issues = append(issues, fmt.Errorf("%w: from node %s", ErrNoPathToEnd, id))
			}
			if len(issues) == 0 {
				return g.build(topo), nil
			}
		}
	}

	return nil, &ValidationError{Issues: issues}
}

// successorsOf returns every possible successor of a node: static edge
// targets plus every route-table target. END is excluded.
func (g *Graph[S]) successorsOf(id string) []string {
	var out []string
	for _, to := range g.edges[id] {
		if to != END {
			out = append(out, to)
		}
	}
	if cond, ok := g.routers[id]; ok {
		targets := make([]string, 0, len(cond.routes))
		for _, to := range cond.routes {
			if to != END {
				targets = append(targets, to)
			}
		}
		// Map iteration order is random; keep traversal deterministic.
		sort.Strings(targets)
		out = append(out, targets...)
	}
	return out
}

// topoOrder computes a deterministic topological order over the union of
// static and route edges using Kahn's algorithm. Ties are broken by node
// declaration order. The second return value lists the nodes left on any
// cycle, empty when the graph is acyclic.
func (g *Graph[S]) topoOrder() ([]string, []string) {
	indegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		indegree[id] = 0
	}
	for id := range g.nodes {
		for _, to := range g.successorsOf(id) {
			indegree[to]++
		}
	}

	declared := make(map[string]int, len(g.order))
	for i, id := range g.order {
		declared[id] = i
	}

	// ready is kept sorted by declaration order.
	var ready []string
	for _, id := range g.order {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	topo := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		topo = append(topo, id)

		for _, to := range g.successorsOf(id) {
			indegree[to]--
			if indegree[to] == 0 {
				ready = append(ready, to)
				sort.Slice(ready, func(i, j int) bool {
					return declared[ready[i]] < declared[ready[j]]
				})
			}
		}
	}

	if len(topo) < len(g.nodes) {
		var cyclic []string
		for id, deg := range indegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		return nil, cyclic
	}

	return topo, nil
}

// unreachableNodes returns the nodes not reachable from the entry point,
// in declaration order.
func (g *Graph[S]) unreachableNodes() []string {
	reachable := make(map[string]bool, len(g.nodes))
	queue := []string{g.entry}
	reachable[g.entry] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, to := range g.successorsOf(current) {
			if !reachable[to] {
				reachable[to] = true
				queue = append(queue, to)
			}
		}
	}

	var missing []string
	for _, id := range g.order {
		if !reachable[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// nodesWithoutPathToEnd returns the nodes that cannot reach END via any
// combination of static and route edges, in declaration order.
func (g *Graph[S]) nodesWithoutPathToEnd() []string {
	canReach := make(map[string]bool, len(g.nodes))

	terminates := func(id string) bool {
		for _, to := range g.edges[id] {
			if to == END || canReach[to] {
				return true
			}
		}
		if cond, ok := g.routers[id]; ok {
			for _, to := range cond.routes {
				if to == END || canReach[to] {
					return true
				}
			}
		}
		return false
	}

	// Propagate reverse reachability until a fixed point.
	for changed := true; changed; {
		changed = false
		for id := range g.nodes {
			if !canReach[id] && terminates(id) {
				canReach[id] = true
				changed = true
			}
		}
	}

	var missing []string
	for _, id := range g.order {
		if !canReach[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// build assembles the immutable CompiledGraph from the validated builder
// state and the deterministic topological order.
func (g *Graph[S]) build(topo []string) *CompiledGraph[S] {
	nodes := make(map[string]NodeFunc[S], len(g.nodes))
	for id, fn := range g.nodes {
		nodes[id] = fn
	}

	edges := make(map[string][]string, len(g.edges))
	for from, targets := range g.edges {
		edges[from] = append([]string(nil), targets...)
	}

	routers := make(map[string]*conditional[S], len(g.routers))
	for from, cond := range g.routers {
		routes := make(map[Route]string, len(cond.routes))
		for route, target := range cond.routes {
			routes[route] = target
		}
		routers[from] = &conditional[S]{router: cond.router, routes: routes}
	}

	topoIndex := make(map[string]int, len(topo))
	for i, id := range topo {
		topoIndex[id] = i
	}

	// Predecessor counts drive fan-in readiness: a node runs only after
	// every declared predecessor (static source or routing source) has
	// completed or, for routing sources, routed to it.
	predecessors := make(map[string][]string, len(g.nodes))
	addPred := func(to, from string) {
		if to != END {
			predecessors[to] = append(predecessors[to], from)
		}
	}
	for from, targets := range edges {
		for _, to := range targets {
			addPred(to, from)
		}
	}
	for from, cond := range routers {
		seen := make(map[string]bool)
		for _, to := range cond.routes {
			if !seen[to] {
				seen[to] = true
				addPred(to, from)
			}
		}
	}

	// Transitive ancestors of each node, used to build per-node snapshots.
	ancestors := make(map[string]map[string]bool, len(topo))
	for _, id := range topo {
		set := make(map[string]bool)
		for _, pred := range predecessors[id] {
			set[pred] = true
			for anc := range ancestors[pred] {
				set[anc] = true
			}
		}
		ancestors[id] = set
	}

	return &CompiledGraph[S]{
		nodes:        nodes,
		edges:        edges,
		routers:      routers,
		entry:        g.entry,
		topo:         append([]string(nil), topo...),
		topoIndex:    topoIndex,
		predecessors: predecessors,
		ancestors:    ancestors,
	}
}
