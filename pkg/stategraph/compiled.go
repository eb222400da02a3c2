package stategraph

// CompiledGraph is an immutable, executable graph.
// It is created by calling Compile() on a Graph builder.
//
// CompiledGraph is thread-safe and can be used concurrently for multiple
// Run() calls. The graph structure cannot be modified after compilation.
type CompiledGraph[S State[S]] struct {
	nodes   map[string]NodeFunc[S]
	edges   map[string][]string
	routers map[string]*conditional[S]
	entry   string

	// Pre-computed at compile time.
	topo         []string            // deterministic topological order
	topoIndex    map[string]int      // node ID -> position in topo
	predecessors map[string][]string // declared predecessors (fan-in barrier)
	ancestors    map[string]map[string]bool
}

// EntryPoint returns the entry node ID.
func (cg *CompiledGraph[S]) EntryPoint() string {
	return cg.entry
}

// NodeIDs returns all node identifiers in deterministic topological order.
func (cg *CompiledGraph[S]) NodeIDs() []string {
	return append([]string(nil), cg.topo...)
}

// HasNode checks if a node exists in the graph.
func (cg *CompiledGraph[S]) HasNode(id string) bool {
	_, exists := cg.nodes[id]
	return exists
}

// Successors returns the static edge targets of the given node.
// Route-table targets are not included (those are runtime-selected).
func (cg *CompiledGraph[S]) Successors(id string) []string {
	return append([]string(nil), cg.edges[id]...)
}

// Predecessors returns the declared predecessors of the given node: the
// sources of its incoming static edges plus any routing node that can
// select it. A node with more than one predecessor is a fan-in barrier.
func (cg *CompiledGraph[S]) Predecessors(id string) []string {
	return append([]string(nil), cg.predecessors[id]...)
}

// IsConditional returns true if the node has a route table.
func (cg *CompiledGraph[S]) IsConditional(id string) bool {
	_, exists := cg.routers[id]
	return exists
}

// Routes returns the route table for a conditional node, or nil.
func (cg *CompiledGraph[S]) Routes(id string) map[Route]string {
	cond, exists := cg.routers[id]
	if !exists {
		return nil
	}
	routes := make(map[Route]string, len(cond.routes))
	for route, target := range cond.routes {
		routes[route] = target
	}
	return routes
}

// getNode returns the node function for the given ID.
func (cg *CompiledGraph[S]) getNode(id string) (NodeFunc[S], bool) {
	fn, exists := cg.nodes[id]
	return fn, exists
}
