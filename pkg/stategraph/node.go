package stategraph

// END is the terminal marker.
// Use this as an edge or route target to indicate the branch terminates.
const END = "__end__"

// State is the contract workflow state types must satisfy.
//
// Nodes return partial deltas: a State value with only the fields they
// computed populated. The executor folds deltas into the accumulated state
// by calling Merge, so Merge must return a copy of the receiver with the
// delta's populated fields overwriting the receiver's and everything else
// untouched. Merging the zero value must be an identity operation.
//
// Example:
//
//	func (s Report) Merge(delta Report) Report {
//	    if delta.Summary != "" {
//	        s.Summary = delta.Summary
//	    }
//	    if delta.Score != nil {
//	        s.Score = delta.Score
//	    }
//	    return s
//	}
type State[S any] interface {
	Merge(delta S) S
}

// NodeFunc is the signature for all node functions.
// A node receives the execution context and a snapshot of the accumulated
// state, and returns a delta containing only the fields it produced.
//
// The snapshot is passed by value and must not be retained or mutated;
// the executor merges the returned delta itself.
//
// Example:
//
//	func summarize(ctx stategraph.Context, s Report) (Report, error) {
//	    return Report{Summary: "..."}, nil
//	}
type NodeFunc[S State[S]] func(ctx Context, state S) (S, error)

// Route is a key returned by a RouterFunc and looked up in the route table
// registered with AddConditionalEdges. Workflows should declare their route
// keys as a closed set of constants.
type Route string

// RouterFunc selects the next node after a conditional node completes.
// It receives the state snapshot that includes the node's own merged delta.
// The returned Route is looked up in the route table; a key absent from the
// table fails the run with UnknownRouteError. A route mapped to END
// terminates the branch.
//
// Routers must be pure: they select control flow and never produce a state
// update.
type RouterFunc[S State[S]] func(ctx Context, state S) Route
