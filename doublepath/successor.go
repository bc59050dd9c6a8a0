package doublepath

import "github.com/routeloop/routeloop/graph"

// buildSuccessors inverts a predecessor tree into a node -> direct-children
// map, computed once per Search invocation and reused across every
// candidate's subtree prune.
func buildSuccessors(prev map[graph.NodeId]graph.NodeId) map[graph.NodeId][]graph.NodeId {
	successors := make(map[graph.NodeId][]graph.NodeId, len(prev))
	for child, parent := range prev {
		successors[parent] = append(successors[parent], child)
	}

	return successors
}

// collectSubtree returns root and every descendant of root in successors,
// via an iterative push/visit/pop stack walk rather than recursion, since
// the subtree can be arbitrarily deep and this walk runs once per bracket
// update.
func collectSubtree(successors map[graph.NodeId][]graph.NodeId, root graph.NodeId) []graph.NodeId {
	stack := []graph.NodeId{root}
	var out []graph.NodeId

	for len(stack) > 0 {
		n := len(stack) - 1
		v := stack[n]
		stack = stack[:n]

		out = append(out, v)
		stack = append(stack, successors[v]...)
	}

	return out
}
