package lang

import "iter"

// Walk iterates depth-first over the nodes of results, parents before
// children, yielding each node with its depth. Error results are skipped.
func Walk(results []Result) iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		walk(results, 0, yield)
	}
}

func walk(results []Result, depth int, yield func(int, Node) bool) bool {
	for _, r := range results {
		if r.Err != nil || r.Node == nil {
			continue
		}

		if !yield(depth, r.Node) {
			return false
		}

		if el, ok := r.Node.(*Element); ok {
			if !walk(el.Children, depth+1, yield) {
				return false
			}
		}
	}

	return true
}
