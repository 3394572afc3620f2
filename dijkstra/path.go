package dijkstra

import "fmt"

// ReconstructPath walks prev backward from destination and returns the node
// sequence source…destination inclusive.
//
// prev is a predecessor table indexed by node id (index 0 unused), as
// returned by Result.Predecessors.
//
// Returns:
//
//   - path, true, nil:  a path exists; path[0] == source, path[len-1] == destination.
//   - nil, false, nil:  no path; the backward walk ended on a node other than
//     source (this includes an unreachable destination).
//   - nil, false, err:  invalid input (ErrInvalidNodeCount, ErrInvalidNodeID,
//     ErrMalformedPredecessors).
//
// source == destination always yields [source], regardless of prev.
//
// Complexity: O(path length), bounded by n.
func ReconstructPath(prev []int, source, destination int) ([]int, bool, error) {
	n := len(prev) - 1
	if n < 1 {
		return nil, false, fmt.Errorf("%w: predecessor table has %d entries", ErrInvalidNodeCount, len(prev))
	}
	if source < 1 || source > n {
		return nil, false, fmt.Errorf("%w: source %d (range 1..%d)", ErrInvalidNodeID, source, n)
	}
	if destination < 1 || destination > n {
		return nil, false, fmt.Errorf("%w: destination %d (range 1..%d)", ErrInvalidNodeID, destination, n)
	}

	if source == destination {
		return []int{source}, true, nil
	}

	var path []int
	for node := destination; node != NoPredecessor; node = prev[node] {
		if node < 1 || node > n {
			return nil, false, fmt.Errorf("%w: entry %d out of range", ErrMalformedPredecessors, node)
		}
		// A simple path visits each node at most once.
		if len(path) == n {
			return nil, false, fmt.Errorf("%w: cycle reached from %d", ErrMalformedPredecessors, destination)
		}
		path = append(path, node)
	}

	if path[len(path)-1] != source {
		return nil, false, nil
	}

	// Reverse in place: the walk collected destination→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true, nil
}
