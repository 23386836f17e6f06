package subfreq

// buildLCP implements Kasai's algorithm over an already-filtered suffix
// array, with a stopping rule: the prefix comparison halts as soon as it
// reaches the separator byte, so no LCP entry ever claims a match that
// crosses a document/corpus boundary. Returns an array the same length
// as sa, where result[i] = LCP(data[sa[i]:], data[sa[i+1]:]) and
// result[len(sa)-1] = 0 (spec §4.3).
//
// Grounded on BuildLCPArray in the reference implementation.
func buildLCP(data []byte, sa []int32, sep byte) []int32 {
	n := len(sa)
	result := make([]int32, n)
	if n == 0 {
		return result
	}

	// rank[pos] = index in sa of the suffix starting at pos, or -1 if
	// pos was dropped by the suffix filter (C2).
	rank := make([]int32, len(data))
	for i := range rank {
		rank[i] = -1
	}
	for i, off := range sa {
		rank[off] = int32(i)
	}

	var height int32
	for i := 0; i < len(data); i++ {
		x := rank[i]
		if x == -1 {
			if height > 0 {
				height--
			}
			continue
		}

		if x > 0 {
			j := int(sa[x-1])
			// The shared prefix of the suffix at i is at least as long as
			// the one at i-1, minus 1 -- so resume from height-1 rather
			// than rescanning from zero.
			for i+int(height) < len(data) && j+int(height) < len(data) &&
				data[i+int(height)] != sep &&
				data[i+int(height)] == data[j+int(height)] {
				height++
			}
			result[x-1] = height
		} else {
			height = 0
		}

		if height > 0 {
			height--
		}
	}

	return result
}
