package subfreq

import "sort"

// SuffixArrayBuilder is the black-box external construction primitive
// named in spec §4.1: given N bytes, produce N offsets in ascending
// lexicographic suffix order. Any correct, deterministic suffix-sort
// satisfies the contract (DC3, SA-IS, induced sorting, ...); the core
// never inspects how the array was built — callers may plug in a faster
// construction (see WithSuffixArrayBuilder) without touching C2-C9.
type SuffixArrayBuilder interface {
	// Build returns a permutation of offsets into data such that
	// data[offsets[i]:] <= data[offsets[i+1]:] lexicographically for all
	// i, using the full byte range (no filtering — that's C2's job).
	Build(data []byte) []int32
}

// doublingSuffixArrayBuilder is the default SuffixArrayBuilder: the
// classic Karp-Miller-Rosenberg / Manber-Myers prefix-doubling
// construction, O(n log^2 n). It has no tuning parameters and no
// pathological inputs, which makes it the right default for a black-box
// collaborator spec §4.1 explicitly keeps out of the core's algorithmic
// surface — callers who need asymptotically faster construction (DC3,
// SA-IS) can supply one via WithSuffixArrayBuilder.
type doublingSuffixArrayBuilder struct{}

func (doublingSuffixArrayBuilder) Build(data []byte) []int32 {
	return buildSuffixArrayDoubling(data)
}

func defaultSuffixArrayBuilder() SuffixArrayBuilder {
	return doublingSuffixArrayBuilder{}
}

// buildSuffixArrayDoubling ranks every suffix by its first 2^k bytes,
// doubling k each round, until ranks are unique. Each round re-sorts by
// the pair (rank[i], rank[i+k]) -- the standard prefix-doubling
// recurrence. Ties are broken by rank, so suffixes that run off the end
// of data receive rank -1 for their missing half, correctly sorting
// before any in-bounds suffix.
func buildSuffixArrayDoubling(data []byte) []int32 {
	n := len(data)
	sa := make([]int32, n)
	rank := make([]int32, n)
	next := make([]int32, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int32(data[i])
	}
	if n <= 1 {
		return sa
	}

	secondKey := func(i, k int) int32 {
		if i+k >= n {
			return -1
		}
		return rank[i+k]
	}

	for k := 1; ; k *= 2 {
		sort.Slice(sa, func(a, b int) bool {
			ia, ib := int(sa[a]), int(sa[b])
			if rank[ia] != rank[ib] {
				return rank[ia] < rank[ib]
			}
			return secondKey(ia, k) < secondKey(ib, k)
		})

		next[sa[0]] = 0
		allUnique := true
		for i := 1; i < n; i++ {
			prev, cur := int(sa[i-1]), int(sa[i])
			same := rank[prev] == rank[cur] && secondKey(prev, k) == secondKey(cur, k)
			next[cur] = next[prev]
			if !same {
				next[cur]++
			}
			if next[cur] == next[prev] {
				allUnique = false
			}
		}
		copy(rank, next)

		if allUnique || k >= n {
			break
		}
	}

	return sa
}
