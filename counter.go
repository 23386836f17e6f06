package subfreq

import "github.com/corpusdiff/subfreq/internal/bitset"

// bBlockSize bounds each binary-search step's working window, per spec
// §4.7 optimization 2 ("performed blockwise in windows of 1024 entries").
const bBlockSize = 1024

// bCounter finds how many occurrences/documents in B contain a given
// candidate substring, via two bracketing binary searches over B's
// filtered suffix array (C7). Grounded on the CompareInInput1 comparator
// and the blockwise do/while search loop in the reference implementation.
type bCounter struct {
	data []byte  // the full shared buffer; B's suffixes are offsets into it
	sa   []int32 // B's filtered suffix array

	lo int // monotonically non-decreasing across calls (spec §4.7 optimization 1)

	docs       *documentIndex
	doDocument bool
}

func newBCounter(data []byte, sa []int32, docs *documentIndex, doDocument bool) *bCounter {
	return &bCounter{data: data, sa: sa, docs: docs, doDocument: doDocument}
}

// compareSuffixPrefix compares the length-byte prefix of the suffix
// starting at offset against substr (len(substr) == length), capping the
// read at the buffer's end (spec §9: "guard this by capping at |B|").
// Returns <0, 0, >0 like bytes.Compare. A suffix shorter than length that
// matches for its full (truncated) extent sorts before substr, matching
// ordinary prefix-ordering semantics ("ab" < "abc").
func compareSuffixPrefix(data []byte, offset int32, substr []byte) int {
	length := len(substr)
	avail := len(data) - int(offset)
	if avail > length {
		avail = length
	}

	end := int(offset) + avail
	for k := 0; k < avail; k++ {
		a, b := data[int(offset)+k], substr[k]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	_ = end
	if avail < length {
		return -1
	}
	return 0
}

// blockwiseSearch implements the shared do/while-over-1024-entry-windows
// shape used by both the lower- and upper-bound searches: search grows
// into the next block only when the previous block's result landed
// exactly on the block boundary and more suffixes remain.
func blockwiseSearch(sa []int32, data []byte, substr []byte, start int, less func(off int32, substr []byte) bool) int {
	n := len(sa)
	lo := start

	for {
		end := lo + bBlockSize
		if end > n {
			end = n
		}

		l, r := lo, end
		for l < r {
			m := (l + r) / 2
			if less(sa[m], substr) {
				l = m + 1
			} else {
				r = m
			}
		}
		lo = l

		if lo != end || end == n {
			break
		}
	}

	return lo
}

// countInB returns the occurrence/document count of substr in B. combined
// is non-nil in document mode: each matched B suffix's document id is set
// directly into it (the caller has already OR'd in the A-side document
// bits, so combined ends up holding the full cross-corpus document set
// for this candidate, ready for popcount and set-hash).
func (bc *bCounter) countInB(substr []byte, combined *bitset.Set) (rawCount int) {
	lo := blockwiseSearch(bc.sa, bc.data, substr, bc.lo, func(off int32, s []byte) bool {
		return compareSuffixPrefix(bc.data, off, s) < 0
	})
	bc.lo = lo

	hi := blockwiseSearch(bc.sa, bc.data, substr, lo, func(off int32, s []byte) bool {
		return compareSuffixPrefix(bc.data, off, s) == 0
	})

	if bc.doDocument && combined != nil {
		for k := lo; k < hi; k++ {
			combined.SetBit(bc.docs.docID(bc.sa[k]))
		}
	}

	return hi - lo
}
