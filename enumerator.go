package subfreq

import "github.com/corpusdiff/subfreq/internal/bitset"

// candidate is a maximal repeated substring emitted by the enumerator,
// before scoring and admission (GLOSSARY "Candidate").
type candidate struct {
	offset int32 // first_occurrence: min(S[k]) over the active window
	length int32
	count  int // raw occurrence count; meaningless (ignored) in document mode

	// docsA is non-nil only in document mode: a snapshot of this
	// candidate's window-document set at the time it was generated,
	// drawn from the enumerator's scratch pool. Valid until the next
	// window starts (the pool slot is reused then), which is always
	// after this candidate has been handed to emit.
	docsA *bitset.Set
}

// enumerateCandidates walks A's LCP array left to right. Within one
// window (a contiguous run of suffix-array entries sharing a growing
// common prefix), candidates are generated longest-first, exactly as
// spec §4.6 describes: length starts at prefix and is decremented after
// each step. The B-counter (C7), however, requires candidates to arrive
// in ascending lexicographic order so its lower bound can be reused
// monotonically across calls (spec §4.7 opt.1) -- within a window that
// means shortest-first, the reverse of generation order. The reference
// implementation reconciles this by pushing each window's candidates
// onto a stack as they are generated, then popping them off (LIFO,
// shortest-first) before counting and scoring (substrings.cc:252-388).
// This does the same with a reusable slice: buffer a window's candidates
// in generation order, then drain the buffer back to front.
func enumerateCandidates(sa []int32, lcp []int32, docs *documentIndex, doDocument, doColor, skipSamecount bool, maxLen int32, emit func(candidate)) {
	n := int32(len(sa))
	if n == 0 {
		return
	}

	var docsA *bitset.Set
	var docPool []*bitset.Set // grown lazily, reused across windows
	if doDocument {
		docsA = bitset.New(docs.numDocuments())
	}

	var previousPrefix int32
	var window []candidate

	for i := int32(1); i < n; i++ {
		prefix := lcp[i-1]
		if prefix <= previousPrefix {
			previousPrefix = prefix
			continue
		}

		if doDocument {
			docsA.Reset()
			docsA.SetBit(docs.docID(sa[i-1]))
			docsA.SetBit(docs.docID(sa[i]))
		}

		minOffset := sa[i-1]
		if sa[i] < minOffset {
			minOffset = sa[i]
		}
		count := 2
		j := i + 1

		length := prefix
		if length > maxLen {
			length = maxLen
		}
		if doColor {
			length &^= 1 // round down to even so the -2 step never crosses parity
		}

		window = window[:0]
		poolUsed := 0
		hasLast := false
		var lastCount int

		for j <= n && length > previousPrefix {
			h := lcp[j-1]
			if h < length {
				effectiveCount := count
				if doDocument {
					effectiveCount = docsA.PopcountRange(0, docs.numDocuments())
				}

				emitThis := true
				if skipSamecount && hasLast && lastCount == effectiveCount {
					emitThis = false
				}
				if emitThis {
					var snapshot *bitset.Set
					if doDocument {
						// docsA keeps mutating as the window narrows further,
						// so each buffered candidate needs its own copy of
						// the current document set. docPool is sized to the
						// widest window seen so far and only grows when
						// that record is broken, so this is not a
						// per-candidate allocation in steady state.
						if poolUsed == len(docPool) {
							docPool = append(docPool, bitset.New(docs.numDocuments()))
						}
						snapshot = docPool[poolUsed]
						poolUsed++
						snapshot.Reset()
						snapshot.Or(docsA)
					}

					window = append(window, candidate{
						offset: minOffset,
						length: length,
						count:  count,
						docsA:  snapshot,
					})
					lastCount = effectiveCount
					hasLast = true
				}

				if doColor {
					length -= 2
				} else {
					length--
				}
				continue
			}

			if sa[j] < minOffset {
				minOffset = sa[j]
			}
			if doDocument {
				docsA.SetBit(docs.docID(sa[j]))
			}
			count++
			j++
		}

		for k := len(window) - 1; k >= 0; k-- {
			emit(window[k])
		}

		previousPrefix = prefix
	}
}
