package subfreq

import (
	"github.com/corpusdiff/subfreq/internal/bitset"
	subfreqerrors "github.com/corpusdiff/subfreq/errors"
)

// FindSubstringFrequencies runs the full mining pipeline (spec §2) over
// the Context's configured corpora, driving admitted features through
// Output, or, in cover mode, through the greedy cover selector. A Context
// may be called more than once; derived per-input state (suffix arrays,
// LCP, n-gram tables, document index) is rebuilt only when the input's
// content fingerprint has changed since the last call (cache.go).
//
// Grounded on FindSubstringFrequencies, the top-level driver in the
// reference implementation.
func (c *Context) FindSubstringFrequencies() error {
	if c.Output == nil {
		return subfreqerrors.ErrNilSink
	}
	if c.suffixArrayBuilder == nil {
		c.suffixArrayBuilder = defaultSuffixArrayBuilder()
	}

	if err := c.build(); err != nil {
		return err
	}

	c.features = c.features[:0]

	bc := newBCounter(c.input, c.suffixesB, c.docs, c.doDocument)

	var combined *bitset.Set
	if c.doDocument {
		combined = bitset.New(c.docs.numDocuments())
	}

	lenA32 := int32(c.lenA)

	enumerateCandidates(c.suffixesA, c.lcpA, c.docs, c.doDocument, c.doColor, c.skipSamecountPrefixes, int32(c.maxSuffixSize), func(cand candidate) {
		if c.doWords && !withinWordBoundary(c.input, cand.offset, cand.length, lenA32) {
			return
		}

		substr := c.input[cand.offset : cand.offset+cand.length]

		var input0Hits, input1Hits int
		var setHash uint64

		if c.doDocument {
			combined.Reset()
			combined.Or(cand.docsA)
			bc.countInB(substr, combined)
			input0Hits = combined.PopcountRange(0, c.docs.numDocsA)
			input1Hits = combined.PopcountRange(c.docs.numDocsA, c.docs.numDocuments())
			setHash = computeSetHash(combined.Words32())
		} else {
			input0Hits = cand.count
			input1Hits = bc.countInB(substr, nil)
		}

		var denomA, denomB float64
		if c.doDocument {
			denomA, denomB = float64(c.docs.numDocsA), float64(c.docs.numDocsB)
		} else {
			denomA = float64(ngramCount(c.ngramA, cand.length))
			denomB = float64(ngramCount(c.ngramB, cand.length))
		}
		lo := logOdds(input0Hits, input1Hits, denomA, denomB, c.priorBias)

		// Cover mode always accumulates candidates into the feature arena;
		// the cover selector applies its own gate (cover_threshold) later
		// (spec §4.8: "always appended without scoring-gate emission").
		if !c.doCover && (!c.passesThreshold(lo) || !c.passesCountThreshold(input0Hits) || !c.passesInput1Threshold(input1Hits)) {
			return
		}

		f := feature{
			offset:     cand.offset,
			length:     cand.length,
			input0Hits: input0Hits,
			input1Hits: input1Hits,
			logOdds:    lo,
			setHash:    setHash,
		}

		c.mu.Lock()
		c.admitFeature(f)
		c.mu.Unlock()
	})

	if c.doCover {
		c.runCover()
	} else {
		c.emitFeatures()
	}

	return nil
}

func (c *Context) buildDerivedSequential() error {
	if err := c.buildSideA(); err != nil {
		return err
	}
	if err := c.buildSideB(); err != nil {
		return err
	}
	c.docs = buildDocumentIndex(c.input, c.separator, c.lenA)
	return nil
}

// buildSideA constructs A's filtered suffix array, its LCP array, and its
// n-gram count table. Offsets produced are already global (A occupies
// c.input[0:lenA], i.e. the start of the shared buffer), so no rebasing
// is needed.
func (c *Context) buildSideA() error {
	data := c.input[:c.lenA]

	sa := c.suffixArrayBuilder.Build(data)
	n := filterSuffixes(sa, data, c.separator, c.doColor)
	sa = sa[:n]

	c.suffixesA = sa
	c.lcpA = buildLCP(data, sa, c.separator)
	c.ngramA = countNGrams(c.input, c.separator, 0, c.lenA)
	return nil
}

// buildSideB constructs B's filtered suffix array and n-gram count table.
// B has no LCP array: the enumerator only ever walks A's repeated
// substrings, using B solely as a counting corpus (C7). Offsets are
// rebased from B-local (0 at the start of B's slice) to global (0 at the
// start of the shared buffer) so counter.go can index c.input directly.
func (c *Context) buildSideB() error {
	bStart := c.lenA + 1
	data := c.input[bStart:]

	sa := c.suffixArrayBuilder.Build(data)
	n := filterSuffixes(sa, data, c.separator, c.doColor)
	sa = sa[:n]

	base := int32(bStart)
	for i := range sa {
		sa[i] += base
	}

	c.suffixesB = sa
	c.ngramB = countNGrams(c.input, c.separator, bStart, len(c.input))
	return nil
}
