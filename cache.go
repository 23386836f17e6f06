package subfreq

import "github.com/zeebo/xxh3"

// build constructs (or rebuilds) all of a Context's derived per-input
// state: suffix arrays, LCP array, document index, and n-gram count
// tables. A 128-bit content fingerprint gates the rebuild (C11,
// Fingerprint Cache): a Context reused across repeated
// FindSubstringFrequencies calls -- e.g. to retune threshold or cover
// options -- only pays the O(n log^2 n) suffix-sort cost once, as long as
// the input buffer's content has not changed in between.
//
// Grounded on prehash.go's xxh3.Hash128 usage pattern, reused here for
// its literal purpose (content hashing) rather than as a key-hash seam.
func (c *Context) build() error {
	sum := xxh3.Hash128(c.input)

	if c.built && sum.Lo == c.contentLo && sum.Hi == c.contentHi {
		c.logf("subfreq: reusing cached build (fingerprint unchanged)")
		return nil
	}

	var err error
	if c.parallel {
		err = c.buildDerivedParallel()
	} else {
		err = c.buildDerivedSequential()
	}
	if err != nil {
		return err
	}

	c.contentLo, c.contentHi = sum.Lo, sum.Hi
	c.built = true
	return nil
}
