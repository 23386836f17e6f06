package subfreq

import (
	"math"
	"testing"
)

func TestLogOddsWorkedExample(t *testing.T) {
	// spec: input0_hits=4, input1_hits=0, denomA=12, denomB=12, prior_bias=1
	// => log_odds == ln 5.
	got := logOdds(4, 0, 12, 12, 1)
	want := math.Log(5)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("logOdds(4, 0, 12, 12, 1) = %v, want %v", got, want)
	}
}

func TestLogOddsSymmetricUnderSwap(t *testing.T) {
	lo := logOdds(7, 2, 20, 15, 1)
	swapped := logOdds(2, 7, 15, 20, 1)
	if math.Abs(lo+swapped) > 1e-9 {
		t.Errorf("logOdds not antisymmetric under swap: %v vs %v", lo, swapped)
	}
}

func TestPassesThresholdZeroAlwaysPasses(t *testing.T) {
	c := defaultContext()
	c.threshold = 0
	if !c.passesThreshold(0) {
		t.Error("threshold 0 should admit a zero log-odds candidate")
	}
	if !c.passesThreshold(-100) {
		t.Error("threshold 0 should admit any log-odds value")
	}
}

func TestPassesThresholdGating(t *testing.T) {
	c := defaultContext()
	c.threshold = 0.9 // cutoff = ln(0.9/0.1) = ln 9
	cutoff := math.Log(9)

	if c.passesThreshold(cutoff - 0.01) {
		t.Error("below-cutoff log-odds should not pass")
	}
	if !c.passesThreshold(cutoff + 0.01) {
		t.Error("above-cutoff log-odds should pass")
	}
	if !c.passesThreshold(-(cutoff + 0.01)) {
		t.Error("threshold gates on |log_odds|, negative side should also pass above cutoff")
	}
}

func TestPassesCountThresholdCountTakesPrecedence(t *testing.T) {
	c := defaultContext()
	c.thresholdCount = 3
	c.thresholdPercent = 100 // would reject everything if percent were used
	c.doDocument = true
	c.docs = &documentIndex{numDocsA: 10}

	if !c.passesCountThreshold(3) {
		t.Error("input0Hits == thresholdCount should pass")
	}
	if c.passesCountThreshold(2) {
		t.Error("input0Hits < thresholdCount should not pass")
	}
}

func TestPassesCountThresholdPercentFallback(t *testing.T) {
	c := defaultContext()
	c.thresholdCount = -1
	c.thresholdPercent = 50
	c.doDocument = true
	c.docs = &documentIndex{numDocsA: 10} // min count = ceil(10 * 50 / 100) = 5

	if c.passesCountThreshold(4) {
		t.Error("4 hits should not satisfy a 50% threshold over 10 documents")
	}
	if !c.passesCountThreshold(5) {
		t.Error("5 hits should satisfy a 50% threshold over 10 documents")
	}
}

func TestPassesCountThresholdRawModeIgnoresPercent(t *testing.T) {
	c := defaultContext()
	c.thresholdCount = -1
	c.thresholdPercent = 100
	c.doDocument = false

	if !c.passesCountThreshold(0) {
		t.Error("raw mode with no count threshold set should never reject on percent")
	}
}

func TestAdmitFeatureAppendsWhenNoInteraction(t *testing.T) {
	c := defaultContext()
	c.filterRedundant = true
	c.input = []byte("aaa bbb")

	f1 := feature{offset: 0, length: 3, logOdds: 1.0} // "aaa"
	f2 := feature{offset: 4, length: 3, logOdds: 1.0} // "bbb"

	c.admitFeature(f1)
	c.admitFeature(f2)

	if len(c.features) != 2 {
		t.Fatalf("len(features) = %d, want 2 (disjoint, non-overlapping substrings)", len(c.features))
	}
}

func TestAdmitFeatureContainmentKeepsMorePredictive(t *testing.T) {
	c := defaultContext()
	c.filterRedundant = true
	c.input = []byte("aaaa")

	weak := feature{offset: 0, length: 2, logOdds: 1.0} // "aa"
	strong := feature{offset: 0, length: 4, logOdds: 2.0} // "aaaa", contains "aa"

	c.admitFeature(weak)
	c.admitFeature(strong)

	if len(c.features) != 1 {
		t.Fatalf("len(features) = %d, want 1 (containment should merge)", len(c.features))
	}
	if c.features[0].length != 4 {
		t.Errorf("surviving feature length = %d, want 4 (the more predictive one)", c.features[0].length)
	}
}

func TestAdmitFeatureContainmentRejectsWeaker(t *testing.T) {
	c := defaultContext()
	c.filterRedundant = true
	c.input = []byte("aaaa")

	strong := feature{offset: 0, length: 4, logOdds: 2.0} // "aaaa"
	weak := feature{offset: 0, length: 2, logOdds: 1.0}   // "aa", contained in "aaaa", less predictive

	c.admitFeature(strong)
	c.admitFeature(weak)

	if len(c.features) != 1 {
		t.Fatalf("len(features) = %d, want 1", len(c.features))
	}
	if c.features[0].length != 4 {
		t.Errorf("surviving feature length = %d, want 4 (weaker candidate should be rejected)", c.features[0].length)
	}
}

func TestAdmitFeatureOppositeSignsDoNotInteract(t *testing.T) {
	c := defaultContext()
	c.filterRedundant = true
	c.input = []byte("aaaa")

	positive := feature{offset: 0, length: 4, logOdds: 2.0}
	negative := feature{offset: 0, length: 2, logOdds: -1.0}

	c.admitFeature(positive)
	c.admitFeature(negative)

	if len(c.features) != 2 {
		t.Fatalf("len(features) = %d, want 2 (opposite-sign features never interact)", len(c.features))
	}
}

func TestAdmitFeatureEqualSetsKeepsShorter(t *testing.T) {
	c := defaultContext()
	c.filterRedundant = true
	c.allowEqualSets = false
	c.doDocument = true
	c.input = []byte("xxyy")

	long := feature{offset: 0, length: 4, logOdds: 1.0, setHash: 42}  // "xxyy"
	short := feature{offset: 2, length: 2, logOdds: 1.0, setHash: 42} // "yy", same set_hash

	c.admitFeature(long)
	c.admitFeature(short)

	if len(c.features) != 1 {
		t.Fatalf("len(features) = %d, want 1", len(c.features))
	}
	if c.features[0].length != 2 {
		t.Errorf("surviving feature length = %d, want 2 (shorter wins on equal set_hash)", c.features[0].length)
	}
}

func TestComputeSetHashDeterministic(t *testing.T) {
	words := []uint32{1, 2, 3}
	a := computeSetHash(words)
	b := computeSetHash(words)
	if a != b {
		t.Errorf("computeSetHash not deterministic: %d != %d", a, b)
	}

	other := computeSetHash([]uint32{1, 2, 4})
	if a == other {
		t.Error("different document sets hashed to the same value (acceptable collision in principle, suspicious for this small case)")
	}
}

func TestSignOf(t *testing.T) {
	cases := []struct {
		x    float64
		want int
	}{
		{1.5, 1},
		{-1.5, -1},
		{0, 0},
	}
	for _, c := range cases {
		if got := signOf(c.x); got != c.want {
			t.Errorf("signOf(%v) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestWithinWordBoundary(t *testing.T) {
	data := []byte("the cat sat")
	// "cat" at offset 4, length 3: preceded and followed by whitespace.
	if !withinWordBoundary(data, 4, 3, int32(len(data))) {
		t.Error("\"cat\" should satisfy the word boundary filter")
	}
	// "e c" at offset 2, length 3: preceded by 'h', not whitespace.
	if withinWordBoundary(data, 2, 3, int32(len(data))) {
		t.Error("substring not preceded by whitespace should fail the filter")
	}
}
