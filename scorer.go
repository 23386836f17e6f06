package subfreq

import (
	"bytes"
	"math"
)

// feature is an admitted candidate retained in the Context's feature arena
// for emission or for the cover phase (spec §4.8, GLOSSARY "Feature").
// Redundancy filtering mutates earlier entries of Context.features in
// place by index, rather than through pointers -- the "arena with
// index-based back-references" pattern spec §9 calls for.
type feature struct {
	offset     int32
	length     int32
	input0Hits int
	input1Hits int
	logOdds    float64
	setHash    uint64 // only meaningful when doDocument
}

func (f feature) substring(input []byte) []byte {
	return input[f.offset : f.offset+f.length]
}

// isWhitespace mirrors C's isspace for the ASCII byte range, which is what
// the word-boundary filter checks against (spec §4.8).
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// withinWordBoundary implements the do_words filter: reject unless the
// byte immediately before offset is whitespace (or offset is the start of
// A), and the byte immediately after the substring is whitespace (or the
// substring runs up to the end of A).
func withinWordBoundary(input []byte, offset, length, lenA int32) bool {
	if offset > 0 && !isWhitespace(input[offset-1]) {
		return false
	}
	end := offset + length
	if end < lenA && !isWhitespace(input[end]) {
		return false
	}
	return true
}

// ngramCount reads the denominator for a given length out of a per-side
// n-gram count table, treating an out-of-range length (longer than any
// run in that corpus) as zero occurrences.
func ngramCount(counts []int, length int32) int {
	if int(length) < len(counts) {
		return counts[length]
	}
	return 0
}

// logOdds computes spec §4.8's log-odds formula. denomA/denomB are either
// document counts (document mode) or n-gram occurrence counts (raw mode).
func logOdds(input0Hits, input1Hits int, denomA, denomB, priorBias float64) float64 {
	posteriorOdds := (float64(input0Hits) + priorBias) / (float64(input1Hits) + priorBias)
	priorOdds := (denomA + priorBias) / (denomB + priorBias)
	return math.Log(posteriorOdds / priorOdds)
}

// setHashSeed is the reference tool's fixed LCG seed for the document-set
// identity hash (spec §4.8). The multiplier/increment are not specified by
// spec -- the classic ANSI C `rand` constants are used, since any fixed,
// deterministic stream satisfies the stated purpose (cheap, low-collision
// equal-set comparison, not cryptographic hashing).
const (
	setHashSeed = 123
	lcgA        = 1103515245
	lcgC        = 12345
)

// computeSetHash implements spec §4.8's "Set hash": a sum, over the 32-bit
// words of a document bitmap, of (word XOR r_i) + (word << 24), where r_i
// is drawn from a seeded LCG stream.
func computeSetHash(words []uint32) uint64 {
	state := uint32(setHashSeed)
	var hash uint64
	for _, w := range words {
		state = state*lcgA + lcgC
		hash += uint64(w^state) + uint64(w)<<24
	}
	return hash
}

// passesThreshold applies spec §4.8's admission threshold: if threshold is
// 0 (the default), every candidate passes; otherwise the candidate's
// log-odds magnitude must meet or exceed log(threshold/(1-threshold)).
func (c *Context) passesThreshold(lo float64) bool {
	if c.threshold <= 0 {
		return true
	}
	cutoff := math.Log(c.threshold / (1 - c.threshold))
	return math.Abs(lo) >= cutoff
}

// passesCountThreshold applies the threshold_count / threshold_percent
// admission gate (spec §3, §9 open question 4: "threshold_count < 0
// means use threshold_percent, otherwise threshold_count is
// authoritative"). threshold_percent only applies in document mode,
// since it is defined as a fraction of A's document count.
func (c *Context) passesCountThreshold(input0Hits int) bool {
	if c.thresholdCount >= 0 {
		return input0Hits >= c.thresholdCount
	}
	if c.doDocument && c.thresholdPercent > 0 {
		minCount := (c.docs.numDocsA*c.thresholdPercent + 99) / 100 // ceil
		return input0Hits >= minCount
	}
	return true
}

// passesInput1Threshold applies the input1_threshold admission gate (spec
// §8's "unique-substring mode, input1_threshold = 0"): a candidate whose
// B-side hit count exceeds the configured cap is rejected outright,
// independent of log-odds. A negative threshold disables the gate.
func (c *Context) passesInput1Threshold(input1Hits int) bool {
	if c.input1Threshold < 0 {
		return true
	}
	return input1Hits <= c.input1Threshold
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// admitFeature runs the redundancy filter (spec §4.8) and, if the
// candidate survives it, records it in the feature arena. Must be called
// with c.mu held.
func (c *Context) admitFeature(cand feature) {
	if !c.filterRedundant {
		c.features = append(c.features, cand)
		return
	}

	candSubstr := cand.substring(c.input)
	sign := signOf(cand.logOdds)

	for i := range c.features {
		existing := &c.features[i]
		if signOf(existing.logOdds) != sign {
			continue
		}
		existingSubstr := existing.substring(c.input)

		if !c.allowEqualSets && c.doDocument && existing.setHash == cand.setHash {
			if cand.length < existing.length ||
				(cand.length == existing.length && bytes.Compare(candSubstr, existingSubstr) < 0) {
				*existing = cand
			}
			return
		}

		sharesStart := existing.offset == cand.offset
		contains := bytes.Contains(existingSubstr, candSubstr) || bytes.Contains(candSubstr, existingSubstr)
		if sharesStart || contains {
			if math.Abs(existing.logOdds) > math.Abs(cand.logOdds) {
				return
			}
			if math.Abs(existing.logOdds) == math.Abs(cand.logOdds) && existing.length > cand.length {
				return
			}
			*existing = cand
			return
		}
	}

	c.features = append(c.features, cand)
}
