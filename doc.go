// Package subfreq finds substrings that are statistically characteristic
// of one byte corpus ("A") relative to another ("B").
//
// Given two byte blobs, each optionally partitioned into documents by a
// single sentinel byte, subfreq builds a suffix array and LCP array over
// A, walks every maximal repeated substring of A, counts its occurrences
// (or document coverage) in both A and B, scores it by a Bayesian
// log-odds against a configurable prior, and emits the substrings whose
// presence is predictive of A over B.
//
// # Basic usage
//
//	ctx, err := subfreq.NewContext(a, b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx.Output = func(hitsA, hitsB int, logOdds float64, substring []byte) {
//	    fmt.Printf("%d\t%d\t%.4f\t%q\n", hitsA, hitsB, logOdds, substring)
//	}
//	if err := ctx.FindSubstringFrequencies(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package structure
//
//   - Public API: context.go (NewContext), run.go (FindSubstringFrequencies)
//   - Configuration: options.go (Option, With* functions)
//   - Suffix array: suffixarray.go (C1, pluggable SuffixArrayBuilder)
//   - Filtering: filter.go (C2)
//   - LCP: lcp.go (C3)
//   - Documents: docindex.go (C4)
//   - N-grams: ngram.go (C5)
//   - Enumeration: enumerator.go (C6)
//   - Cross-counting: counter.go (C7)
//   - Scoring: scorer.go (C8)
//   - Cover: cover.go (C9)
//   - Emission: sink.go (C10)
//   - Acceleration: cache.go, parallel.go, hashalgo.go
package subfreq
