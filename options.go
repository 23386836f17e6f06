package subfreq

// Option is a functional option for configuring a Context at construction
// time. Options are applied in the order given to NewContext, after
// defaults and before validation.
type Option func(*Context)

// defaultSeparator is the sentinel byte marking document/corpus
// boundaries when the caller does not override it with WithSeparator.
const defaultSeparator = 0x00

// defaultMaxSuffixSize caps candidate substring length (spec §3).
const defaultMaxSuffixSize = 32

// defaultThresholdPercent mirrors the reference tool's default minimum
// document-coverage fraction in document mode.
const defaultThresholdPercent = 5

func defaultContext() *Context {
	return &Context{
		separator:        defaultSeparator,
		filterRedundant:  false, // opt in with WithRedundancyFilter; see its doc comment
		allowEqualSets:   true,
		priorBias:        1.0,
		thresholdCount:   -1, // unset; threshold_percent governs (spec §9)
		thresholdPercent: defaultThresholdPercent,
		maxSuffixSize:    defaultMaxSuffixSize,
		input1Threshold:  0, // unique-substring mode by default; see WithInput1Threshold
		hashAlgo:         HashXXH64,
	}
}

// WithSeparator overrides the sentinel byte marking document/corpus
// boundaries. Default is the zero byte.
func WithSeparator(sep byte) Option {
	return func(c *Context) { c.separator = sep }
}

// WithSkipSamecountPrefixes enables suppression of shorter-prefix
// candidates whose occurrence count is identical to the last emitted
// candidate's count within the same widening window.
func WithSkipSamecountPrefixes(v bool) Option {
	return func(c *Context) { c.skipSamecountPrefixes = v }
}

// WithDocumentMode enables document-coverage counting: a substring
// contributes at most once per document, in both A and B.
func WithDocumentMode(v bool) Option {
	return func(c *Context) { c.doDocument = v }
}

// WithColorMode restricts substrings to even lengths and even-aligned
// starts, supporting a two-byte-per-character display scheme upstream.
func WithColorMode(v bool) Option {
	return func(c *Context) { c.doColor = v }
}

// WithWordsOnly rejects substrings not bounded by whitespace on both
// sides within A.
func WithWordsOnly(v bool) Option {
	return func(c *Context) { c.doWords = v }
}

// WithCover enables the greedy cover selector (C9): instead of emitting
// every admitted feature directly, features are sorted by log-odds and
// greedily selected to cover every A-document.
func WithCover(v bool) Option {
	return func(c *Context) { c.doCover = v }
}

// WithRedundancyFilter enables pairwise containment-and-predictiveness
// suppression of redundant features (spec §4.8). Disabled by default, so
// that every admitted substring emits on its own, including ones nested
// inside a more predictive sibling, matching the base mode spec §8's
// scenario table is defined under.
func WithRedundancyFilter(v bool) Option {
	return func(c *Context) { c.filterRedundant = v }
}

// WithAllowEqualSets controls whether two features covering the exact
// same document set may both be admitted. When false, only the shorter
// (ties broken alphabetically) is kept. Enabled (true) by default.
func WithAllowEqualSets(v bool) Option {
	return func(c *Context) { c.allowEqualSets = v }
}

// WithPriorBias sets the additive pseudocount applied to both sides of
// the log-odds computation. Default 1.0.
func WithPriorBias(bias float64) Option {
	return func(c *Context) { c.priorBias = bias }
}

// WithThreshold sets the minimum |log_odds| for admission, expressed as
// a probability p in (0, 1) and converted internally to log(p/(1-p)).
// A value of 0 disables the threshold.
func WithThreshold(p float64) Option {
	return func(c *Context) { c.threshold = p }
}

// WithThresholdCount sets an absolute minimum occurrence/document count
// for admission. A value >= 0 takes precedence over WithThresholdPercent;
// -1 (the default) means "use the percent threshold instead" (spec §9).
func WithThresholdCount(n int) Option {
	return func(c *Context) { c.thresholdCount = n }
}

// WithThresholdPercent sets the minimum percentage of documents that
// must contain a substring for admission, in document mode, when
// WithThresholdCount has not been set to a non-negative value.
func WithThresholdPercent(pct int) Option {
	return func(c *Context) { c.thresholdPercent = pct }
}

// WithInput1Threshold caps admission on a candidate's B-side hit count:
// a candidate is only admitted if its input1_hits is at most n. The
// default, 0, is the "unique-substring mode" spec §8's scenario table
// names (input1_threshold = 0): only substrings absent from B survive.
// Pass a negative value to disable the gate entirely and admit purely on
// log-odds/threshold_count, matching the reference's general-purpose
// scoring path. Grounded on the input1_threshold parameter checked in
// the reference's FindSubstrings (substrings.cc:328).
func WithInput1Threshold(n int) Option {
	return func(c *Context) { c.input1Threshold = n }
}

// WithCoverThreshold sets the cover selector's emission gate: a feature
// is emitted only when it newly covers more than n documents.
func WithCoverThreshold(n int) Option {
	return func(c *Context) { c.coverThreshold = n }
}

// WithMaxSuffixSize caps candidate substring length. Default 32.
func WithMaxSuffixSize(n int) Option {
	return func(c *Context) { c.maxSuffixSize = n }
}

// WithSuffixArrayBuilder overrides the suffix-array construction
// primitive used for both corpora (spec §4.1, "any correct, deterministic
// suffix-sort is acceptable"). The default is a from-scratch prefix-doubling
// construction (see suffixarray.go); callers with access to a faster
// linear-time construction may plug it in here.
func WithSuffixArrayBuilder(b SuffixArrayBuilder) Option {
	return func(c *Context) { c.suffixArrayBuilder = b }
}

// WithParallelBuild enables building A's and B's suffix arrays, filters,
// and LCP/n-gram derived state concurrently (C12). Default false, to
// keep the single-threaded path the default per spec §5.
func WithParallelBuild(v bool) Option {
	return func(c *Context) { c.parallel = v }
}

// WithHashAlgorithm records a HashAlgorithm on the Context. Nothing in
// this package reads it: the build cache always uses xxh3 (see cache.go),
// and the CLI's -dedupe-hash check calls HashAlgorithm.Sum64 directly.
func WithHashAlgorithm(algo HashAlgorithm) Option {
	return func(c *Context) { c.hashAlgo = algo }
}

// WithLogger installs a logging callback for diagnostic messages. The
// only message currently logged is the build cache's "reusing cached
// build" notice (see cache.go). The default is a no-op.
func WithLogger(logger func(format string, args ...any)) Option {
	return func(c *Context) { c.logger = logger }
}
