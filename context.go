package subfreq

import (
	"sync"

	subfreqerrors "github.com/corpusdiff/subfreq/errors"
)

// Sink receives one admitted feature per invocation: the A-hit count, the
// B-hit count, the log-odds, and the substring itself. The substring is a
// slice into the Context's input buffer and remains valid only until the
// next call to FindSubstringFrequencies on the same Context (spec §6).
type Sink func(input0Hits, input1Hits int, logOdds float64, substring []byte)

// Context holds every configuration field, derived array, and
// accumulated feature from one FindSubstringFrequencies run. This is the
// single configured context object called for in the design notes:
// no state about a run persists outside of it between invocations.
//
// A Context may be reused across repeated FindSubstringFrequencies calls
// (e.g. to retune threshold/cover options); see cache.go for what is and
// is not rebuilt on a repeat call.
type Context struct {
	// Output is invoked once per admitted feature. Must be set before
	// calling FindSubstringFrequencies.
	Output Sink

	input []byte // A ++ separator ++ B, contiguous
	lenA  int
	lenB  int

	separator byte

	skipSamecountPrefixes bool
	doDocument            bool
	doColor               bool
	doWords               bool
	doCover               bool
	filterRedundant       bool
	allowEqualSets        bool
	parallel              bool

	priorBias        float64
	threshold        float64
	thresholdCount   int
	thresholdPercent int
	coverThreshold   int
	maxSuffixSize    int
	input1Threshold  int

	hashAlgo           HashAlgorithm
	suffixArrayBuilder SuffixArrayBuilder
	logger             func(format string, args ...any)

	// Derived state, built once per distinct input (see cache.go).
	built      bool
	contentLo  uint64
	contentHi  uint64
	docs       *documentIndex
	ngramA     []int
	ngramB     []int
	suffixesA  []int32
	suffixesB  []int32
	lcpA       []int32

	// Accumulated features, guarded by mu so the sink and feature list can
	// be safely driven from parallel scorer work in the future (spec §5).
	mu       sync.Mutex
	features []feature
}

// NewContext builds a Context over corpora a (A) and b (B), copying them
// into one contiguous buffer separated by the configured sentinel byte
// (spec §5: "If the caller provides A and B in non-adjacent memory, the
// core copies them into a single contiguous buffer"). Since Go slices from
// independent allocations are never guaranteed adjacent, NewContext always
// copies; callers who already hold one contiguous sentinel-separated
// buffer (e.g. from internal/loader) can pass it to NewContextFromBuffer
// together with the offset of the A/B separator instead, avoiding the
// copy.
func NewContext(a, b []byte, opts ...Option) (*Context, error) {
	if len(a) == 0 {
		return nil, subfreqerrors.ErrEmptyInput
	}

	c := defaultContext()
	for _, opt := range opts {
		opt(c)
	}
	c.applyImplications()

	buf := make([]byte, 0, len(a)+1+len(b))
	buf = append(buf, a...)
	buf = append(buf, c.separator)
	buf = append(buf, b...)

	c.input = buf
	c.lenA = len(a)
	c.lenB = len(b)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewContextFromBuffer builds a Context directly from an already
// contiguous, already sentinel-separated buffer, aliasing it without a
// copy. splitAt is the offset of the separator between A and B (so A is
// buf[:splitAt] and B is buf[splitAt+1:]).
func NewContextFromBuffer(buf []byte, splitAt int, opts ...Option) (*Context, error) {
	if splitAt <= 0 || splitAt >= len(buf) {
		return nil, subfreqerrors.ErrEmptyInput
	}

	c := defaultContext()
	for _, opt := range opts {
		opt(c)
	}
	c.applyImplications()
	c.separator = buf[splitAt]

	c.input = buf
	c.lenA = splitAt
	c.lenB = len(buf) - splitAt - 1

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyImplications resolves option interactions that the reference tool
// hard-codes at the CLI layer (main.cc: "--cover implies --document").
func (c *Context) applyImplications() {
	if c.doCover {
		c.doDocument = true
	}
}

func (c *Context) validate() error {
	if c.lenA == 0 {
		return subfreqerrors.ErrEmptyInput
	}
	if c.thresholdCount < -1 {
		return subfreqerrors.ErrInvalidThresholdCount
	}
	if c.thresholdPercent < 0 || c.thresholdPercent > 100 {
		return subfreqerrors.ErrInvalidPercent
	}
	if c.priorBias < 0 {
		return subfreqerrors.ErrInvalidPriorBias
	}
	if c.maxSuffixSize <= 0 {
		return subfreqerrors.ErrInvalidMaxSuffixSize
	}
	// Our int32 offset arrays require the input to fit in a signed
	// 32-bit offset (spec §1 non-goal).
	if len(c.input) > (1<<31)-1 {
		return subfreqerrors.ErrOffsetOverflow
	}
	return nil
}

func (c *Context) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger(format, args...)
	}
}
