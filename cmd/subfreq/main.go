// Command subfreq finds substrings statistically characteristic of one
// corpus relative to another and prints them as tab-separated log_odds,
// input0_hits, input1_hits, substring lines (or, in -cover mode, hits,
// substring pairs). It is the CLI wrapper around the subfreq core
// engine; see the package doc for the library API.
//
// Usage:
//
//	subfreq [flags] CORPUS-A CORPUS-B
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/corpusdiff/subfreq"
	"github.com/corpusdiff/subfreq/internal/loader"
)

func main() {
	var (
		document         = flag.Bool("document", false, "count each substring at most once per document")
		color            = flag.Bool("color", false, "restrict substrings to even lengths/starts for a two-byte-per-character display scheme")
		words            = flag.Bool("words", false, "reject substrings not bounded by whitespace on both sides within corpus A")
		cover            = flag.Bool("cover", false, "print only the substrings necessary to cover every A document (implies -document)")
		coverThreshold   = flag.Int("cover-threshold", 0, "-cover prints a feature only if it newly covers more than this many documents")
		skipPrefixes     = flag.Bool("skip-prefixes", false, "skip prefixes with identical positive counts")
		noEqualSets      = flag.Bool("no-equal-sets", false, "do not emit two substrings that cover the exact same set of documents")
		noFilter         = flag.Bool("no-filter", false, "do not filter redundant features")
		priorBias        = flag.Float64("prior-bias", 1.0, "additive pseudocount applied to both sides of the log-odds computation")
		threshold        = flag.Float64("threshold", 0, "minimum admission probability, converted to log(p/(1-p))")
		thresholdPercent = flag.Int("threshold-percent", 5, "minimum percentage of A documents a substring must cover (document mode)")
		thresholdCount   = flag.Int("threshold-count", -1, "minimum occurrence/document count for admission; overrides -threshold-percent when >= 0")
		input1Threshold  = flag.Int("input1-threshold", -1, "maximum allowed B-side hit count for admission; 0 selects unique-substring mode (substrings absent from corpus B), negative disables the gate")
		maxSuffixSize    = flag.Int("max-suffix-size", 32, "hard cap on candidate substring length")
		parallel         = flag.Bool("parallel", false, "build corpus A and corpus B's derived state concurrently")
		hashAlgo         = flag.String("hash-algo", "xxh64", "fingerprint hash for -dedupe-hash: xxh64 or murmur3")
		dedupeHash       = flag.Bool("dedupe-hash", false, "warn on stderr if corpus A and corpus B have identical content fingerprints")
		separator        = flag.Int("separator", 0, "document/corpus separator byte value (0-255)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] CORPUS-A CORPUS-B\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(64) // EX_USAGE
	}

	algo := subfreq.HashXXH64
	if *hashAlgo == "murmur3" {
		algo = subfreq.HashMurmur3
	}

	sep := byte(*separator)

	a, err := loader.Load([]string{flag.Arg(0)}, sep)
	if err != nil {
		fmt.Fprintln(os.Stderr, "subfreq:", err)
		os.Exit(1)
	}
	b, err := loader.Load([]string{flag.Arg(1)}, sep)
	if err != nil {
		fmt.Fprintln(os.Stderr, "subfreq:", err)
		os.Exit(1)
	}

	if *dedupeHash && algo.Sum64(a) == algo.Sum64(b) {
		fmt.Fprintln(os.Stderr, "subfreq: warning: corpus A and corpus B have identical content fingerprints")
	}

	out := bufio.NewWriterSize(os.Stdout, 64*1024)
	defer out.Flush()

	ctx, err := subfreq.NewContext(a, b,
		subfreq.WithSeparator(sep),
		subfreq.WithDocumentMode(*document),
		subfreq.WithColorMode(*color),
		subfreq.WithWordsOnly(*words),
		subfreq.WithCover(*cover),
		subfreq.WithCoverThreshold(*coverThreshold),
		subfreq.WithSkipSamecountPrefixes(*skipPrefixes),
		subfreq.WithAllowEqualSets(!*noEqualSets),
		subfreq.WithRedundancyFilter(!*noFilter),
		subfreq.WithPriorBias(*priorBias),
		subfreq.WithThreshold(*threshold),
		subfreq.WithThresholdPercent(*thresholdPercent),
		subfreq.WithThresholdCount(*thresholdCount),
		subfreq.WithInput1Threshold(*input1Threshold),
		subfreq.WithMaxSuffixSize(*maxSuffixSize),
		subfreq.WithParallelBuild(*parallel),
		subfreq.WithHashAlgorithm(algo),
		subfreq.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "subfreq: "+format+"\n", args...)
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "subfreq:", err)
		os.Exit(1)
	}

	stdoutIsTTY := isTerminal(os.Stdout)

	if *cover {
		ctx.Output = func(hits, _ int, logOdds float64, substring []byte) {
			fmt.Fprintf(out, "%d\t", hits)
			printString(out, substring, *color, stdoutIsTTY)
			out.WriteByte('\n')
		}
	} else {
		ctx.Output = func(input0Hits, input1Hits int, logOdds float64, substring []byte) {
			fmt.Fprintf(out, "%.3f\t%d\t%d\t", logOdds, input0Hits, input1Hits)
			printString(out, substring, *color, stdoutIsTTY)
			out.WriteByte('\n')
		}
	}

	if err := ctx.FindSubstringFrequencies(); err != nil {
		out.Flush()
		fmt.Fprintln(os.Stderr, "subfreq:", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// printString writes substring to w, escaping non-printable bytes the way
// the reference tool's PrintString does (octal fallback, \a\b\t\n\v\f\r\\
// shorthand). In color mode, bytes come in pairs: a leading color byte
// followed by the content byte; the color byte is rendered as an ANSI SGR
// escape when stdout is a terminal, or passed through raw otherwise.
func printString(w *bufio.Writer, substring []byte, doColor, isTTY bool) {
	for i := 0; i < len(substring); i++ {
		ch := substring[i]

		if doColor && i+1 < len(substring) {
			if isTTY {
				fmt.Fprintf(w, "\033[%d;1m", int(ch)-'A'+30)
			} else {
				w.WriteByte(ch)
			}
			i++
			ch = substring[i]
		}

		if ch >= ' ' && ch != '\\' {
			w.WriteByte(ch)
			continue
		}

		w.WriteByte('\\')
		switch ch {
		case '\a':
			w.WriteByte('a')
		case '\b':
			w.WriteByte('b')
		case '\t':
			w.WriteByte('t')
		case '\n':
			w.WriteByte('n')
		case '\v':
			w.WriteByte('v')
		case '\f':
			w.WriteByte('f')
		case '\r':
			w.WriteByte('r')
		case '\\':
			w.WriteByte('\\')
		default:
			fmt.Fprintf(w, "%03o", ch)
		}
	}

	if doColor {
		w.WriteString("\033[00m")
	}
}
