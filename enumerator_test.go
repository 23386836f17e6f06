package subfreq

import "testing"

// enumerate runs enumerateCandidates over data with the given options and
// returns every emitted candidate's substring and raw count, in emission
// order.
func enumerate(data []byte, doDocument, doColor, skipSamecount bool, maxLen int32) []struct {
	substr string
	count  int
} {
	sa := buildSuffixArrayDoubling(data)
	n := filterSuffixes(sa, data, 0, doColor)
	sa = sa[:n]
	lcp := buildLCP(data, sa, 0)

	var docs *documentIndex
	if doDocument {
		docs = buildDocumentIndex(data, 0, len(data))
	}

	var out []struct {
		substr string
		count  int
	}
	enumerateCandidates(sa, lcp, docs, doDocument, doColor, skipSamecount, maxLen, func(cand candidate) {
		count := cand.count
		if doDocument {
			count = cand.docsA.PopcountRange(0, docs.numDocuments())
		}
		out = append(out, struct {
			substr string
			count  int
		}{string(data[cand.offset : cand.offset+cand.length]), count})
	})
	return out
}

func TestEnumerateCandidatesRawMode(t *testing.T) {
	// "abcabc": repeated substrings are "a","ab","abc","b","bc","c", each
	// occurring twice.
	data := []byte("abcabc")
	got := enumerate(data, false, false, false, 32)

	seen := make(map[string]int)
	for _, c := range got {
		seen[c.substr] = c.count
	}

	for _, s := range []string{"a", "ab", "abc", "b", "bc", "c"} {
		if seen[s] != 2 {
			t.Errorf("count[%q] = %d, want 2 (got %v)", s, seen[s], seen)
		}
	}
}

func TestEnumerateCandidatesMaxSuffixSize(t *testing.T) {
	data := []byte("abcabc")
	got := enumerate(data, false, false, false, 2)

	for _, c := range got {
		if len(c.substr) > 2 {
			t.Errorf("candidate %q exceeds max_suffix_size=2", c.substr)
		}
	}
}

func TestEnumerateCandidatesSkipSamecountPrefixes(t *testing.T) {
	// "aaaa": repeated substrings "a"(4x), "aa"(3x), "aaa"(2x). With
	// skip_samecount_prefixes there should be no two consecutive emissions
	// sharing a count within the same widening window.
	data := []byte("aaaa")
	got := enumerate(data, false, false, true, 32)

	for i := 1; i < len(got); i++ {
		if got[i].count == got[i-1].count {
			t.Errorf("skip_samecount_prefixes did not suppress a same-count prefix: %+v then %+v", got[i-1], got[i])
		}
	}
}

func TestEnumerateCandidatesDocumentModeCountsDocumentsNotOccurrences(t *testing.T) {
	// Two documents, each containing "aa" twice. Document-mode count for
	// "aa" should be 2 (documents), not 4 (raw occurrences).
	data := []byte("aaaa\x00aaaa")
	got := enumerate(data, true, false, false, 32)

	for _, c := range got {
		if c.substr == "aa" {
			if c.count != 2 {
				t.Errorf("document-mode count for \"aa\" = %d, want 2", c.count)
			}
			return
		}
	}
	t.Fatal("expected a candidate for \"aa\"")
}
