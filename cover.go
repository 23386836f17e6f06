package subfreq

import (
	"bytes"
	"sort"
)

// runCover implements the greedy cover selector (C9): sort the settled
// feature arena by log-odds descending, then repeatedly pick the
// highest-scoring feature whose substring still occurs in at least one
// uncovered A-document, removing covered documents as it goes. Grounded
// on FindCover in the reference implementation.
func (c *Context) runCover() {
	c.mu.Lock()
	defer c.mu.Unlock()

	ordered := make([]feature, len(c.features))
	copy(ordered, c.features)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].logOdds > ordered[j].logOdds })

	type docRange struct{ start, end int32 }
	remaining := make([]docRange, 0, c.docs.numDocsA)
	start := int32(0)
	for i := 0; i < c.docs.numDocsA; i++ {
		end := c.docs.ends[i]
		remaining = append(remaining, docRange{start, end})
		start = end + 1
	}

	for _, f := range ordered {
		if len(remaining) == 0 {
			break
		}
		substr := f.substring(c.input)

		hits := 0
		kept := remaining[:0]
		for _, d := range remaining {
			if bytes.Contains(c.input[d.start:d.end], substr) {
				hits++
			} else {
				kept = append(kept, d)
			}
		}
		remaining = kept

		if hits > c.coverThreshold {
			c.Output(hits, 0, f.logOdds, substr)
		}
	}
}
