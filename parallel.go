package subfreq

import "golang.org/x/sync/errgroup"

// buildDerivedParallel builds A's and B's suffix arrays, filters, LCP,
// and n-gram tables concurrently (C12, Parallel Build Coordinator).
// Grounded on builder_parallel.go's errgroup.Group shape, simplified to a
// fixed two-way fan-out: this domain always has exactly two independent
// per-corpus builds, never an arbitrary worker pool.
func (c *Context) buildDerivedParallel() error {
	var g errgroup.Group
	g.Go(c.buildSideA)
	g.Go(c.buildSideB)
	if err := g.Wait(); err != nil {
		return err
	}

	c.docs = buildDocumentIndex(c.input, c.separator, c.lenA)
	return nil
}
