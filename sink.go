package subfreq

// emitFeatures drains the settled, non-cover feature arena through the
// caller's Output sink in admission order (C10). Spec §4.10: "no state is
// retained by the core after the sink returns, apart from the feature
// list" -- the sink is always driven from this already-settled list,
// never eagerly mid-scan, so a later redundancy-filter replacement can
// never cause two sink calls for what turns out to be the same feature.
func (c *Context) emitFeatures() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.features {
		c.Output(f.input0Hits, f.input1Hits, f.logOdds, f.substring(c.input))
	}
}
