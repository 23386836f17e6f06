//go:build linux

package loader

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential hints to the kernel that an mmap'd input file will be
// read sequentially, once, by Load's copy into its returned buffer (the
// mapping is unmapped before Load returns). Best-effort: errors are
// silently ignored, since this is a performance hint, not a correctness requirement.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// oomScoreAdjust writes a mild negative adjustment to this process's OOM
// score so the kernel's OOM killer prefers reclaiming other processes
// before one holding multi-gigabyte corpora and suffix arrays in RAM.
// Best-effort: a failure here (missing /proc, permissions, containers
// without procfs) must never abort a run.
func oomScoreAdjust(adj int) {
	f, err := os.OpenFile("/proc/self/oom_score_adj", os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = fmt.Fprintf(f, "%d", adj)
}
