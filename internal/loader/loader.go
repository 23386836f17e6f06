// Package loader is the out-of-core collaborator that turns a list of
// input file paths into the single contiguous, sentinel-separated byte
// buffer the subfreq core expects. It owns every concern the core
// explicitly excludes from its own scope: memory-mapping files, kernel
// read-ahead hints, and the OOM-score adjustment for long-running,
// memory-hungry mining processes.
package loader

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// DefaultOOMScoreAdj is a mild negative nudge away from "kill this one
// first". It is conservative on purpose: this is a hint, not a guarantee,
// and an overly aggressive value can starve genuinely small processes.
const DefaultOOMScoreAdj = -100

// Load memory-maps each path in order and concatenates their contents
// into one buffer, inserting sep between consecutive files (never after
// the last one). Each file is treated as a single document; the returned
// buffer is ready to hand to subfreq.NewContext directly as one side (A
// or B) of a run.
//
// Mappings are read-only and are unmapped before Load returns: the
// returned slice is a private copy, so the core is free to alias it for
// the lifetime of a run without the caller's file descriptors staying
// open.
func Load(paths []string, sep byte) ([]byte, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	oomScoreAdjust(DefaultOOMScoreAdj)

	var total int
	mappings := make([]mmap.MMap, 0, len(paths))
	for _, p := range paths {
		m, err := mapFile(p)
		if err != nil {
			unmapAll(mappings)
			return nil, err
		}
		mappings = append(mappings, m)
		total += len(m)
	}
	defer unmapAll(mappings)

	if len(paths) > 1 {
		total += len(paths) - 1 // one separator between each pair of files
	}

	buf := make([]byte, 0, total)
	for i, m := range mappings {
		if i > 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, m...)
	}

	return buf, nil
}

func mapFile(path string) (mmap.MMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("loader: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return mmap.MMap{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("loader: mmap %s: %w", path, err)
	}
	adviseSequential(m)
	return m, nil
}

func unmapAll(mappings []mmap.MMap) {
	for _, m := range mappings {
		if len(m) > 0 {
			_ = m.Unmap()
		}
	}
}
