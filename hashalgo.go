package subfreq

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashAlgorithm selects the hash function used by the CLI's -dedupe-hash
// duplicate-corpus diagnostic. It does not affect mining results or the
// build cache, whose fingerprint is always xxh3-128 (see cache.go); only
// the diagnostic fingerprint differs between algorithms.
type HashAlgorithm int

const (
	// HashXXH64 uses github.com/cespare/xxhash/v2. Default.
	HashXXH64 HashAlgorithm = iota
	// HashMurmur3 uses github.com/spaolacci/murmur3's 64-bit variant.
	HashMurmur3
)

func (a HashAlgorithm) String() string {
	switch a {
	case HashXXH64:
		return "xxh64"
	case HashMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// Sum64 dispatches to the configured algorithm's 64-bit digest of data.
// Used by the CLI's -dedupe-hash diagnostic to compare corpora cheaply
// before a build; has no effect on mining results.
func (a HashAlgorithm) Sum64(data []byte) uint64 {
	switch a {
	case HashMurmur3:
		return murmur3.Sum64(data)
	default:
		return xxhash.Sum64(data)
	}
}
