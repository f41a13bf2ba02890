package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [32]byte

// Combine builds an aggregate digest: H( content || part1 || part2 ... ).
// The caller must pass parts in a deterministic order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DigestOf hashes raw bytes into a Digest.
func DigestOf(data []byte) Digest {
	return sha256.Sum256(data)
}
