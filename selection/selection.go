// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selection

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

var ErrCountOutOfRange = errors.New("winner count out of range")

// Select picks k distinct winners from candidates using a partial
// Fisher-Yates shuffle driven entirely by material. For fixed candidates,
// material, and k the output is byte-for-byte reproducible, so any third
// party can recompute a draw from public data.
//
// Step i (0-indexed) draws j = i + (r mod (n-i)), where r is the first 4
// bytes, big-endian, of SHA-256(material ++ bigEndianUint32(i)), then
// swaps positions i and j. Winners are the first k positions in the order
// they were fixed: the result preserves draw order, not arrival order.
//
// The input slice is not modified. k must satisfy 0 <= k <= len(candidates).
func Select(candidates []string, material []byte, k int) ([]string, error) {
	n := len(candidates)
	if k < 0 || k > n {
		return nil, ErrCountOutOfRange
	}
	if k == 0 {
		return []string{}, nil
	}

	pool := make([]string, n)
	copy(pool, candidates)

	for i := 0; i < k; i++ {
		j := i + int(step(material, uint32(i))%uint32(n-i))
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

// step derives the pseudo-random value for one shuffle step.
func step(material []byte, i uint32) uint32 {
	var counter [4]byte
	binary.BigEndian.PutUint32(counter[:], i)

	h := sha256.New()
	h.Write(material)
	h.Write(counter[:])
	sum := h.Sum(nil)
	return binary.BigEndian.Uint32(sum[:4])
}
