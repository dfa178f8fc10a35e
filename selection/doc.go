// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selection implements deterministic winner selection.

Select is a pure function: given an ordered candidate list, a byte string
of random material, and a count k, it returns k distinct winners via a
partial Fisher-Yates shuffle of the first k positions. Every source of
randomness is fixed (SHA-256 of the material plus a 4-byte big-endian
step counter, reduced by taking the digest's first 4 bytes big-endian
modulo the remaining range), so the same inputs produce the same winners
on any run, which is what makes draws independently auditable.

k = 0 returns an empty list without consuming randomness; k = n is a
full shuffle; k > n is an error, not a truncation.
*/
package selection
