package icon

import (
	"crypto/md5"
	"encoding/binary"
	randv2 "math/rand/v2"
)

// DeriveSeed hashes the seed text with MD5 and interprets the 128-bit digest
// as a big-endian integer, returned as its two 64-bit halves. The empty
// string is a valid input and yields the digest of zero bytes.
func DeriveSeed(text string) (hi, lo uint64) {
	sum := md5.Sum([]byte(text))
	return binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16])
}

// NewRNG returns a deterministic PRNG seeded from the seed text. Two calls
// with the same text produce generators with identical draw sequences.
func NewRNG(text string) *randv2.Rand {
	hi, lo := DeriveSeed(text)
	return randv2.New(randv2.NewPCG(hi, lo))
}
