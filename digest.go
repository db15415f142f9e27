// Package digest computes SHA-256 and SHA3-256 digests of whole messages.
//
// SHA-256 is the FIPS 180-4 Merkle–Damgård hash over 32-bit big-endian words.
// SHA3-256 is the FIPS 202 sponge over the Keccak-f[1600] permutation with
// 64-bit little-endian lanes. Both are pure Go and allocate their state per
// call, so every function in this package is safe for concurrent use.
package digest

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Size is the length of every digest in bytes.
const Size = 32

// Digest is a 32-byte hash output.
type Digest [Size]byte

// String returns the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return Hex(d)
}

// Algorithm identifies one of the supported hash constructions.
type Algorithm int

const (
	SHA256 Algorithm = iota
	SHA3_256
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{SHA256, SHA3_256}

func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA3_256:
		return "sha3-256"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name such as "sha256" or "SHA3-256" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha256", "sha-256", "sha2-256":
		return SHA256, nil
	case "sha3-256", "sha3_256", "sha3":
		return SHA3_256, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Sum computes the digest of msg with alg.
func Sum(alg Algorithm, msg []byte) (Digest, error) {
	switch alg {
	case SHA256:
		return SumSHA256(msg)
	case SHA3_256:
		return SumSHA3_256(msg), nil
	}
	return Digest{}, errors.Wrapf(ErrUnknownAlgorithm, "algorithm %d", int(alg))
}

// SumString UTF-8 validates text and computes its digest with alg.
func SumString(alg Algorithm, text string) (Digest, error) {
	if !utf8.ValidString(text) {
		return Digest{}, ErrEncoding
	}
	return Sum(alg, []byte(text))
}

// HashMD returns the hex SHA-256 digest of msg.
func HashMD(msg []byte) (string, error) {
	d, err := SumSHA256(msg)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashMDString returns the hex SHA-256 digest of the UTF-8 text.
func HashMDString(text string) (string, error) {
	d, err := SumString(SHA256, text)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashSponge returns the hex SHA3-256 digest of the UTF-8 text.
func HashSponge(text string) (string, error) {
	d, err := SumString(SHA3_256, text)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashSpongeBytes returns the hex SHA3-256 digest of msg.
func HashSpongeBytes(msg []byte) string {
	return SumSHA3_256(msg).String()
}
