package digest

import "github.com/pkg/errors"

const (
	// blockSize is the SHA-256 block size in bytes.
	blockSize = 64

	// maxMessageLen is the first byte length whose bit length no longer
	// fits the 64-bit length field: 2^61 bytes.
	maxMessageLen = 1 << 61
)

// SumSHA256 computes the SHA-256 digest of msg.
func SumSHA256(msg []byte) (Digest, error) {
	blocks, tail, err := padSHA256(msg)
	if err != nil {
		return Digest{}, err
	}

	h := sha256IV
	blockSHA256(&h, blocks)
	blockSHA256(&h, tail)

	var d Digest
	for i, v := range h {
		putBE32(d[4*i:], v)
	}
	return d, nil
}

// bitLength returns the SHA-256 length field for a message of n bytes.
func bitLength(n uint64) (uint64, error) {
	if n >= maxMessageLen {
		return 0, errors.Wrapf(ErrLengthOverflow, "message is %d bytes", n)
	}
	return n << 3, nil
}

// padSHA256 splits msg into its complete 64-byte blocks and a padded tail.
// The tail holds the leftover bytes, the 0x80 marker, zero fill and the
// big-endian bit length, and is one block long, or two when fewer than nine
// bytes of room remain after the leftover bytes.
func padSHA256(msg []byte) (blocks, tail []byte, err error) {
	length, err := bitLength(uint64(len(msg)))
	if err != nil {
		return nil, nil, err
	}

	n := len(msg) - len(msg)%blockSize
	buf := make([]byte, 2*blockSize)
	r := copy(buf, msg[n:])
	buf[r] = 0x80

	tailLen := blockSize
	if r >= blockSize-8 {
		tailLen = 2 * blockSize
	}
	putBE64(buf[tailLen-8:], length)
	return msg[:n], buf[:tailLen], nil
}

// blockSHA256 folds every 64-byte block of p into the chaining value h.
func blockSHA256(h *[8]uint32, p []byte) {
	var w [64]uint32
	for len(p) >= blockSize {
		for i := 0; i < 16; i++ {
			w[i] = be32(p[4*i:])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			s1 := rotr32(v1, 17) ^ rotr32(v1, 19) ^ (v1 >> 10)
			v2 := w[i-15]
			s0 := rotr32(v2, 7) ^ rotr32(v2, 18) ^ (v2 >> 3)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for j := 0; j < 64; j++ {
			s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + sha256K[j] + w[j]

			s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := s0 + maj

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh

		p = p[blockSize:]
	}
}
