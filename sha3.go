package digest

const (
	// rate is the sponge rate for SHA3-256: (1600 - 2*256) / 8 = 136 bytes.
	rate = 136

	// dsbyte is the SHA-3 domain separator "01" followed by the first "1" bit
	// of the pad10*1 rule, in little-endian bit order.
	dsbyte = 0x06
)

// SumSHA3_256 computes the SHA3-256 digest of msg.
func SumSHA3_256(msg []byte) Digest {
	var a [25]uint64

	blocks, last := padSHA3(msg)
	for len(blocks) >= rate {
		absorb(&a, blocks[:rate])
		blocks = blocks[rate:]
	}
	absorb(&a, last[:])

	return squeeze(&a)
}

// padSHA3 splits msg into its complete rate-sized blocks and one final padded
// block. The final block holds the leftover bytes, the domain separator, zero
// fill and the closing 0x80 bit. With 135 leftover bytes the separator and the
// closing bit land in the same byte, which becomes 0x86.
func padSHA3(msg []byte) (blocks []byte, last [rate]byte) {
	n := len(msg) - len(msg)%rate
	r := copy(last[:], msg[n:])
	last[r] = dsbyte
	last[rate-1] ^= 0x80
	return msg[:n], last
}

// absorb XORs one rate-sized block into the first 17 lanes and permutes.
func absorb(a *[25]uint64, block []byte) {
	xorIn(a, block)
	keccakF1600(a)
}

// xorIn XORs data into the leading lanes of the state, 8 bytes per lane.
func xorIn(a *[25]uint64, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= le64(data[8*i:])
	}
}

// squeeze reads the 32-byte digest from the first four lanes. The digest is
// shorter than the rate, so no further permutation is needed.
func squeeze(a *[25]uint64) Digest {
	var d Digest
	for i := 0; i < len(d)/8; i++ {
		putLE64(d[8*i:], a[i])
	}
	return d
}
