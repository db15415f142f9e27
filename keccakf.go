package digest

// keccakF1600 applies the 24-round Keccak-f[1600] permutation in place.
// Lane (x, y) of the 5x5 state lives at index x+5*y.
func keccakF1600(a *[25]uint64) {
	var (
		b [25]uint64
		c [5]uint64
		d [5]uint64
	)
	for round := 0; round < 24; round++ {
		// Theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		// Rho and pi: (x, y) moves to (y, 2x+3y).
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = rotl64(a[x+5*y], keccakRotc[x][y])
			}
		}

		// Chi
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// Iota
		a[0] ^= keccakRC[round]
	}
}
