package digest

import hex "github.com/tmthrgd/go-hex"

// Hex renders a digest as lowercase hexadecimal, two digits per byte.
func Hex(d Digest) string {
	return hex.EncodeToString(d[:])
}
