package draid

import "encoding/binary"

// fletcher4 computes ZFS's native Fletcher-4 checksum over buf and
// returns its first running sum, the word check_map compares against
// the table's stored checksum. buf's length must be a multiple of 4;
// every permutation map buffer satisfies this because nperms is always
// a multiple of 4 in the hard-coded table.
//
// Fletcher-4 keeps four cumulative sums (a, b, c, d) where each is the
// running total of the one before it. Only "a" — the plain sum of all
// 32-bit words — is used here, matching the single word the original
// format verifies a stored map against.
func fletcher4(buf []byte) uint64 {
	var a uint64
	for i := 0; i+4 <= len(buf); i += 4 {
		a += uint64(binary.NativeEndian.Uint32(buf[i : i+4]))
	}
	return a
}
