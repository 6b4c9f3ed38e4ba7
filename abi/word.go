package abi

import "encoding/binary"

// wordSize is the fixed alignment unit of the ABI encoding.
const wordSize = 32

// maxOffset bounds any offset this decoder will follow. The encoding
// permits 256-bit offsets, but no real payload exceeds 4 GiB, so a 32-bit
// window is sufficient; this also protects the bounds arithmetic below
// from ever overflowing a 64-bit int.
const maxOffset = 1 << 32

// readUint32BE reads the last four bytes of the 32-byte word at byte
// offset off as a big-endian unsigned integer. It fails (returns false) if
// the word would extend beyond the end of buf.
func readUint32BE(buf []byte, off int) (uint32, bool) {
	if off < 0 || off > len(buf)-wordSize {
		return 0, false
	}
	return binary.BigEndian.Uint32(buf[off+wordSize-4 : off+wordSize]), true
}

// addOffset computes base+delta, failing on overflow past maxOffset
// rather than wrapping.
func addOffset(base int, delta uint32) (int, bool) {
	if base < 0 {
		return 0, false
	}
	sum := int64(base) + int64(delta)
	if sum < 0 || sum > maxOffset {
		return 0, false
	}
	return int(sum), true
}

// withinBounds reports whether the half-open range [off, off+n) lies
// entirely within a buffer of length bufLen.
func withinBounds(off, n, bufLen int) bool {
	if off < 0 || n < 0 {
		return false
	}
	return off <= bufLen-n
}
