package abi

// decodeElement copies a single elementary value out of the 32-byte word
// at byte offset wordOffset in in, writing it unpadded to out.
//
// Fixed byte-strings (bytesN) and function selectors occupy the high
// bytes of their word (left-aligned); addresses, bools, and integers
// occupy the low bytes (right-aligned) per the ABI spec, regardless of
// what older revisions of this style of decoder assumed about address
// padding.
//
// Returns the number of bytes written, or 0 on any bounds failure: the
// word does not fit in in, or the element's width does not fit in out.
func decodeElement(out []byte, atomic AtomicType, in []byte, wordOffset int) int {
	n, ok := elementWidth(atomic)
	if !ok {
		return 0
	}
	if !withinBounds(wordOffset, wordSize, len(in)) {
		return 0
	}
	if len(out) < n {
		return 0
	}

	var src []byte
	if atomic.Kind == KindBytesN || atomic.Kind == KindFunction {
		src = in[wordOffset : wordOffset+n]
	} else {
		src = in[wordOffset+wordSize-n : wordOffset+wordSize]
	}
	copy(out[:n], src)
	return n
}
