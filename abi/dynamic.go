package abi

// decodeDynamic reads a size-prefixed dynamic payload (bytes/string)
// starting at the 32-byte size word located at byte offset off in in.
//
// When sizeOnly is true, the payload is not copied: the function only
// validates that the declared size and payload both fit within in, and
// returns the size regardless of out's capacity (out may be nil). When
// sizeOnly is false, exactly size bytes are copied into out, with no
// trailing zero padding, provided out is large enough.
//
// Returns the payload size on success, or 0 if: the size word itself is
// out of range, the declared size plus its payload would exceed in's
// length, or (when copying) out is smaller than size.
func decodeDynamic(out []byte, sizeOnly bool, in []byte, off int) int {
	sizeWord, ok := readUint32BE(in, off)
	if !ok {
		return 0
	}
	size := int(sizeWord)
	dataOffset := off + wordSize

	if !withinBounds(dataOffset, size, len(in)) {
		return 0
	}
	if sizeOnly {
		return size
	}
	if len(out) < size {
		return 0
	}
	copy(out[:size], in[dataOffset:dataOffset+size])
	return size
}
