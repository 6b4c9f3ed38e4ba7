// Package hexfixture builds word-aligned ABI byte fixtures for tests and
// benchmarks: joining hex-word strings into a buffer, and left/right-aligning
// raw values into 32-byte words the way head/tail ABI encoding does.
package hexfixture

import (
	"encoding/binary"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethabi/decode/utils"
)

// WordSize is the 32-byte word width ABI encoding is aligned to.
const WordSize = 32

// Words joins a sequence of hex-encoded 32-byte words (each with or without
// a "0x" prefix) into a single decoded byte buffer.
func Words(words ...string) []byte {
	var buf strings.Builder
	for _, w := range words {
		buf.WriteString(strings.TrimPrefix(w, "0x"))
	}
	b, err := utils.HexToBytes(buf.String())
	if err != nil {
		panic("hexfixture: invalid hex word: " + err.Error())
	}
	return b
}

// Uint32Word renders n as a 32-byte big-endian word, as a head-slot integer
// or array length would be encoded.
func Uint32Word(n uint32) []byte {
	w := make([]byte, WordSize)
	binary.BigEndian.PutUint32(w[WordSize-4:], n)
	return w
}

// Left left-aligns b within a zero-padded 32-byte word, as bytesN and
// function-selector values are encoded.
func Left(b []byte) []byte {
	return common.RightPadBytes(b, WordSize)
}

// Right right-aligns b within a zero-padded 32-byte word, as integers,
// bool, and address values are encoded.
func Right(b []byte) []byte {
	return common.LeftPadBytes(b, WordSize)
}

// Concat joins whole words (or any byte slices) into a single buffer.
func Concat(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
