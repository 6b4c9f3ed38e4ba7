package abi_test

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/ethabi/decode/abi"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// hexToBytes converts a hex string to bytes, stripping an optional 0x prefix.
func hexToBytes(s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	b, _ := hex.DecodeString(s)
	return b
}

// word32 renders n as a 32-byte big-endian word.
func word32(n uint32) []byte {
	w := make([]byte, 32)
	binary.BigEndian.PutUint32(w[28:], n)
	return w
}

// wordLeft left-aligns b within a zero-padded 32-byte word.
func wordLeft(b []byte) []byte {
	w := make([]byte, 32)
	copy(w, b)
	return w
}

// wordRight right-aligns b within a zero-padded 32-byte word.
func wordRight(b []byte) []byte {
	w := make([]byte, 32)
	copy(w[32-len(b):], b)
	return w
}

var _ = Describe("DecodeParam", func() {
	// E1: baz(uint32,bool)
	Context("scalar elementary parameters", func() {
		schema := abi.Schema{
			{Atomic: abi.Uint(32)},
			{Atomic: abi.Bool()},
		}
		data := hexToBytes(
			"0000000000000000000000000000000000000000000000000000000000000045" +
				"0000000000000000000000000000000000000000000000000000000000000001",
		)

		It("decodes the uint32", func() {
			out := make([]byte, 4)
			n := abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0}, data)
			Expect(n).To(Equal(4))
			Expect(out).To(Equal([]byte{0, 0, 0, 0x45}))
		})

		It("decodes the bool", func() {
			out := make([]byte, 1)
			n := abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 1}, data)
			Expect(n).To(Equal(1))
			Expect(out).To(Equal([]byte{1}))
		})
	})

	// E2: bar(bytes3[2])
	Context("fixed-size array of elementary type", func() {
		schema := abi.Schema{
			{Atomic: abi.BytesN(3), IsArray: true, ArraySize: 2},
		}
		data := append(append([]byte{}, wordLeft([]byte("abc"))...), wordLeft([]byte("def"))...)

		It("decodes each inline element", func() {
			out := make([]byte, 3)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0, ArrayIndex: 0}, data)).To(Equal(3))
			Expect(out).To(Equal([]byte("abc")))

			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0, ArrayIndex: 1}, data)).To(Equal(3))
			Expect(out).To(Equal([]byte("def")))
		})
	})

	// E3: sam(bytes,bool,uint[]), the canonical Solidity ABI spec example.
	Context("mixed dynamic and variable-array parameters", func() {
		schema := abi.Schema{
			{Atomic: abi.Bytes()},
			{Atomic: abi.Bool()},
			{Atomic: abi.Uint(256), IsArray: true},
		}
		data := hexToBytes(strings.Join([]string{
			"0000000000000000000000000000000000000000000000000000000000000060",
			"0000000000000000000000000000000000000000000000000000000000000001",
			"00000000000000000000000000000000000000000000000000000000000000a0",
			"0000000000000000000000000000000000000000000000000000000000000004",
			"6461766500000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000003",
			"0000000000000000000000000000000000000000000000000000000000000001",
			"0000000000000000000000000000000000000000000000000000000000000002",
			"0000000000000000000000000000000000000000000000000000000000000003",
		}, ""))

		It("decodes the leading bytes and reports its size", func() {
			out := make([]byte, 4)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0}, data)).To(Equal(4))
			Expect(out).To(Equal([]byte("dave")))
			Expect(abi.ParamSize(schema, abi.Selector{TypeIndex: 0}, data)).To(Equal(4))
		})

		It("decodes the bool", func() {
			out := make([]byte, 1)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 1}, data)).To(Equal(1))
			Expect(out).To(Equal([]byte{1}))
		})

		It("decodes an element of the variable array and reports its length", func() {
			out := make([]byte, 32)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 2, ArrayIndex: 1}, data)).To(Equal(32))
			Expect(out).To(Equal(word32(2)))
			Expect(abi.ArrayLength(schema, abi.Selector{TypeIndex: 2}, data)).To(Equal(3))
		})
	})

	// E4: f(uint,uint32[],bytes10,bytes), the canonical Solidity ABI spec example.
	Context("fixed bytesN sitting in the head alongside variable-size neighbors", func() {
		schema := abi.Schema{
			{Atomic: abi.Uint(256)},
			{Atomic: abi.Uint(32), IsArray: true},
			{Atomic: abi.BytesN(10)},
			{Atomic: abi.Bytes()},
		}
		data := hexToBytes(strings.Join([]string{
			"0000000000000000000000000000000000000000000000000000000000000123",
			"0000000000000000000000000000000000000000000000000000000000000080",
			"3132333435363738393000000000000000000000000000000000000000000000",
			"00000000000000000000000000000000000000000000000000000000000000e0",
			"0000000000000000000000000000000000000000000000000000000000000002",
			"0000000000000000000000000000000000000000000000000000000000000456",
			"0000000000000000000000000000000000000000000000000000000000000789",
			"000000000000000000000000000000000000000000000000000000000000000d",
			"48656c6c6f2c20776f726c642100000000000000000000000000000000000000",
		}, ""))

		It("decodes the inline bytes10", func() {
			out := make([]byte, 10)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 2}, data)).To(Equal(10))
			Expect(out).To(Equal([]byte("1234567890")))
		})

		It("reports the variable array's length", func() {
			Expect(abi.ArrayLength(schema, abi.Selector{TypeIndex: 1}, data)).To(Equal(2))
		})
	})

	// E5: f(uint[3],uint[])
	Context("fixed array preceding a variable array", func() {
		schema := abi.Schema{
			{Atomic: abi.Uint(256), IsArray: true, ArraySize: 3},
			{Atomic: abi.Uint(256), IsArray: true},
		}
		var data []byte
		data = append(data, word32(1)...)
		data = append(data, word32(2)...)
		data = append(data, word32(3)...)
		data = append(data, word32(128)...) // offset to the tail, past all 4 head words
		data = append(data, word32(2)...)   // length of uint[]
		data = append(data, word32(10)...)
		data = append(data, word32(20)...)

		It("reads the third inline head word", func() {
			out := make([]byte, 32)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0, ArrayIndex: 2}, data)).To(Equal(32))
			Expect(out).To(Equal(word32(3)))
		})

		It("rejects an index past the fixed size", func() {
			out := make([]byte, 32)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0, ArrayIndex: 3}, data)).To(Equal(0))
		})

		It("skips all three fixed-array head slots when locating the variable array", func() {
			Expect(abi.ArrayLength(schema, abi.Selector{TypeIndex: 1}, data)).To(Equal(2))
		})
	})

	// E6: tuple((uint,uint,uint),(bytes,string,bytes),(address))
	Context("tuple dispatch", func() {
		schema := abi.Schema{
			{Atomic: abi.Tuple(), Tuple: []abi.Parameter{
				{Atomic: abi.Uint(256)},
				{Atomic: abi.Uint(256)},
				{Atomic: abi.Uint(256)},
			}},
			{Atomic: abi.Tuple(), Tuple: []abi.Parameter{
				{Atomic: abi.Bytes()},
				{Atomic: abi.String()},
				{Atomic: abi.Bytes()},
			}},
			{Atomic: abi.Tuple(), Tuple: []abi.Parameter{
				{Atomic: abi.Address()},
			}},
		}

		var data []byte
		// T0: fully static, inlined.
		data = append(data, word32(10)...)
		data = append(data, word32(20)...)
		data = append(data, word32(30)...)
		// T1: contains dynamic members, referenced by offset to byte 160.
		data = append(data, word32(160)...)
		// T2: fully static (one address word), inlined.
		addr := make([]byte, 20)
		for i := range addr {
			addr[i] = byte(i + 1)
		}
		data = append(data, wordRight(addr)...)
		// T1's own head: three offsets relative to T1's base (160).
		data = append(data, word32(96)...)
		data = append(data, word32(160)...)
		data = append(data, word32(224)...)
		// T1 member 0: bytes "abc".
		data = append(data, word32(3)...)
		data = append(data, wordLeft([]byte("abc"))...)
		// T1 member 1: string "hello world" (11 bytes).
		data = append(data, word32(11)...)
		data = append(data, wordLeft([]byte("hello world"))...)
		// T1 member 2: bytes "xyz".
		data = append(data, word32(3)...)
		data = append(data, wordLeft([]byte("xyz"))...)

		It("decodes a member of a fully static tuple", func() {
			out := make([]byte, 32)
			n := abi.DecodeTupleParam(out, schema,
				abi.Selector{TypeIndex: 0}, abi.Selector{TypeIndex: 1}, data)
			Expect(n).To(Equal(32))
			Expect(out).To(Equal(word32(20)))
		})

		It("decodes a dynamic member of a dynamic tuple via its offset slot", func() {
			out := make([]byte, 11)
			n := abi.DecodeTupleParam(out, schema,
				abi.Selector{TypeIndex: 1}, abi.Selector{TypeIndex: 1}, data)
			Expect(n).To(Equal(11))
			Expect(string(out)).To(Equal("hello world"))
		})

		It("decodes the address member of a single-field static tuple", func() {
			out := make([]byte, 20)
			n := abi.DecodeTupleParam(out, schema,
				abi.Selector{TypeIndex: 2}, abi.Selector{TypeIndex: 0}, data)
			Expect(n).To(Equal(20))
			Expect(out).To(Equal(addr))
		})
	})

	Context("invariants", func() {
		schema := abi.Schema{{Atomic: abi.Uint(256)}}
		data := word32(42)

		It("returns 0 for a type index out of range", func() {
			out := make([]byte, 32)
			Expect(abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 5}, data)).To(Equal(0))
		})

		It("returns 0 and writes nothing when the output buffer is too small", func() {
			out := []byte{0xFF}
			n := abi.DecodeParam(out, schema, abi.Selector{TypeIndex: 0}, data)
			Expect(n).To(Equal(0))
			Expect(out).To(Equal([]byte{0xFF}))
		})

		It("is deterministic across repeated calls", func() {
			out1 := make([]byte, 32)
			out2 := make([]byte, 32)
			abi.DecodeParam(out1, schema, abi.Selector{TypeIndex: 0}, data)
			abi.DecodeParam(out2, schema, abi.Selector{TypeIndex: 0}, data)
			Expect(out1).To(Equal(out2))
		})

		It("fails when the buffer is truncated before the head slot", func() {
			Expect(abi.DecodeParam(make([]byte, 32), schema, abi.Selector{TypeIndex: 0}, data[:16])).To(Equal(0))
		})
	})
})
