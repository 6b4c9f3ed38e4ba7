// Package selector computes and round-trips the 4-byte function selectors
// used as the "caller contract" of this module's core decoder: the method
// selector, if present in a call payload, is stripped by the caller before
// the argument buffer reaches abi.DecodeParam and friends. It also renders
// the canonical Solidity type signature of an abi.Schema, the string whose
// keccak256 hash the selector is derived from.
package selector

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ethabi/decode/abi"
)

// StripSelector splits a contract-call payload into its leading 4-byte
// method selector and the remaining argument blob, which is the buffer
// form abi.DecodeParam and friends expect. Returns ok=false if data is
// shorter than 4 bytes.
func StripSelector(data []byte) (sel [4]byte, args []byte, ok bool) {
	if len(data) < 4 {
		return [4]byte{}, nil, false
	}
	copy(sel[:], data[:4])
	return sel, data[4:], true
}

// ComputeSelector computes the 4-byte function selector from a function signature.
// Example: ComputeSelector("transfer(address,uint256)") returns [4]byte{0xa9, 0x05, 0x9c, 0xbb}
func ComputeSelector(signature string) [4]byte {
	hash := crypto.Keccak256([]byte(signature))
	var selector [4]byte
	copy(selector[:], hash[:4])
	return selector
}

// ComputeSelectorHex computes the function selector and returns it as a hex string with 0x prefix.
func ComputeSelectorHex(signature string) string {
	selector := ComputeSelector(signature)
	return "0x" + hex.EncodeToString(selector[:])
}

// SelectorToHex converts a 4-byte selector to a hex string with 0x prefix.
func SelectorToHex(selector [4]byte) string {
	return "0x" + hex.EncodeToString(selector[:])
}

// HexToSelector converts a hex string to a 4-byte selector.
// Accepts both "0x" prefixed and unprefixed strings.
func HexToSelector(hexStr string) ([4]byte, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	hexStr = strings.TrimPrefix(hexStr, "0X")

	if len(hexStr) != 8 {
		return [4]byte{}, fmt.Errorf("invalid selector hex length: expected 8 characters, got %d", len(hexStr))
	}

	bytes, err := hex.DecodeString(hexStr)
	if err != nil {
		return [4]byte{}, fmt.Errorf("invalid hex string: %w", err)
	}

	var selector [4]byte
	copy(selector[:], bytes)
	return selector, nil
}

// MustHexToSelector converts a hex string to a selector, panicking on error.
func MustHexToSelector(hexStr string) [4]byte {
	selector, err := HexToSelector(hexStr)
	if err != nil {
		panic(err)
	}
	return selector
}

// TypeName renders the canonical Solidity type name of a schema parameter
// (e.g. "uint256", "bytes3[2]", "(uint256,bytes)[]"), the form a function
// signature is built from. Returns ok=false if p does not describe a
// recognized type (see abi.ValidateSchema).
func TypeName(p abi.Parameter) (string, bool) {
	if !abi.ValidateSchema(abi.Schema{p}) {
		return "", false
	}
	var base string
	if p.Atomic.Kind == abi.KindTuple {
		if len(p.Tuple) == 0 {
			return "", false
		}
		members := make([]string, len(p.Tuple))
		for i, member := range p.Tuple {
			name, ok := TypeName(member)
			if !ok {
				return "", false
			}
			members[i] = name
		}
		base = "(" + strings.Join(members, ",") + ")"
	} else {
		name, ok := atomicTypeName(p.Atomic)
		if !ok {
			return "", false
		}
		base = name
	}

	if !p.IsArray {
		return base, true
	}
	if p.ArraySize > 0 {
		return base + "[" + strconv.Itoa(p.ArraySize) + "]", true
	}
	return base + "[]", true
}

func atomicTypeName(a abi.AtomicType) (string, bool) {
	switch a.Kind {
	case abi.KindAddress:
		return "address", true
	case abi.KindBool:
		return "bool", true
	case abi.KindFunction:
		return "function", true
	case abi.KindUint:
		return "uint" + strconv.Itoa(a.Width), true
	case abi.KindInt:
		return "int" + strconv.Itoa(a.Width), true
	case abi.KindBytesN:
		return "bytes" + strconv.Itoa(a.Width), true
	case abi.KindBytes:
		return "bytes", true
	case abi.KindString:
		return "string", true
	default:
		return "", false
	}
}

// BuildSchemaSignature renders the canonical function signature of a named
// function whose parameters are schema, e.g. "transfer(address,uint256)".
// Returns ok=false if any parameter in schema fails to render.
func BuildSchemaSignature(name string, schema abi.Schema) (string, bool) {
	types := make([]string, len(schema))
	for i, p := range schema {
		t, ok := TypeName(p)
		if !ok {
			return "", false
		}
		types[i] = t
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(types, ",")), true
}

// ComputeSchemaSelector computes the 4-byte function selector directly from
// a function name and its abi.Schema, without the caller hand-writing the
// signature string. Returns ok=false if schema fails to render (see
// BuildSchemaSignature).
func ComputeSchemaSelector(name string, schema abi.Schema) ([4]byte, bool) {
	signature, ok := BuildSchemaSignature(name, schema)
	if !ok {
		return [4]byte{}, false
	}
	return ComputeSelector(signature), true
}
