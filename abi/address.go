package abi

import "github.com/ethereum/go-ethereum/common"

// DecodeAddress is a convenience wrapper around DecodeParam for callers
// who want the typed common.Address form of an address parameter rather
// than its raw 20 bytes. Returns the zero address and false if the
// selected parameter isn't an address, or on any decode failure.
func DecodeAddress(schema Schema, sel Selector, in []byte) (common.Address, bool) {
	if sel.TypeIndex < 0 || sel.TypeIndex >= len(schema) {
		return common.Address{}, false
	}
	if schema[sel.TypeIndex].Atomic.Kind != KindAddress {
		return common.Address{}, false
	}
	var addr common.Address
	n := DecodeParam(addr[:], schema, sel, in)
	if n != 20 {
		return common.Address{}, false
	}
	return addr, true
}
