// Package abi implements a random-access decoder for the Ethereum Contract
// ABI encoding of contract-call argument blobs.
//
// Given a schema (an ordered list of typed parameters describing a function
// signature) and a byte buffer holding the ABI-encoded arguments, the
// decoder extracts a single selected value — or the size of a dynamic
// value, or the length of a variable-sized array — without materializing
// the whole decoded tree. The core performs no allocation; every result is
// copied into a caller-supplied output buffer.
//
// Every public operation returns a single count (bytes written, byte
// length, or element count) in which zero denotes failure, mirroring the
// calling convention of the C library this package's wire semantics are
// drawn from. There is no rich error channel: a zero return means the
// caller must treat the output buffer as undefined. No operation panics.
package abi
