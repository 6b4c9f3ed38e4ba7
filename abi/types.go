package abi

// AtomicKind identifies the family of an atomic ABI type. Integer and
// fixed-byte-string types carry their width in AtomicType.Width rather than
// being enumerated one constant per bit size (uint8..uint256, bytes1..
// bytes32); this collapses what upstream revisions spread across dozens of
// tag values into one small switch per concern.
type AtomicKind uint8

const (
	KindInvalid AtomicKind = iota
	KindAddress
	KindBool
	KindFunction
	KindUint
	KindInt
	KindBytesN // fixed byte-string bytes1..bytes32; Width holds N
	KindBytes  // dynamic bytes
	KindString // dynamic string
	KindTuple  // tuple marker; children live on the owning Parameter.Tuple
)

// AtomicType is the tagged variant identifying one atomic ABI type.
type AtomicType struct {
	Kind AtomicKind
	// Width carries the bit width for KindUint/KindInt (8, 16, 24, 32, 64,
	// 128 or 256) and the byte width for KindBytesN (1..32). It is unused
	// for every other kind.
	Width int
}

func Address() AtomicType  { return AtomicType{Kind: KindAddress} }
func Bool() AtomicType     { return AtomicType{Kind: KindBool} }
func Function() AtomicType { return AtomicType{Kind: KindFunction} }
func Bytes() AtomicType    { return AtomicType{Kind: KindBytes} }
func String() AtomicType   { return AtomicType{Kind: KindString} }
func Tuple() AtomicType    { return AtomicType{Kind: KindTuple} }

// Uint builds an unsigned integer atomic type of the given bit width.
func Uint(bits int) AtomicType { return AtomicType{Kind: KindUint, Width: bits} }

// Int builds a signed integer atomic type of the given bit width.
func Int(bits int) AtomicType { return AtomicType{Kind: KindInt, Width: bits} }

// BytesN builds a fixed byte-string atomic type of the given byte width
// (bytes1..bytes32).
func BytesN(n int) AtomicType { return AtomicType{Kind: KindBytesN, Width: n} }

var validIntWidths = map[int]bool{8: true, 16: true, 24: true, 32: true, 64: true, 128: true, 256: true}

// elementWidth returns the byte width an elementary atomic type occupies
// once unpadded, and false for dynamic or tuple kinds (which have no fixed
// element width) or for a malformed width.
func elementWidth(a AtomicType) (int, bool) {
	switch a.Kind {
	case KindAddress:
		return 20, true
	case KindBool:
		return 1, true
	case KindFunction:
		return 24, true
	case KindUint, KindInt:
		if !validIntWidths[a.Width] {
			return 0, false
		}
		return a.Width / 8, true
	case KindBytesN:
		if a.Width < 1 || a.Width > 32 {
			return 0, false
		}
		return a.Width, true
	default:
		return 0, false
	}
}

func isDynamicAtomic(a AtomicType) bool {
	return a.Kind == KindBytes || a.Kind == KindString
}

func isTupleAtomic(a AtomicType) bool {
	return a.Kind == KindTuple
}

func isElementaryAtomic(a AtomicType) bool {
	_, ok := elementWidth(a)
	return ok
}

// Parameter is a single schema entry: an atomic type plus its array shape.
//
//   - IsArray == false: a single value.
//   - IsArray == true, ArraySize == 0: a variable-length array (the zero
//     value is the sentinel for "dynamic size", carried over unchanged from
//     the upstream ABI_t{isArray, arraySz} convention).
//   - IsArray == true, ArraySize > 0: a fixed-length, one-dimensional array.
//
// Tuple is non-nil only when Atomic.Kind == KindTuple, and holds the
// tuple's member parameters directly (an explicit nested structure, rather
// than the upstream convention of appending tuple children to the tail of
// a flat schema list — both are spec-equivalent; nesting is less fragile
// to index arithmetic).
type Parameter struct {
	Atomic    AtomicType
	IsArray   bool
	ArraySize int
	Tuple     []Parameter
}

// Schema is an ordered, immutable list of top-level parameters.
type Schema []Parameter

// Selector addresses a single parameter (and, for arrays, a single
// element) within a schema. ArrayIndex is ignored for non-array
// parameters.
type Selector struct {
	TypeIndex  int
	ArrayIndex int
}

// ShapeClass is the exhaustive classification of a parameter's storage
// shape, used to dispatch offset resolution and decoding.
type ShapeClass uint8

const (
	ShapeInvalid ShapeClass = iota
	ShapeSingleElem
	ShapeSingleDyn
	ShapeElemFixedArr
	ShapeElemVarArr
	ShapeDynFixedArr
	ShapeDynVarArr
	ShapeTuple
)

// classify assigns a parameter to exactly one shape class, or reports
// ShapeInvalid if the parameter's fields don't describe a recognized
// shape (unknown atomic kind, non-array with a non-zero ArraySize, a
// negative ArraySize, or a tuple marker missing its children).
func classify(p Parameter) ShapeClass {
	if p.ArraySize < 0 {
		return ShapeInvalid
	}
	if !p.IsArray && p.ArraySize != 0 {
		return ShapeInvalid
	}

	if isTupleAtomic(p.Atomic) {
		if len(p.Tuple) == 0 {
			return ShapeInvalid
		}
		for _, child := range p.Tuple {
			if classify(child) == ShapeInvalid {
				return ShapeInvalid
			}
		}
		return ShapeTuple
	}
	if len(p.Tuple) != 0 {
		return ShapeInvalid
	}

	dyn := isDynamicAtomic(p.Atomic)
	elem := isElementaryAtomic(p.Atomic)
	if !dyn && !elem {
		return ShapeInvalid
	}

	switch {
	case !p.IsArray && elem:
		return ShapeSingleElem
	case !p.IsArray && dyn:
		return ShapeSingleDyn
	case p.IsArray && p.ArraySize > 0 && elem:
		return ShapeElemFixedArr
	case p.IsArray && p.ArraySize == 0 && elem:
		return ShapeElemVarArr
	case p.IsArray && p.ArraySize > 0 && dyn:
		return ShapeDynFixedArr
	case p.IsArray && p.ArraySize == 0 && dyn:
		return ShapeDynVarArr
	default:
		return ShapeInvalid
	}
}
