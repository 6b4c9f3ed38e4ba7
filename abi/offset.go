package abi

// This file holds the offset resolver: the central algorithm that, given a
// schema and a selector, computes the byte offset of a parameter's
// starting word. The encoding mixes a fixed "head" of one 32-byte slot per
// top-level parameter with a variably shaped "tail" holding the bodies of
// dynamic parameters, variable-size arrays, and non-static tuples — the
// bulk of this package's complexity lives here.

// headWalk returns the byte length of the head region preceding
// schema[upTo], i.e. the sum, over schema[0:upTo], of the number of head
// words each parameter consumes. Most parameters consume exactly one
// 32-byte slot; fixed-size elementary arrays and fully static tuples
// inline all of their words instead of an offset.
func headWalk(schema []Parameter, upTo int) (int, bool) {
	bytes := 0
	for i := 0; i < upTo; i++ {
		p := schema[i]
		switch classify(p) {
		case ShapeInvalid:
			return 0, false
		case ShapeElemFixedArr:
			bytes += wordSize * p.ArraySize
		case ShapeTuple:
			n, ok := staticTupleSlotWords(p)
			if !ok {
				bytes += wordSize
				continue
			}
			bytes += wordSize * n
		default:
			bytes += wordSize
		}
	}
	return bytes, true
}

// staticTupleSlotWords returns the number of head words a tuple parameter
// inlines, and true, only when the tuple is a fully static elementary
// tuple (no dynamic member, no variable-size elementary array member, and
// not itself a variable-size array of tuples). Any other tuple form is
// addressed by an offset slot instead, so this returns false.
func staticTupleSlotWords(p Parameter) (int, bool) {
	if p.IsArray && p.ArraySize == 0 {
		return 0, false
	}
	words, static := tupleStaticWordCount(p.Tuple)
	if !static {
		return 0, false
	}
	factor := 1
	if p.IsArray {
		factor = p.ArraySize
	}
	return factor * words, true
}

// tupleStaticWordCount computes the inline word count of a tuple's
// children, assuming every one of them is itself statically sized. It
// returns static=false the moment it finds a dynamic member, a
// variable-size elementary array member, or a non-static nested tuple —
// any of which forces the enclosing tuple into the tail, addressed by an
// offset.
func tupleStaticWordCount(children []Parameter) (int, bool) {
	words := 0
	for _, c := range children {
		switch classify(c) {
		case ShapeSingleElem:
			words++
		case ShapeElemFixedArr:
			words += c.ArraySize
		case ShapeTuple:
			n, ok := staticTupleSlotWords(c)
			if !ok {
				return 0, false
			}
			words += n
		default:
			// dynamic, variable-size elementary array, dynamic array, or
			// invalid: the tuple cannot be inlined.
			return 0, false
		}
	}
	return words, true
}

// paramLocation resolves the byte offset, within in, of schema[typeIndex]'s
// starting word — for scalar and fixed-array elementary parameters this is
// the data itself; for every dynamic, variable-size, or non-static-tuple
// shape it is the (already-dereferenced) start of that parameter's tail
// region: a size-prefix word for dynamic/variable shapes, or the tuple's
// own head for tuple shapes. base is the absolute offset of the start of
// the buffer region schema lives in (0 for the top-level schema, or a
// tuple's own resolved offset when recursing into its children).
func paramLocation(schema []Parameter, base int, typeIndex int, in []byte) (int, ShapeClass, bool) {
	if typeIndex < 0 || typeIndex >= len(schema) {
		return 0, ShapeInvalid, false
	}
	head, ok := headWalk(schema, typeIndex)
	if !ok {
		return 0, ShapeInvalid, false
	}
	headOffset, ok := addOffset(base, uint32(head))
	if !ok {
		return 0, ShapeInvalid, false
	}

	p := schema[typeIndex]
	shape := classify(p)

	switch shape {
	case ShapeSingleElem, ShapeElemFixedArr:
		return headOffset, shape, true

	case ShapeSingleDyn, ShapeElemVarArr, ShapeDynFixedArr, ShapeDynVarArr:
		slot, ok := readUint32BE(in, headOffset)
		if !ok {
			return 0, ShapeInvalid, false
		}
		off, ok := addOffset(base, slot)
		if !ok {
			return 0, ShapeInvalid, false
		}
		return off, shape, true

	case ShapeTuple:
		if n, ok := staticTupleSlotWords(p); ok {
			_ = n
			return headOffset, shape, true
		}
		slot, ok := readUint32BE(in, headOffset)
		if !ok {
			return 0, ShapeInvalid, false
		}
		off, ok := addOffset(base, slot)
		if !ok {
			return 0, ShapeInvalid, false
		}
		return off, shape, true

	default:
		return 0, ShapeInvalid, false
	}
}

// tupleElementBase resolves the absolute offset of a single tuple
// instance's own head, given the tuple parameter p, the location loc
// paramLocation returned for it, and an array index (ignored when p is not
// an array). This is the "tuple-array data start" logic of the spec: for a
// fully static tuple the elements are packed tupleSize words apart either
// inline in the head or in a contiguous tail block; for any tuple with
// dynamic content each element is reached through a per-element offset
// table, exactly like a fixed- or variable-size array of dynamic values.
func tupleElementBase(p Parameter, loc int, arrayIndex int, in []byte) (int, bool) {
	if !p.IsArray {
		return loc, true
	}

	static, isStatic := tupleStaticWordCount(p.Tuple)

	if p.ArraySize > 0 {
		if arrayIndex < 0 || arrayIndex >= p.ArraySize {
			return 0, false
		}
		if isStatic {
			return addOffset(loc, uint32(arrayIndex*static*wordSize))
		}
		elemSlot := loc + wordSize*arrayIndex
		rel, ok := readUint32BE(in, elemSlot)
		if !ok {
			return 0, false
		}
		return addOffset(loc, rel)
	}

	// Variable-size array of tuples: loc is the length word.
	length, ok := readUint32BE(in, loc)
	if !ok {
		return 0, false
	}
	if arrayIndex < 0 || uint32(arrayIndex) >= length {
		return 0, false
	}
	tableBase, ok := addOffset(loc, wordSize)
	if !ok {
		return 0, false
	}
	if isStatic {
		return addOffset(tableBase, uint32(arrayIndex*static*wordSize))
	}
	elemSlot := tableBase + wordSize*arrayIndex
	rel, ok := readUint32BE(in, elemSlot)
	if !ok {
		return 0, false
	}
	return addOffset(tableBase, rel)
}
