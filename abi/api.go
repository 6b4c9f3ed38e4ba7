package abi

// decodeResolved finishes a decode once paramLocation has produced loc and
// shape for param: it applies whatever array/tail indirection the shape
// still requires and copies the final value into out. Shared between
// DecodeParam and DecodeTupleParam, which differ only in how they arrive
// at (param, shape, loc).
func decodeResolved(out []byte, param Parameter, shape ShapeClass, loc int, arrayIndex int, in []byte) int {
	switch shape {
	case ShapeSingleElem:
		return decodeElement(out, param.Atomic, in, loc)

	case ShapeElemFixedArr:
		if arrayIndex < 0 || arrayIndex >= param.ArraySize {
			return 0
		}
		off, ok := addOffset(loc, uint32(arrayIndex*wordSize))
		if !ok {
			return 0
		}
		return decodeElement(out, param.Atomic, in, off)

	case ShapeElemVarArr:
		length, ok := readUint32BE(in, loc)
		if !ok || arrayIndex < 0 || uint32(arrayIndex) >= length {
			return 0
		}
		base, ok := addOffset(loc, wordSize)
		if !ok {
			return 0
		}
		off, ok := addOffset(base, uint32(arrayIndex*wordSize))
		if !ok {
			return 0
		}
		return decodeElement(out, param.Atomic, in, off)

	case ShapeSingleDyn:
		return decodeDynamic(out, false, in, loc)

	case ShapeDynFixedArr:
		if arrayIndex < 0 || arrayIndex >= param.ArraySize {
			return 0
		}
		elemSlot := loc + wordSize*arrayIndex
		rel, ok := readUint32BE(in, elemSlot)
		if !ok {
			return 0
		}
		off, ok := addOffset(loc, rel)
		if !ok {
			return 0
		}
		return decodeDynamic(out, false, in, off)

	case ShapeDynVarArr:
		length, ok := readUint32BE(in, loc)
		if !ok || arrayIndex < 0 || uint32(arrayIndex) >= length {
			return 0
		}
		tableBase, ok := addOffset(loc, wordSize)
		if !ok {
			return 0
		}
		elemSlot := tableBase + wordSize*arrayIndex
		rel, ok := readUint32BE(in, elemSlot)
		if !ok {
			return 0
		}
		off, ok := addOffset(tableBase, rel)
		if !ok {
			return 0
		}
		return decodeDynamic(out, false, in, off)

	default:
		return 0
	}
}

// sizeResolved is decodeResolved's read-only sibling for ParamSize: it
// locates a dynamic value's payload without copying it.
func sizeResolved(param Parameter, shape ShapeClass, loc int, arrayIndex int, in []byte) int {
	switch shape {
	case ShapeSingleDyn:
		return decodeDynamic(nil, true, in, loc)

	case ShapeDynFixedArr:
		if arrayIndex < 0 || arrayIndex >= param.ArraySize {
			return 0
		}
		elemSlot := loc + wordSize*arrayIndex
		rel, ok := readUint32BE(in, elemSlot)
		if !ok {
			return 0
		}
		off, ok := addOffset(loc, rel)
		if !ok {
			return 0
		}
		return decodeDynamic(nil, true, in, off)

	case ShapeDynVarArr:
		length, ok := readUint32BE(in, loc)
		if !ok || arrayIndex < 0 || uint32(arrayIndex) >= length {
			return 0
		}
		tableBase, ok := addOffset(loc, wordSize)
		if !ok {
			return 0
		}
		elemSlot := tableBase + wordSize*arrayIndex
		rel, ok := readUint32BE(in, elemSlot)
		if !ok {
			return 0
		}
		off, ok := addOffset(tableBase, rel)
		if !ok {
			return 0
		}
		return decodeDynamic(nil, true, in, off)

	default:
		return 0
	}
}

// lengthResolved returns the element count of a variable-size array shape,
// or 0 for any other shape.
func lengthResolved(shape ShapeClass, loc int, in []byte) int {
	switch shape {
	case ShapeElemVarArr, ShapeDynVarArr:
		length, ok := readUint32BE(in, loc)
		if !ok {
			return 0
		}
		return int(length)
	default:
		return 0
	}
}

// DecodeParam decodes the parameter at sel.TypeIndex (and, for arrays,
// element sel.ArrayIndex) from in, writing it unpadded into out.
//
// Returns the number of bytes written, or 0 if: schema does not validate,
// sel.TypeIndex is out of range, sel.ArrayIndex is out of range for the
// parameter's declared or encoded length, the selected parameter is a
// tuple (use DecodeTupleParam instead), or any bounds check fails.
func DecodeParam(out []byte, schema Schema, sel Selector, in []byte) int {
	if !ValidateSchema(schema) {
		return 0
	}
	loc, shape, ok := paramLocation(schema, 0, sel.TypeIndex, in)
	if !ok || shape == ShapeTuple {
		return 0
	}
	return decodeResolved(out, schema[sel.TypeIndex], shape, loc, sel.ArrayIndex, in)
}

// ParamSize returns the byte length of a dynamic parameter (a bare
// bytes/string, or one element of a dynamic array) without copying it.
// Returns 0 for non-dynamic, invalid, or out-of-range selectors.
func ParamSize(schema Schema, sel Selector, in []byte) int {
	if !ValidateSchema(schema) {
		return 0
	}
	loc, shape, ok := paramLocation(schema, 0, sel.TypeIndex, in)
	if !ok || shape == ShapeTuple {
		return 0
	}
	return sizeResolved(schema[sel.TypeIndex], shape, loc, sel.ArrayIndex, in)
}

// ArrayLength returns the element count of a variable-size array parameter.
// Returns 0 if the selected parameter is not a variable-size array (fixed
// arrays have no encoded length to read), or on any bounds failure.
func ArrayLength(schema Schema, sel Selector, in []byte) int {
	if !ValidateSchema(schema) {
		return 0
	}
	loc, shape, ok := paramLocation(schema, 0, sel.TypeIndex, in)
	if !ok {
		return 0
	}
	return lengthResolved(shape, loc, in)
}

// DecodeTupleParam decodes a member of a tuple parameter. tupleSel
// addresses the tuple itself (and, if the tuple is an array, which
// element); innerSel addresses the member within that tuple instance (and,
// if the member is itself an array, which element of it).
//
// Returns the number of bytes written, or 0 if: schema does not validate,
// either selector is out of range, the outer parameter is not a tuple, or
// any bounds check fails.
func DecodeTupleParam(out []byte, schema Schema, tupleSel, innerSel Selector, in []byte) int {
	inner, loc, shape, ok := resolveTupleMember(schema, tupleSel, innerSel, in)
	if !ok {
		return 0
	}
	return decodeResolved(out, inner, shape, loc, innerSel.ArrayIndex, in)
}

// TupleArrayLength returns the element count of a variable-size array
// member within a tuple instance, addressed the same way as
// DecodeTupleParam. Returns 0 if that member is not a variable-size array.
func TupleArrayLength(schema Schema, tupleSel, innerSel Selector, in []byte) int {
	_, loc, shape, ok := resolveTupleMember(schema, tupleSel, innerSel, in)
	if !ok {
		return 0
	}
	return lengthResolved(shape, loc, in)
}

// resolveTupleMember locates the inner parameter innerSel.TypeIndex within
// the tuple instance addressed by tupleSel, returning its Parameter, its
// location, and its shape.
func resolveTupleMember(schema Schema, tupleSel, innerSel Selector, in []byte) (Parameter, int, ShapeClass, bool) {
	if !ValidateSchema(schema) {
		return Parameter{}, 0, ShapeInvalid, false
	}
	loc, shape, ok := paramLocation(schema, 0, tupleSel.TypeIndex, in)
	if !ok || shape != ShapeTuple {
		return Parameter{}, 0, ShapeInvalid, false
	}
	outer := schema[tupleSel.TypeIndex]

	tupleBase, ok := tupleElementBase(outer, loc, tupleSel.ArrayIndex, in)
	if !ok {
		return Parameter{}, 0, ShapeInvalid, false
	}

	innerLoc, innerShape, ok := paramLocation(outer.Tuple, tupleBase, innerSel.TypeIndex, in)
	if !ok {
		return Parameter{}, 0, ShapeInvalid, false
	}
	return outer.Tuple[innerSel.TypeIndex], innerLoc, innerShape, true
}
