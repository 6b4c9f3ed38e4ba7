// Package schemajson loads and dumps abi.Schema values to and from a
// structural JSON representation, using goccy/go-json — the JSON library
// this module's corpus standardizes on for struct (de)serialization.
//
// This is not a Solidity type-string parser: the wire format names the
// same fields abi.Parameter already carries (kind, width, isArray,
// arraySize, tuple) rather than a type grammar like "uint256[3]". Schemas
// built this way are handed to abi.DecodeParam exactly like any other
// Schema value.
package schemajson

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ethabi/decode/abi"
)

// paramDoc is the on-the-wire shape of a single abi.Parameter.
type paramDoc struct {
	Kind      string     `json:"kind"`
	Width     int        `json:"width,omitempty"`
	IsArray   bool       `json:"isArray,omitempty"`
	ArraySize int        `json:"arraySize,omitempty"`
	Tuple     []paramDoc `json:"tuple,omitempty"`
}

var kindNames = map[string]abi.AtomicKind{
	"address":  abi.KindAddress,
	"bool":     abi.KindBool,
	"function": abi.KindFunction,
	"uint":     abi.KindUint,
	"int":      abi.KindInt,
	"bytesN":   abi.KindBytesN,
	"bytes":    abi.KindBytes,
	"string":   abi.KindString,
	"tuple":    abi.KindTuple,
}

var kindStrings = func() map[abi.AtomicKind]string {
	m := make(map[abi.AtomicKind]string, len(kindNames))
	for name, k := range kindNames {
		m[k] = name
	}
	return m
}()

// LoadSchema decodes a JSON-encoded schema document into an abi.Schema.
func LoadSchema(data []byte) (abi.Schema, error) {
	var docs []paramDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("schemajson: decode schema: %w", err)
	}
	schema := make(abi.Schema, len(docs))
	for i, d := range docs {
		p, err := toParameter(d)
		if err != nil {
			return nil, fmt.Errorf("schemajson: parameter %d: %w", i, err)
		}
		schema[i] = p
	}
	return schema, nil
}

// DumpSchema encodes an abi.Schema to its JSON document form.
func DumpSchema(schema abi.Schema) ([]byte, error) {
	docs := make([]paramDoc, len(schema))
	for i, p := range schema {
		d, err := toDoc(p)
		if err != nil {
			return nil, fmt.Errorf("schemajson: parameter %d: %w", i, err)
		}
		docs[i] = d
	}
	return json.Marshal(docs)
}

func toParameter(d paramDoc) (abi.Parameter, error) {
	kind, ok := kindNames[d.Kind]
	if !ok {
		return abi.Parameter{}, fmt.Errorf("unknown atomic kind %q", d.Kind)
	}
	p := abi.Parameter{
		Atomic:    abi.AtomicType{Kind: kind, Width: d.Width},
		IsArray:   d.IsArray,
		ArraySize: d.ArraySize,
	}
	if len(d.Tuple) > 0 {
		p.Tuple = make([]abi.Parameter, len(d.Tuple))
		for i, child := range d.Tuple {
			cp, err := toParameter(child)
			if err != nil {
				return abi.Parameter{}, fmt.Errorf("tuple member %d: %w", i, err)
			}
			p.Tuple[i] = cp
		}
	}
	return p, nil
}

func toDoc(p abi.Parameter) (paramDoc, error) {
	name, ok := kindStrings[p.Atomic.Kind]
	if !ok {
		return paramDoc{}, fmt.Errorf("unknown atomic kind %d", p.Atomic.Kind)
	}
	d := paramDoc{
		Kind:      name,
		Width:     p.Atomic.Width,
		IsArray:   p.IsArray,
		ArraySize: p.ArraySize,
	}
	if len(p.Tuple) > 0 {
		d.Tuple = make([]paramDoc, len(p.Tuple))
		for i, child := range p.Tuple {
			cd, err := toDoc(child)
			if err != nil {
				return paramDoc{}, fmt.Errorf("tuple member %d: %w", i, err)
			}
			d.Tuple[i] = cd
		}
	}
	return d, nil
}
