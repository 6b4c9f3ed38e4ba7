// Package schemacache memoizes abi.ValidateSchema results behind an LRU,
// for callers that re-validate the same small set of schemas on every call
// (e.g. a contract-call dispatcher keyed by selector). Callers opt in
// explicitly by constructing a Cache; abi.ValidateSchema itself stays
// pure and uncached.
package schemacache

import (
	"strconv"
	"strings"

	"github.com/ethabi/decode/abi"
	"github.com/ethabi/decode/utils"
)

// Cache memoizes ValidateSchema by a structural fingerprint of the schema.
type Cache struct {
	results *utils.LruMap[bool]
}

// New creates a Cache that retains results for up to maxSize distinct schemas.
func New(maxSize int) *Cache {
	return &Cache{results: utils.NewLruMap[bool](maxSize)}
}

// Validate returns abi.ValidateSchema(schema), served from cache when this
// exact schema shape was already validated.
func (c *Cache) Validate(schema abi.Schema) bool {
	key := fingerprint(schema)
	if ok, hit := c.results.Get(key); hit {
		return ok
	}
	ok := abi.ValidateSchema(schema)
	c.results.Set(key, ok)
	return ok
}

// Size reports how many distinct schema fingerprints are currently cached.
func (c *Cache) Size() int {
	return c.results.Size()
}

// Clear evicts every cached result.
func (c *Cache) Clear() {
	c.results.Clear()
}

// fingerprint renders a schema into a string that is equal for two schemas
// iff they are structurally identical, without relying on the schema being
// comparable or hashable as a Go value.
func fingerprint(schema abi.Schema) string {
	var b strings.Builder
	writeSchema(&b, schema)
	return b.String()
}

func writeSchema(b *strings.Builder, schema abi.Schema) {
	b.WriteByte('[')
	for i, p := range schema {
		if i > 0 {
			b.WriteByte(',')
		}
		writeParameter(b, p)
	}
	b.WriteByte(']')
}

func writeParameter(b *strings.Builder, p abi.Parameter) {
	b.WriteByte('{')
	b.WriteString(strconv.Itoa(int(p.Atomic.Kind)))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(p.Atomic.Width))
	if p.IsArray {
		b.WriteByte('a')
	}
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(p.ArraySize))
	if len(p.Tuple) > 0 {
		b.WriteByte('(')
		for i, child := range p.Tuple {
			if i > 0 {
				b.WriteByte(',')
			}
			writeParameter(b, child)
		}
		b.WriteByte(')')
	}
	b.WriteByte('}')
}
