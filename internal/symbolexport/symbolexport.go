// Package symbolexport serializes a compiled translation unit's symbol
// table to a portable payload, so downstream tooling (an IDE plugin, a
// second compiler stage, a build-graph inspector) can consume ibORB's
// name resolution without re-parsing the IDL. This is an on-demand export,
// not a cache: there is no key-based storage or invalidation, unlike the
// disk cache this package's shape is drawn from.
package symbolexport

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/uysalibov/ibORB/internal/symtab"
)

// schemaVersion guards against decoding a payload produced by an
// incompatible future layout.
const schemaVersion uint16 = 1

// Format selects the wire encoding.
type Format uint8

const (
	FormatMsgpack Format = iota
	FormatJSON
)

// SymbolRecord is one exported symbol.
type SymbolRecord struct {
	Name    string `msgpack:"name" json:"name"`
	FQN     string `msgpack:"fqn" json:"fqn"`
	Kind    string `msgpack:"kind" json:"kind"`
	InScope string `msgpack:"in_scope" json:"in_scope"`
}

// Payload is the full exported symbol table for one translation unit.
type Payload struct {
	Schema  uint16         `msgpack:"schema" json:"schema"`
	Symbols []SymbolRecord `msgpack:"symbols" json:"symbols"`
}

// BuildPayload flattens table's scope tree, depth-first from the global
// scope, into a Payload.
func BuildPayload(table *symtab.Table) *Payload {
	p := &Payload{Schema: schemaVersion}
	collect(table.GlobalScope(), &p.Symbols)
	return p
}

func collect(scope *symtab.Scope, out *[]SymbolRecord) {
	for _, sym := range scope.Symbols() {
		*out = append(*out, SymbolRecord{
			Name:    sym.Name,
			FQN:     sym.FQN,
			Kind:    sym.Kind.String(),
			InScope: sym.InScope,
		})
	}
	for _, child := range scope.Order {
		collect(child, out)
	}
}

// Export writes table's symbols to w in the given format.
func Export(w io.Writer, table *symtab.Table, format Format) error {
	payload := BuildPayload(table)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		return enc.Encode(payload)
	default:
		return fmt.Errorf("symbolexport: unknown format %d", format)
	}
}

// Import reads a Payload previously written by Export.
func Import(r io.Reader, format Format) (*Payload, error) {
	var payload Payload
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&payload); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("symbolexport: unknown format %d", format)
	}
	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("symbolexport: unsupported schema version %d (want %d)", payload.Schema, schemaVersion)
	}
	return &payload, nil
}
