// Package idlast defines the abstract syntax tree the parser builds and the
// emitter walks. Nodes form a strict tree: every child is owned by exactly
// one parent, there are no back-edges, and cross-references (a scoped name
// pointing at a struct defined elsewhere) are plain strings resolved through
// the symbol table rather than pointers into the tree. Type and Definition
// are closed sums; callers switch on the concrete type with a type switch,
// which is idiomatic Go's direct replacement for the visitor double-dispatch
// the reference implementation uses.
package idlast

import "github.com/uysalibov/ibORB/internal/source"

// Type is implemented by every type-specifier node: BasicType, SequenceType,
// StringType, ScopedName, ArrayType.
type Type interface {
	typeNode()
	Loc() source.Location
}

// BasicKind enumerates the IDL primitive types.
type BasicKind uint8

const (
	TVoid BasicKind = iota
	TBoolean
	TChar
	TWChar
	TOctet
	TShort
	TUShort
	TLong
	TULong
	TLongLong
	TULongLong
	TFloat
	TDouble
	TLongDouble
	TAny
	TObject
)

func (k BasicKind) String() string {
	switch k {
	case TVoid:
		return "void"
	case TBoolean:
		return "boolean"
	case TChar:
		return "char"
	case TWChar:
		return "wchar"
	case TOctet:
		return "octet"
	case TShort:
		return "short"
	case TUShort:
		return "unsigned short"
	case TLong:
		return "long"
	case TULong:
		return "unsigned long"
	case TLongLong:
		return "long long"
	case TULongLong:
		return "unsigned long long"
	case TFloat:
		return "float"
	case TDouble:
		return "double"
	case TLongDouble:
		return "long double"
	case TAny:
		return "any"
	case TObject:
		return "Object"
	default:
		return "unknown"
	}
}

// BasicType is one of IDL's primitive types.
type BasicType struct {
	Kind     BasicKind
	Location source.Location
}

func (*BasicType) typeNode()               {}
func (t *BasicType) Loc() source.Location  { return t.Location }

// SequenceType is `sequence<Element>` or `sequence<Element, Bound>`. Bound
// is advisory: parsed and retained, never enforced or emitted as a runtime
// check.
type SequenceType struct {
	Element  Type
	Bound    int64
	HasBound bool
	Location source.Location
}

func (*SequenceType) typeNode()              {}
func (t *SequenceType) Loc() source.Location { return t.Location }

// StringType is `string`, `string<Bound>`, `wstring`, or `wstring<Bound>`.
type StringType struct {
	Bound    int64
	HasBound bool
	Wide     bool
	Location source.Location
}

func (*StringType) typeNode()              {}
func (t *StringType) Loc() source.Location { return t.Location }

// ScopedName references a user-defined type by its (possibly qualified)
// name, e.g. `ModuleA::StructB` or `::ModuleA::StructB`. Resolution to the
// definition it names happens through the symbol table, not here.
type ScopedName struct {
	Parts      []string
	IsAbsolute bool
	Location   source.Location
}

// String renders the scoped name the way it appeared in source.
func (s *ScopedName) String() string {
	prefix := ""
	if s.IsAbsolute {
		prefix = "::"
	}
	out := prefix
	for i, p := range s.Parts {
		if i > 0 {
			out += "::"
		}
		out += p
	}
	return out
}

func (*ScopedName) typeNode()              {}
func (t *ScopedName) Loc() source.Location { return t.Location }

// ArrayType is a type with one or more fixed dimensions, e.g. `long[3][4]`.
type ArrayType struct {
	Element    Type
	Dimensions []int64
	Location   source.Location
}

func (*ArrayType) typeNode()              {}
func (t *ArrayType) Loc() source.Location { return t.Location }
