package idlast

import "github.com/uysalibov/ibORB/internal/source"

// Definition is implemented by every top-level or nested declaration:
// Module, Interface, Struct, Enum, Typedef, Const, Union, Exception,
// Operation, Attribute.
type Definition interface {
	definitionNode()
	DefName() string
	Loc() source.Location
}

// Const is `const Type Name = Value;`.
type Const struct {
	Name     string
	FQN      string
	Type     Type
	Value    Value
	Location source.Location
}

func (*Const) definitionNode()          {}
func (c *Const) DefName() string        { return c.Name }
func (c *Const) Loc() source.Location   { return c.Location }

// StructMember is one field of a Struct or Exception.
type StructMember struct {
	Type     Type
	Name     string
	Location source.Location
}

// Struct is `struct Name { members };`.
type Struct struct {
	Name     string
	FQN      string
	Members  []*StructMember
	Location source.Location
}

func (*Struct) definitionNode()        {}
func (s *Struct) DefName() string      { return s.Name }
func (s *Struct) Loc() source.Location { return s.Location }

// Enum is `enum Name { E1, E2, ... };`.
type Enum struct {
	Name       string
	FQN        string
	Enumerators []string
	Location   source.Location
}

func (*Enum) definitionNode()        {}
func (e *Enum) DefName() string      { return e.Name }
func (e *Enum) Loc() source.Location { return e.Location }

// TypedefDeclarator is one declarator in a typedef, carrying its own array
// dimensions: `typedef long A, B[4];` declares A with no dimensions and B
// with one.
type TypedefDeclarator struct {
	Name       string
	Dimensions []int64
}

// Typedef is `typedef OriginalType Declarators...;`. Each declarator with
// array dimensions produces a distinct named array type over OriginalType.
type Typedef struct {
	Name         string
	FQN          string
	OriginalType Type
	Declarators  []TypedefDeclarator
	Location     source.Location
}

func (*Typedef) definitionNode()        {}
func (t *Typedef) DefName() string      { return t.Name }
func (t *Typedef) Loc() source.Location { return t.Location }

// CaseLabel is one label of a union case: either `case Value:` or
// `default:`.
type CaseLabel struct {
	IsDefault bool
	Value     Value
}

// UnionCase is one branch of a Union: one or more labels sharing a single
// member.
type UnionCase struct {
	Labels   []CaseLabel
	Type     Type
	Name     string
	Location source.Location
}

// Union is `union Name switch (DiscriminatorType) { cases };`.
type Union struct {
	Name              string
	FQN               string
	DiscriminatorType Type
	Cases             []*UnionCase
	Location          source.Location
}

func (*Union) definitionNode()        {}
func (u *Union) DefName() string      { return u.Name }
func (u *Union) Loc() source.Location { return u.Location }

// Exception is `exception Name { members };`, structurally identical to
// Struct but mapped to a std::exception subclass by the emitter.
type Exception struct {
	Name     string
	FQN      string
	Members  []*StructMember
	Location source.Location
}

func (*Exception) definitionNode()        {}
func (e *Exception) DefName() string      { return e.Name }
func (e *Exception) Loc() source.Location { return e.Location }

// ParamDirection is an operation parameter's passing mode.
type ParamDirection uint8

const (
	DirIn ParamDirection = iota
	DirOut
	DirInOut
)

func (d ParamDirection) String() string {
	switch d {
	case DirOut:
		return "out"
	case DirInOut:
		return "inout"
	default:
		return "in"
	}
}

// Parameter is one operation parameter.
type Parameter struct {
	Direction ParamDirection
	Type      Type
	Name      string
	Location  source.Location
}

// Operation is an interface method: `[oneway] ReturnType Name(params)
// [raises (Exc...)] [context (Key...)];`.
type Operation struct {
	Name       string
	FQN        string
	ReturnType Type
	Parameters []*Parameter
	Raises     []string
	Context    []string
	IsOneway   bool
	Location   source.Location
}

func (*Operation) definitionNode()        {}
func (o *Operation) DefName() string      { return o.Name }
func (o *Operation) Loc() source.Location { return o.Location }

// Attribute is `[readonly] attribute Type Name;`.
type Attribute struct {
	Name       string
	FQN        string
	Type       Type
	IsReadonly bool
	Location   source.Location
}

func (*Attribute) definitionNode()        {}
func (a *Attribute) DefName() string      { return a.Name }
func (a *Attribute) Loc() source.Location { return a.Location }

// Interface is `[abstract|local] interface Name [: Bases] { contents };`,
// or a forward declaration `interface Name;` when IsForward is set and
// Contents is empty.
type Interface struct {
	Name           string
	FQN            string
	BaseInterfaces []string
	Contents       []Definition
	IsAbstract     bool
	IsLocal        bool
	IsForward      bool
	Location       source.Location
}

func (*Interface) definitionNode()        {}
func (i *Interface) DefName() string      { return i.Name }
func (i *Interface) Loc() source.Location { return i.Location }

// Module is `module Name { definitions };`. Each module block in the source
// is its own Module node, in source order; reopening the same module name
// within a translation unit re-enters the existing symbol table scope, so
// both nodes share one FQN.
type Module struct {
	Name        string
	FQN         string
	Definitions []Definition
	Location    source.Location
}

func (*Module) definitionNode()        {}
func (m *Module) DefName() string      { return m.Name }
func (m *Module) Loc() source.Location { return m.Location }

// TranslationUnit is the parse result for one source file.
type TranslationUnit struct {
	Definitions []Definition
	Filename    string
}
