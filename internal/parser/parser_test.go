package parser_test

import (
	"testing"

	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/parser"
)

func parse(t *testing.T, src string) (*idlast.TranslationUnit, *parser.Parser) {
	t.Helper()
	lx := lexer.New(src, "test.idl")
	p := parser.New(lx)
	unit := p.Parse()
	return unit, p
}

func TestParseModuleWithStruct(t *testing.T) {
	unit, p := parse(t, `
		module Shapes {
			struct Point { long x; long y; };
		};
	`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	if len(unit.Definitions) != 1 {
		t.Fatalf("got %d top-level definitions, want 1", len(unit.Definitions))
	}
	mod, ok := unit.Definitions[0].(*idlast.Module)
	if !ok {
		t.Fatalf("top-level definition is %T, want *idlast.Module", unit.Definitions[0])
	}
	if mod.Name != "Shapes" {
		t.Errorf("Module.Name = %q, want %q", mod.Name, "Shapes")
	}
	if len(mod.Definitions) != 1 {
		t.Fatalf("got %d module members, want 1", len(mod.Definitions))
	}
	st, ok := mod.Definitions[0].(*idlast.Struct)
	if !ok {
		t.Fatalf("module member is %T, want *idlast.Struct", mod.Definitions[0])
	}
	if st.FQN != "Shapes::Point" {
		t.Errorf("Struct.FQN = %q, want %q", st.FQN, "Shapes::Point")
	}
	if len(st.Members) != 2 {
		t.Fatalf("got %d struct members, want 2", len(st.Members))
	}
	if st.Members[0].Name != "x" || st.Members[1].Name != "y" {
		t.Errorf("members = %+v", st.Members)
	}
}

func TestParseStructMemberListExpandsDeclarators(t *testing.T) {
	unit, p := parse(t, `struct P { long x, y, z; };`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	st := unit.Definitions[0].(*idlast.Struct)
	if len(st.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(st.Members))
	}
	names := []string{st.Members[0].Name, st.Members[1].Name, st.Members[2].Name}
	if names[0] != "x" || names[1] != "y" || names[2] != "z" {
		t.Errorf("names = %v", names)
	}
}

func TestParseInterfaceWithOperationsAndAttribute(t *testing.T) {
	unit, p := parse(t, `
		interface Account {
			readonly attribute long balance;
			void deposit(in long amount);
			long withdraw(in long amount) raises (InsufficientFunds);
		};
	`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	iface := unit.Definitions[0].(*idlast.Interface)
	if len(iface.Contents) != 3 {
		t.Fatalf("got %d interface members, want 3", len(iface.Contents))
	}

	attr, ok := iface.Contents[0].(*idlast.Attribute)
	if !ok || !attr.IsReadonly || attr.Name != "balance" {
		t.Errorf("attribute = %+v, ok=%v", attr, ok)
	}

	deposit, ok := iface.Contents[1].(*idlast.Operation)
	if !ok || deposit.Name != "deposit" || len(deposit.Parameters) != 1 {
		t.Errorf("deposit = %+v, ok=%v", deposit, ok)
	}
	if deposit.Parameters[0].Direction != idlast.DirIn {
		t.Errorf("parameter direction = %v, want DirIn", deposit.Parameters[0].Direction)
	}

	withdraw, ok := iface.Contents[2].(*idlast.Operation)
	if !ok || len(withdraw.Raises) != 1 || withdraw.Raises[0] != "InsufficientFunds" {
		t.Errorf("withdraw = %+v, ok=%v", withdraw, ok)
	}
}

func TestParseInterfaceInheritance(t *testing.T) {
	unit, p := parse(t, `interface Base {}; interface Derived : Base {};`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	derived := unit.Definitions[1].(*idlast.Interface)
	if len(derived.BaseInterfaces) != 1 || derived.BaseInterfaces[0] != "Base" {
		t.Errorf("BaseInterfaces = %v", derived.BaseInterfaces)
	}
}

func TestParseForwardDeclaredInterface(t *testing.T) {
	unit, p := parse(t, `interface Widget;`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	iface := unit.Definitions[0].(*idlast.Interface)
	if !iface.IsForward {
		t.Error("expected IsForward to be true")
	}
}

func TestParseEnum(t *testing.T) {
	unit, p := parse(t, `enum Color { RED, GREEN, BLUE };`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	e := unit.Definitions[0].(*idlast.Enum)
	want := []string{"RED", "GREEN", "BLUE"}
	if len(e.Enumerators) != len(want) {
		t.Fatalf("got %d enumerators, want %d", len(e.Enumerators), len(want))
	}
	for i, v := range want {
		if e.Enumerators[i] != v {
			t.Errorf("enumerator %d = %q, want %q", i, e.Enumerators[i], v)
		}
	}
}

func TestParseTypedefWithArrayDeclarator(t *testing.T) {
	unit, p := parse(t, `typedef long LongArray[4];`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	td := unit.Definitions[0].(*idlast.Typedef)
	if len(td.Declarators) != 1 {
		t.Fatalf("got %d declarators, want 1", len(td.Declarators))
	}
	if td.Declarators[0].Name != "LongArray" {
		t.Errorf("declarator name = %q", td.Declarators[0].Name)
	}
	if len(td.Declarators[0].Dimensions) != 1 || td.Declarators[0].Dimensions[0] != 4 {
		t.Errorf("dimensions = %v, want [4]", td.Declarators[0].Dimensions)
	}
}

func TestParseConst(t *testing.T) {
	unit, p := parse(t, `const long MAX = 100;`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	c := unit.Definitions[0].(*idlast.Const)
	if c.Name != "MAX" {
		t.Errorf("Name = %q, want %q", c.Name, "MAX")
	}
}

func TestParseException(t *testing.T) {
	unit, p := parse(t, `exception NotFound { string reason; };`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	exc := unit.Definitions[0].(*idlast.Exception)
	if len(exc.Members) != 1 || exc.Members[0].Name != "reason" {
		t.Errorf("Members = %+v", exc.Members)
	}
}

func TestParseUnion(t *testing.T) {
	unit, p := parse(t, `
		union Value switch (long) {
			case 1: long asLong;
			case 2: string asString;
			default: boolean asBool;
		};
	`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	u := unit.Definitions[0].(*idlast.Union)
	if len(u.Cases) != 3 {
		t.Fatalf("got %d cases, want 3", len(u.Cases))
	}
	if !u.Cases[2].Labels[0].IsDefault {
		t.Error("expected third case to be the default label")
	}
}

func TestOnewayNonVoidReturnWarns(t *testing.T) {
	_, p := parse(t, `interface I { oneway long bad(); };`)
	if p.HasErrors() {
		t.Fatalf("expected no errors, got: %v", p.Diagnostics().Items())
	}
	if !p.Diagnostics().HasWarnings() {
		t.Error("expected a warning for a oneway operation returning non-void")
	}
}

func TestDuplicateSymbolInScopeStillParses(t *testing.T) {
	unit, p := parse(t, `struct Dup { long a; }; struct Dup { long b; };`)
	if len(unit.Definitions) != 2 {
		t.Fatalf("got %d definitions, want 2 (parser should not stop on a duplicate name)", len(unit.Definitions))
	}
	_ = p
}

func TestSyntaxErrorRecoversAtNextDefinition(t *testing.T) {
	unit, p := parse(t, `struct Bad { long ; }; struct Good { long x; };`)
	if !p.HasErrors() {
		t.Fatal("expected a syntax error from the malformed struct member")
	}
	var names []string
	for _, def := range unit.Definitions {
		names = append(names, def.DefName())
	}
	found := false
	for _, n := range names {
		if n == "Good" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected parser to recover and still parse 'Good', got definitions: %v", names)
	}
}

func TestAbstractAndLocalRejectedOnNonInterface(t *testing.T) {
	_, p := parse(t, `abstract struct S { long a; };`)
	if !p.HasErrors() {
		t.Error("expected an error for 'abstract' applied to a non-interface")
	}
}

func TestReopenedModuleSharesScope(t *testing.T) {
	unit, p := parse(t, `
		module M { struct A { long x; }; };
		module M { struct B { long y; }; };
	`)
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Items())
	}
	if len(unit.Definitions) != 2 {
		t.Fatalf("got %d top-level definitions, want 2", len(unit.Definitions))
	}
	first := unit.Definitions[0].(*idlast.Module)
	second := unit.Definitions[1].(*idlast.Module)
	if first.FQN != second.FQN {
		t.Errorf("FQNs differ: %q vs %q", first.FQN, second.FQN)
	}
}
