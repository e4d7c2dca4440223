package idlast_test

import (
	"testing"

	"github.com/uysalibov/ibORB/internal/idlast"
)

func TestBasicKindString(t *testing.T) {
	tests := []struct {
		kind idlast.BasicKind
		want string
	}{
		{idlast.TVoid, "void"},
		{idlast.TBoolean, "boolean"},
		{idlast.TLong, "long"},
		{idlast.TULongLong, "unsigned long long"},
		{idlast.TObject, "Object"},
		{idlast.BasicKind(255), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BasicKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParamDirectionString(t *testing.T) {
	tests := []struct {
		dir  idlast.ParamDirection
		want string
	}{
		{idlast.DirIn, "in"},
		{idlast.DirOut, "out"},
		{idlast.DirInOut, "inout"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("ParamDirection(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestScopedNameStringRelative(t *testing.T) {
	s := &idlast.ScopedName{Parts: []string{"ModuleA", "StructB"}}
	if got, want := s.String(), "ModuleA::StructB"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScopedNameStringAbsolute(t *testing.T) {
	s := &idlast.ScopedName{Parts: []string{"ModuleA", "StructB"}, IsAbsolute: true}
	if got, want := s.String(), "::ModuleA::StructB"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScopedNameStringSinglePart(t *testing.T) {
	s := &idlast.ScopedName{Parts: []string{"Point"}}
	if got, want := s.String(), "Point"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTypeNodesImplementTypeInterface(t *testing.T) {
	var types = []idlast.Type{
		&idlast.BasicType{Kind: idlast.TLong},
		&idlast.SequenceType{Element: &idlast.BasicType{Kind: idlast.TOctet}},
		&idlast.StringType{},
		&idlast.ScopedName{Parts: []string{"Foo"}},
		&idlast.ArrayType{Element: &idlast.BasicType{Kind: idlast.TShort}, Dimensions: []int64{4}},
	}
	for _, ty := range types {
		if ty == nil {
			t.Error("nil type in table")
		}
	}
}
