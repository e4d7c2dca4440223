package emitter

import (
	"testing"

	"github.com/uysalibov/ibORB/internal/idlast"
)

func TestMapBasicType(t *testing.T) {
	cases := map[idlast.BasicKind]string{
		idlast.TVoid:    "void",
		idlast.TBoolean: "bool",
		idlast.TOctet:   "uint8_t",
		idlast.TLong:    "int32_t",
		idlast.TULong:   "uint32_t",
		idlast.TDouble:  "double",
		idlast.TAny:     "std::any",
		idlast.TObject:  "Object",
	}
	for kind, want := range cases {
		if got := mapBasicType(kind); got != want {
			t.Errorf("mapBasicType(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestMapTypeNil(t *testing.T) {
	if got := mapType(nil); got != "void" {
		t.Errorf("mapType(nil) = %q, want %q", got, "void")
	}
}

func TestMapTypeSequence(t *testing.T) {
	seq := &idlast.SequenceType{Element: &idlast.BasicType{Kind: idlast.TLong}}
	if got := mapType(seq); got != "std::vector<int32_t>" {
		t.Errorf("mapType(sequence) = %q, want %q", got, "std::vector<int32_t>")
	}
}

func TestMapTypeString(t *testing.T) {
	if got := mapType(&idlast.StringType{}); got != "std::string" {
		t.Errorf("mapType(string) = %q, want %q", got, "std::string")
	}
	if got := mapType(&idlast.StringType{Wide: true}); got != "std::wstring" {
		t.Errorf("mapType(wstring) = %q, want %q", got, "std::wstring")
	}
}

func TestMapTypeArrayNested(t *testing.T) {
	arr := &idlast.ArrayType{Element: &idlast.BasicType{Kind: idlast.TLong}, Dimensions: []int64{3, 4}}
	want := "std::array<std::array<int32_t, 4>, 3>"
	if got := mapType(arr); got != want {
		t.Errorf("mapType(array) = %q, want %q", got, want)
	}
}

func TestMapTypeScopedName(t *testing.T) {
	sn := &idlast.ScopedName{Parts: []string{"Mod", "Point"}}
	if got := mapType(sn); got != "Mod::Point" {
		t.Errorf("mapType(scoped) = %q, want %q", got, "Mod::Point")
	}
}

func TestMapTypeForParameterInPrimitivePassesByValue(t *testing.T) {
	got := mapTypeForParameter(&idlast.BasicType{Kind: idlast.TLong}, idlast.DirIn)
	if got != "int32_t" {
		t.Errorf("mapTypeForParameter(in long) = %q, want %q", got, "int32_t")
	}
}

func TestMapTypeForParameterInComplexPassesByConstRef(t *testing.T) {
	got := mapTypeForParameter(&idlast.StringType{}, idlast.DirIn)
	if got != "const std::string&" {
		t.Errorf("mapTypeForParameter(in string) = %q, want %q", got, "const std::string&")
	}
}

func TestMapTypeForParameterOutIsReference(t *testing.T) {
	got := mapTypeForParameter(&idlast.BasicType{Kind: idlast.TLong}, idlast.DirOut)
	if got != "int32_t&" {
		t.Errorf("mapTypeForParameter(out long) = %q, want %q", got, "int32_t&")
	}
	got = mapTypeForParameter(&idlast.BasicType{Kind: idlast.TLong}, idlast.DirInOut)
	if got != "int32_t&" {
		t.Errorf("mapTypeForParameter(inout long) = %q, want %q", got, "int32_t&")
	}
}
