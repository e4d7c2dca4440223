package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uysalibov/ibORB/internal/idlast"
)

var upperCaser = cases.Upper(language.Und)

// reservedWords are C++ keywords or standard-library names likely to
// collide with an IDL identifier; sanitizeIdentifier appends a trailing
// underscore to dodge the clash the way the reference generator does.
var reservedWords = map[string]string{
	"class": "class_", "struct": "struct_", "union": "union_",
	"enum": "enum_", "template": "template_", "typename": "typename_",
	"virtual": "virtual_", "public": "public_", "private": "private_",
	"protected": "protected_", "friend": "friend_", "namespace": "namespace_",
	"using": "using_", "try": "try_", "catch": "catch_", "throw": "throw_",
	"new": "new_", "delete": "delete_", "this": "this_", "operator": "operator_",
	"sizeof": "sizeof_", "alignof": "alignof_", "decltype": "decltype_",
	"nullptr": "nullptr_", "constexpr": "constexpr_",
	"static_cast": "static_cast_", "dynamic_cast": "dynamic_cast_",
	"const_cast": "const_cast_", "reinterpret_cast": "reinterpret_cast_",
}

func sanitizeIdentifier(name string) string {
	if repl, ok := reservedWords[name]; ok {
		return repl
	}
	return name
}

// constValueToString renders a constant value the way it appears on the
// right-hand side of `constexpr Type name = ...;`.
func constValueToString(v idlast.Value) string {
	switch v.Kind() {
	case idlast.VInt:
		return strconv.FormatInt(v.Int(), 10)
	case idlast.VUint:
		return strconv.FormatUint(v.Uint(), 10) + "ULL"
	case idlast.VFloat:
		return strconv.FormatFloat(v.Float(), 'g', 17, 64)
	case idlast.VString:
		return `"` + v.String() + `"`
	case idlast.VBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	default:
		return "0"
	}
}

// makeIncludeGuard builds IBORB_GENERATED_[PREFIX_]STEM_HPP from a base
// filename stem, upper-casing every alphanumeric rune and turning
// everything else into an underscore.
func makeIncludeGuard(namespacePrefix, stem string) string {
	var b strings.Builder
	b.WriteString("IBORB_GENERATED_")

	if namespacePrefix != "" {
		b.WriteString(upperCaser.String(namespacePrefix))
		b.WriteByte('_')
	}

	for _, r := range stem {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteString(upperCaser.String(string(r)))
		} else {
			b.WriteByte('_')
		}
	}

	b.WriteString("_HPP")
	return b.String()
}

func directionDoc(d idlast.ParamDirection) string {
	switch d {
	case idlast.DirOut:
		return "[out]"
	case idlast.DirInOut:
		return "[in,out]"
	default:
		return "[in]"
	}
}

func fmtDim(n int64) string { return fmt.Sprintf("%d", n) }
