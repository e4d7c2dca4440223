package emitter

import "github.com/uysalibov/ibORB/internal/idlast"

func mapBasicType(k idlast.BasicKind) string {
	switch k {
	case idlast.TVoid:
		return "void"
	case idlast.TBoolean:
		return "bool"
	case idlast.TChar:
		return "char"
	case idlast.TWChar:
		return "wchar_t"
	case idlast.TOctet:
		return "uint8_t"
	case idlast.TShort:
		return "int16_t"
	case idlast.TUShort:
		return "uint16_t"
	case idlast.TLong:
		return "int32_t"
	case idlast.TULong:
		return "uint32_t"
	case idlast.TLongLong:
		return "int64_t"
	case idlast.TULongLong:
		return "uint64_t"
	case idlast.TFloat:
		return "float"
	case idlast.TDouble:
		return "double"
	case idlast.TLongDouble:
		return "long double"
	case idlast.TAny:
		return "std::any"
	case idlast.TObject:
		return "Object"
	default:
		return "void"
	}
}

// mapType renders t as its C++ spelling. Sequence bounds and string bounds
// are parsed but advisory — mapType never reads them, matching the
// reference generator, which never enforces a bound at emission time
// either.
func mapType(t idlast.Type) string {
	if t == nil {
		return "void"
	}
	switch n := t.(type) {
	case *idlast.BasicType:
		return mapBasicType(n.Kind)
	case *idlast.SequenceType:
		return "std::vector<" + mapType(n.Element) + ">"
	case *idlast.StringType:
		if n.Wide {
			return "std::wstring"
		}
		return "std::string"
	case *idlast.ScopedName:
		return n.String()
	case *idlast.ArrayType:
		elem := mapType(n.Element)
		for i := len(n.Dimensions) - 1; i >= 0; i-- {
			elem = "std::array<" + elem + ", " + fmtDim(n.Dimensions[i]) + ">"
		}
		return elem
	default:
		return "void"
	}
}

// mapTypeForParameter applies the IDL parameter-passing convention: a
// primitive 'in' parameter passes by value, everything else (any 'in'
// complex type, and always 'out'/'inout') passes by reference.
func mapTypeForParameter(t idlast.Type, dir idlast.ParamDirection) string {
	base := mapType(t)

	if dir == idlast.DirIn {
		if basic, ok := t.(*idlast.BasicType); ok {
			switch basic.Kind {
			case idlast.TBoolean, idlast.TChar, idlast.TWChar, idlast.TOctet,
				idlast.TShort, idlast.TUShort, idlast.TLong, idlast.TULong,
				idlast.TLongLong, idlast.TULongLong, idlast.TFloat, idlast.TDouble,
				idlast.TLongDouble:
				return base
			}
		}
		return "const " + base + "&"
	}
	return base + "&"
}

func mapTypeForReturn(t idlast.Type) string { return mapType(t) }
