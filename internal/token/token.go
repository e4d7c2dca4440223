package token

import "github.com/uysalibov/ibORB/internal/source"

// Token is a single lexical unit produced by the lexer. Text holds the raw
// spelling; Value holds the decoded literal payload for literal kinds (an
// int64, a float64, or a string), the text itself for identifiers, pragmas
// and line directives, and is nil otherwise.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Loc   source.Location
}

// IntValue returns the decoded integer literal, panicking if Kind is not
// IntLit. Callers must check Kind first.
func (t Token) IntValue() int64 {
	return t.Value.(int64)
}

// FloatValue returns the decoded float literal.
func (t Token) FloatValue() float64 {
	return t.Value.(float64)
}

// StringValue returns the decoded string/char literal payload.
func (t Token) StringValue() string {
	return t.Value.(string)
}

func (t Token) String() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}

// keywords maps the reserved-word spelling (case-sensitive, per IDL) to its
// keyword kind. Ident is used for anything not present here.
var keywords = map[string]Kind{
	"module":      KwModule,
	"interface":   KwInterface,
	"struct":      KwStruct,
	"union":       KwUnion,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"enum":        KwEnum,
	"const":       KwConst,
	"typedef":     KwTypedef,
	"exception":   KwException,
	"attribute":   KwAttribute,
	"readonly":    KwReadonly,
	"in":          KwIn,
	"out":         KwOut,
	"inout":       KwInout,
	"oneway":      KwOneway,
	"raises":      KwRaises,
	"context":     KwContext,
	"sequence":    KwSequence,
	"string":      KwString,
	"wstring":     KwWstring,
	"fixed":       KwFixed,
	"abstract":    KwAbstract,
	"local":       KwLocal,
	"native":      KwNative,
	"valuetype":   KwValuetype,
	"truncatable": KwTruncatable,
	"supports":    KwSupports,
	"public":      KwPublic,
	"private":     KwPrivate,
	"factory":     KwFactory,
	"custom":      KwCustom,
	"void":        KwVoid,
	"boolean":     KwBoolean,
	"char":        KwChar,
	"wchar":       KwWchar,
	"octet":       KwOctet,
	"short":       KwShort,
	"long":        KwLong,
	"float":       KwFloat,
	"double":      KwDouble,
	"unsigned":    KwUnsigned,
	"any":         KwAny,
	"Object":      KwObject,
	"TRUE":        KwTrue,
	"FALSE":       KwFalse,
}

// Lookup returns the keyword kind for text, or (Ident, false) if text is a
// plain identifier.
func Lookup(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
