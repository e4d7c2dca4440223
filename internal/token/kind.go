package token

// Kind is the closed set of token categories the lexer produces.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident

	// Keywords.
	KwModule
	KwInterface
	KwStruct
	KwUnion
	KwSwitch
	KwCase
	KwDefault
	KwEnum
	KwConst
	KwTypedef
	KwException
	KwAttribute
	KwReadonly
	KwIn
	KwOut
	KwInout
	KwOneway
	KwRaises
	KwContext
	KwSequence
	KwString
	KwWstring
	KwFixed
	KwAbstract
	KwLocal
	KwNative
	KwValuetype
	KwTruncatable
	KwSupports
	KwPublic
	KwPrivate
	KwFactory
	KwCustom

	// Basic type keywords.
	KwVoid
	KwBoolean
	KwChar
	KwWchar
	KwOctet
	KwShort
	KwLong
	KwFloat
	KwDouble
	KwUnsigned
	KwAny
	KwObject
	KwTrue
	KwFalse

	// Literals.
	IntLit
	FloatLit
	StringLit
	WStringLit
	CharLit
	WCharLit

	// Punctuation and operators.
	Semicolon    // ;
	Colon        // :
	ColonColon   // ::
	Comma        // ,
	LBrace       // {
	RBrace       // }
	LParen       // (
	RParen       // )
	LBracket     // [
	RBracket     // ]
	LAngle       // <
	RAngle       // >
	Assign       // =
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Percent      // %
	Amp          // &
	Pipe         // |
	Caret        // ^
	Tilde        // ~
	Shl          // <<
	Shr          // >>

	// Preprocessor artifacts.
	Pragma
	LineDirective

	Unknown
)

// IsLiteral reports whether the token carries a decoded literal value.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, WStringLit, CharLit, WCharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token kind is one of the IDL keywords.
func (k Kind) IsKeyword() bool {
	switch k {
	case KwModule, KwInterface, KwStruct, KwUnion, KwSwitch, KwCase, KwDefault,
		KwEnum, KwConst, KwTypedef, KwException, KwAttribute, KwReadonly, KwIn,
		KwOut, KwInout, KwOneway, KwRaises, KwContext, KwSequence, KwString,
		KwWstring, KwFixed, KwAbstract, KwLocal, KwNative, KwValuetype,
		KwTruncatable, KwSupports, KwPublic, KwPrivate, KwFactory, KwCustom,
		KwVoid, KwBoolean, KwChar, KwWchar, KwOctet, KwShort, KwLong, KwFloat,
		KwDouble, KwUnsigned, KwAny, KwObject, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token kind is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool {
	switch k {
	case Semicolon, Colon, ColonColon, Comma, LBrace, RBrace, LParen, RParen,
		LBracket, RBracket, LAngle, RAngle, Assign, Plus, Minus, Star, Slash,
		Percent, Amp, Pipe, Caret, Tilde, Shl, Shr:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof", Ident: "identifier",
	KwModule: "module", KwInterface: "interface", KwStruct: "struct",
	KwUnion: "union", KwSwitch: "switch", KwCase: "case", KwDefault: "default",
	KwEnum: "enum", KwConst: "const", KwTypedef: "typedef",
	KwException: "exception", KwAttribute: "attribute", KwReadonly: "readonly",
	KwIn: "in", KwOut: "out", KwInout: "inout", KwOneway: "oneway",
	KwRaises: "raises", KwContext: "context", KwSequence: "sequence",
	KwString: "string", KwWstring: "wstring", KwFixed: "fixed",
	KwAbstract: "abstract", KwLocal: "local", KwNative: "native",
	KwValuetype: "valuetype", KwTruncatable: "truncatable",
	KwSupports: "supports", KwPublic: "public", KwPrivate: "private",
	KwFactory: "factory", KwCustom: "custom",
	KwVoid: "void", KwBoolean: "boolean", KwChar: "char", KwWchar: "wchar",
	KwOctet: "octet", KwShort: "short", KwLong: "long", KwFloat: "float",
	KwDouble: "double", KwUnsigned: "unsigned", KwAny: "any",
	KwObject: "Object", KwTrue: "TRUE", KwFalse: "FALSE",
	IntLit: "integer-literal", FloatLit: "float-literal",
	StringLit: "string-literal", WStringLit: "wstring-literal",
	CharLit: "char-literal", WCharLit: "wchar-literal",
	Semicolon: ";", Colon: ":", ColonColon: "::", Comma: ",",
	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]", LAngle: "<", RAngle: ">",
	Assign: "=", Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Shl: "<<", Shr: ">>",
	Pragma: "pragma", LineDirective: "line-directive", Unknown: "unknown",
}
