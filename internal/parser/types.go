package parser

import (
	"fortio.org/safecast"

	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/token"
)

func (p *Parser) parseTypeSpec() idlast.Type {
	switch p.cur.Kind {
	case token.KwSequence:
		return p.parseSequenceType()
	case token.KwString:
		return p.parseStringType(false)
	case token.KwWstring:
		return p.parseStringType(true)
	default:
		return p.parseSimpleTypeSpec()
	}
}

func (p *Parser) parseSimpleTypeSpec() idlast.Type {
	if p.isTypeKeyword(p.cur.Kind) {
		return p.parseBaseTypeSpec()
	}
	if p.at(token.Ident) || p.at(token.ColonColon) {
		return p.parseScopedName()
	}
	p.error("expected type specification")
	return nil
}

func (p *Parser) parseBaseTypeSpec() idlast.Type {
	loc := p.cur.Loc
	return &idlast.BasicType{Kind: p.parseBasicType(), Location: loc}
}

func (p *Parser) parseSequenceType() idlast.Type {
	loc := p.cur.Loc
	p.expect(token.KwSequence, "expected 'sequence'")
	p.expect(token.LAngle, "expected '<' after 'sequence'")

	elem := p.parseTypeSpec()
	if elem == nil {
		p.error("expected element type in sequence")
		return nil
	}

	seq := &idlast.SequenceType{Element: elem, Location: loc}
	if p.match(token.Comma) {
		bound := p.parseConstExpr()
		if n, ok := p.asBound(bound); ok {
			seq.Bound = n
			seq.HasBound = true
		}
	}
	p.expect(token.RAngle, "expected '>' at end of sequence type")
	return seq
}

func (p *Parser) parseStringType(wide bool) idlast.Type {
	loc := p.cur.Loc
	p.advance()

	str := &idlast.StringType{Wide: wide, Location: loc}
	if p.match(token.LAngle) {
		bound := p.parseConstExpr()
		if n, ok := p.asBound(bound); ok {
			str.Bound = n
			str.HasBound = true
		}
		p.expect(token.RAngle, "expected '>' at end of string bound")
	}
	return str
}

func (p *Parser) parseScopedName() idlast.Type {
	loc := p.cur.Loc
	isAbsolute := p.match(token.ColonColon)

	if !p.at(token.Ident) {
		p.error("expected identifier in scoped name")
		return nil
	}

	var parts []string
	for {
		if !p.at(token.Ident) {
			p.error("expected identifier after '::'")
			break
		}
		parts = append(parts, p.cur.Text)
		p.advance()
		if !p.match(token.ColonColon) {
			break
		}
	}

	return &idlast.ScopedName{Parts: parts, IsAbsolute: isAbsolute, Location: loc}
}

// declarator is one name in a comma-separated declarator list, e.g. the
// `y[10]` in `long x, y[10];`.
type declarator struct {
	name string
	dims []int64
}

func (p *Parser) parseDeclarator() declarator {
	var d declarator
	if !p.at(token.Ident) {
		p.error("expected identifier")
		return d
	}
	d.name = p.cur.Text
	p.advance()

	for p.match(token.LBracket) {
		size := p.parseConstExpr()
		if n, ok := p.asBound(size); ok {
			d.dims = append(d.dims, n)
		}
		p.expect(token.RBracket, "expected ']'")
	}
	return d
}

func (p *Parser) parseDeclarators() []declarator {
	decls := []declarator{p.parseDeclarator()}
	for p.match(token.Comma) {
		decls = append(decls, p.parseDeclarator())
	}
	return decls
}

func (p *Parser) parseInheritanceSpec() []string {
	var bases []string
	p.expect(token.Colon, "expected ':' for inheritance")

	for {
		bases = append(bases, p.parseQualifiedIdentText())
		if !p.match(token.Comma) {
			break
		}
	}
	return bases
}

func (p *Parser) parseRaisesExpr() []string {
	var exceptions []string
	p.expect(token.KwRaises, "expected 'raises'")
	p.expect(token.LParen, "expected '(' after 'raises'")

	if !p.at(token.RParen) {
		for {
			exceptions = append(exceptions, p.parseQualifiedIdentText())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen, "expected ')' after raises list")
	return exceptions
}

// parseContextExpr parses `context (Key, Key, ...)`. Context strings are a
// Doxygen-only annotation in the emitted C++; they never affect a
// signature.
func (p *Parser) parseContextExpr() []string {
	var keys []string
	p.expect(token.KwContext, "expected 'context'")
	p.expect(token.LParen, "expected '(' after 'context'")

	if !p.at(token.RParen) {
		for {
			if p.at(token.StringLit) {
				keys = append(keys, p.cur.StringValue())
				p.advance()
			} else if p.at(token.Ident) {
				keys = append(keys, p.cur.Text)
				p.advance()
			} else {
				p.error("expected context identifier")
				break
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen, "expected ')' after context list")
	return keys
}

// parseQualifiedIdentText parses a possibly-"::"-qualified name and returns
// it as a single string, the representation raises/inheritance lists use
// (they name exceptions/interfaces to be resolved later, not types).
func (p *Parser) parseQualifiedIdentText() string {
	name := ""
	if p.match(token.ColonColon) {
		name = "::"
	}
	if !p.at(token.Ident) {
		p.error("expected identifier")
		return name
	}
	name += p.cur.Text
	p.advance()

	for p.match(token.ColonColon) {
		name += "::"
		if !p.at(token.Ident) {
			p.error("expected identifier after '::'")
			break
		}
		name += p.cur.Text
		p.advance()
	}
	return name
}

func (p *Parser) parseParamDirection() idlast.ParamDirection {
	switch {
	case p.match(token.KwIn):
		return idlast.DirIn
	case p.match(token.KwOut):
		return idlast.DirOut
	case p.match(token.KwInout):
		return idlast.DirInOut
	default:
		return idlast.DirIn
	}
}

func (p *Parser) parseBasicType() idlast.BasicKind {
	switch {
	case p.match(token.KwVoid):
		return idlast.TVoid
	case p.match(token.KwBoolean):
		return idlast.TBoolean
	case p.match(token.KwChar):
		return idlast.TChar
	case p.match(token.KwWchar):
		return idlast.TWChar
	case p.match(token.KwOctet):
		return idlast.TOctet
	case p.match(token.KwAny):
		return idlast.TAny
	case p.match(token.KwObject):
		return idlast.TObject
	case p.match(token.KwFloat):
		return idlast.TFloat
	case p.match(token.KwDouble):
		return idlast.TDouble
	}

	isUnsigned := p.match(token.KwUnsigned)

	if p.match(token.KwShort) {
		if isUnsigned {
			return idlast.TUShort
		}
		return idlast.TShort
	}
	if p.match(token.KwLong) {
		if p.match(token.KwLong) {
			if isUnsigned {
				return idlast.TULongLong
			}
			return idlast.TLongLong
		}
		if p.match(token.KwDouble) {
			return idlast.TLongDouble
		}
		if isUnsigned {
			return idlast.TULong
		}
		return idlast.TLong
	}

	if isUnsigned {
		p.error("expected 'short' or 'long' after 'unsigned'")
	}
	return idlast.TVoid
}

func (p *Parser) isTypeKeyword(k token.Kind) bool {
	switch k {
	case token.KwVoid, token.KwBoolean, token.KwChar, token.KwWchar, token.KwOctet,
		token.KwShort, token.KwLong, token.KwFloat, token.KwDouble, token.KwUnsigned,
		token.KwAny, token.KwObject, token.KwString, token.KwWstring, token.KwSequence:
		return true
	default:
		return false
	}
}

func (p *Parser) asBound(v idlast.Value) (int64, bool) {
	switch v.Kind() {
	case idlast.VInt:
		return v.Int(), true
	case idlast.VUint:
		n, err := safecast.Conv[int64](v.Uint())
		if err != nil {
			p.error("array or sequence bound too large")
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
