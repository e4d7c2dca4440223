package parser

import (
	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/symtab"
	"github.com/uysalibov/ibORB/internal/token"
)

// The constant-expression grammar is a standard precedence ladder:
// or > xor > and > shift > add/sub > mul/div/mod > unary > primary. Binary
// operators on operands of mismatched kinds are a silent no-op (the left
// operand is returned unchanged) rather than an error — this matches the
// reference evaluator, which only ever combines like with like.

func (p *Parser) parseConstExpr() idlast.Value { return p.parseOrExpr() }

func (p *Parser) parseOrExpr() idlast.Value {
	left := p.parseXorExpr()
	for p.match(token.Pipe) {
		right := p.parseXorExpr()
		if l, r, ok := bothInt(left, right); ok {
			left = idlast.IntValue(l | r)
		}
	}
	return left
}

func (p *Parser) parseXorExpr() idlast.Value {
	left := p.parseAndExpr()
	for p.match(token.Caret) {
		right := p.parseAndExpr()
		if l, r, ok := bothInt(left, right); ok {
			left = idlast.IntValue(l ^ r)
		}
	}
	return left
}

func (p *Parser) parseAndExpr() idlast.Value {
	left := p.parseShiftExpr()
	for p.match(token.Amp) {
		right := p.parseShiftExpr()
		if l, r, ok := bothInt(left, right); ok {
			left = idlast.IntValue(l & r)
		}
	}
	return left
}

func (p *Parser) parseShiftExpr() idlast.Value {
	left := p.parseAddExpr()
	for {
		switch {
		case p.match(token.Shl):
			right := p.parseAddExpr()
			if l, r, ok := bothInt(left, right); ok {
				left = idlast.IntValue(l << uint(r))
			}
		case p.match(token.Shr):
			right := p.parseAddExpr()
			if l, r, ok := bothInt(left, right); ok {
				left = idlast.IntValue(l >> uint(r))
			}
		default:
			return left
		}
	}
}

func (p *Parser) parseAddExpr() idlast.Value {
	left := p.parseMulExpr()
	for {
		switch {
		case p.match(token.Plus):
			right := p.parseMulExpr()
			left = combineNumeric(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
		case p.match(token.Minus):
			right := p.parseMulExpr()
			left = combineNumeric(left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
		default:
			return left
		}
	}
}

func (p *Parser) parseMulExpr() idlast.Value {
	left := p.parseUnaryExpr()
	for {
		switch {
		case p.match(token.Star):
			right := p.parseUnaryExpr()
			left = combineNumeric(left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
		case p.match(token.Slash):
			right := p.parseUnaryExpr()
			if l, r, ok := bothInt(left, right); ok {
				if r != 0 {
					left = idlast.IntValue(l / r)
				}
			} else if l, r, ok := bothFloat(left, right); ok {
				left = idlast.FloatValue(l / r)
			}
		case p.match(token.Percent):
			right := p.parseUnaryExpr()
			if l, r, ok := bothInt(left, right); ok && r != 0 {
				left = idlast.IntValue(l % r)
			}
		default:
			return left
		}
	}
}

func (p *Parser) parseUnaryExpr() idlast.Value {
	switch {
	case p.match(token.Minus):
		v := p.parseUnaryExpr()
		switch v.Kind() {
		case idlast.VInt:
			return idlast.IntValue(-v.Int())
		case idlast.VFloat:
			return idlast.FloatValue(-v.Float())
		default:
			return v
		}
	case p.match(token.Plus):
		return p.parseUnaryExpr()
	case p.match(token.Tilde):
		v := p.parseUnaryExpr()
		if v.Kind() == idlast.VInt {
			return idlast.IntValue(^v.Int())
		}
		return v
	default:
		return p.parsePrimaryExpr()
	}
}

func (p *Parser) parsePrimaryExpr() idlast.Value {
	if p.match(token.LParen) {
		v := p.parseConstExpr()
		p.expect(token.RParen, "expected ')'")
		return v
	}

	switch p.cur.Kind {
	case token.IntLit:
		v := idlast.IntValue(p.cur.IntValue())
		p.advance()
		return v
	case token.FloatLit:
		v := idlast.FloatValue(p.cur.FloatValue())
		p.advance()
		return v
	case token.StringLit, token.WStringLit:
		v := idlast.StringValue(p.cur.StringValue())
		p.advance()
		return v
	case token.CharLit, token.WCharLit:
		v := idlast.StringValue(p.cur.StringValue())
		p.advance()
		return v
	}

	if p.match(token.KwTrue) {
		return idlast.BoolValue(true)
	}
	if p.match(token.KwFalse) {
		return idlast.BoolValue(false)
	}

	if p.at(token.Ident) || p.at(token.ColonColon) {
		isAbsolute := p.match(token.ColonColon)
		var parts []string
		for p.at(token.Ident) {
			parts = append(parts, p.cur.Text)
			p.advance()
			if !p.match(token.ColonColon) {
				break
			}
		}

		if sym, ok := p.symbols.LookupScoped(parts, isAbsolute); ok {
			if sym.Kind == symtab.Constant {
				if c, ok := sym.Node.(*idlast.Const); ok {
					return c.Value
				}
			}
			if sym.Kind == symtab.EnumValue {
				return idlast.IntValue(0)
			}
		}

		if len(parts) > 0 {
			p.warning(diag.SemUnknownConstant, "unknown constant: "+parts[len(parts)-1])
		}
		return idlast.IntValue(0)
	}

	p.error("expected expression")
	return idlast.IntValue(0)
}

func bothInt(a, b idlast.Value) (int64, int64, bool) {
	if a.Kind() == idlast.VInt && b.Kind() == idlast.VInt {
		return a.Int(), b.Int(), true
	}
	return 0, 0, false
}

func bothFloat(a, b idlast.Value) (float64, float64, bool) {
	if a.Kind() == idlast.VFloat && b.Kind() == idlast.VFloat {
		return a.Float(), b.Float(), true
	}
	return 0, 0, false
}

func combineNumeric(a, b idlast.Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) idlast.Value {
	if l, r, ok := bothInt(a, b); ok {
		return idlast.IntValue(intOp(l, r))
	}
	if l, r, ok := bothFloat(a, b); ok {
		return idlast.FloatValue(floatOp(l, r))
	}
	return a
}
