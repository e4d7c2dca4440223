// Package parser implements a recursive-descent parser for IDL. It builds
// the AST and drives the symbol table in lockstep — a module, interface,
// struct, union or exception is bound into scope before its body is parsed,
// so its members can refer back to it, and the parser descends into that
// definition's own scope for the body; enums, typedefs, constants,
// attributes and operations are bound once their declaration is parsed.
package parser

import (
	"fmt"

	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/symtab"
	"github.com/uysalibov/ibORB/internal/token"
)

// Parser turns one file's token stream into a TranslationUnit. It is not
// safe for concurrent use.
type Parser struct {
	lx   *lexer.Lexer
	cur  token.Token
	prev token.Token

	diags     *diag.Bag
	symbols   *symtab.Table
	panicMode bool
	lexErrs   int // lexer diagnostics already copied into diags
}

// New creates a Parser reading from lx.
func New(lx *lexer.Lexer) *Parser {
	p := &Parser{
		lx:      lx,
		diags:   diag.NewBag(),
		symbols: symtab.New(),
	}
	p.advance()
	return p
}

// Diagnostics returns the accumulated errors and warnings, lexer errors
// included.
func (p *Parser) Diagnostics() *diag.Bag { return p.diags }

// Symbols returns the symbol table built while parsing.
func (p *Parser) Symbols() *symtab.Table { return p.symbols }

// Parse consumes the whole token stream and returns the translation unit.
func (p *Parser) Parse() *idlast.TranslationUnit {
	unit := &idlast.TranslationUnit{Filename: p.cur.Loc.File}

	for !p.at(token.EOF) {
		if p.at(token.LineDirective) {
			p.advance()
			continue
		}
		if def := p.parseDefinition(); def != nil {
			unit.Definitions = append(unit.Definitions, def)
		} else {
			p.synchronize()
		}
	}

	return unit
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (p *Parser) HasErrors() bool { return p.diags.HasErrors() }

// ----------------------------------------------------------------------
// Token helpers
// ----------------------------------------------------------------------

func (p *Parser) advance() {
	p.prev = p.cur
	for {
		p.cur = p.lx.Next()
		if p.cur.Kind == token.LineDirective {
			continue
		}
		if p.cur.Kind != token.Unknown {
			break
		}
	}
	lexItems := p.lx.Errors().Items()
	for _, d := range lexItems[p.lexErrs:] {
		p.diags.Add(d)
	}
	p.lexErrs = len(lexItems)
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.errorAt(p.cur, msg)
	return false
}

func (p *Parser) expectSemicolon() { p.expect(token.Semicolon, "expected ';'") }

// ----------------------------------------------------------------------
// Diagnostics
// ----------------------------------------------------------------------

func (p *Parser) error(msg string) { p.errorAt(p.cur, msg) }

func (p *Parser) errorAt(t token.Token, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true

	full := msg
	switch {
	case t.Kind == token.EOF:
		full = msg + " at end of file"
	case t.Kind != token.Unknown:
		full = fmt.Sprintf("%s (got %q)", msg, t.Text)
	}
	p.diags.Add(diag.NewError(diag.SynUnexpectedToken, t.Loc, full))
}

func (p *Parser) warning(code diag.Code, msg string) {
	p.diags.Add(diag.NewWarning(code, p.cur.Loc, msg))
}

// synchronize discards tokens until it finds a plausible statement
// boundary, so one malformed definition doesn't cascade into a wall of
// spurious errors for everything that follows it.
func (p *Parser) synchronize() {
	p.panicMode = false

	for !p.at(token.EOF) {
		if p.prev.Kind == token.Semicolon {
			return
		}
		if p.prev.Kind == token.RBrace {
			if p.at(token.Semicolon) {
				p.advance()
			}
			return
		}
		if p.isDefinitionStart() {
			return
		}
		p.advance()
	}
}

func (p *Parser) isDefinitionStart() bool {
	switch p.cur.Kind {
	case token.KwModule, token.KwInterface, token.KwStruct, token.KwUnion,
		token.KwEnum, token.KwTypedef, token.KwConst, token.KwException,
		token.KwAbstract, token.KwLocal:
		return true
	default:
		return false
	}
}
