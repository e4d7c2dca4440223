package lexer_test

import (
	"testing"

	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/token"
)

func collectAll(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []token.Kind, want ...token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanKeywordsAndIdents(t *testing.T) {
	lx := lexer.New("module Foo { interface Bar {}; };", "test.idl")
	toks := collectAll(lx)
	assertKinds(t, kinds(toks),
		token.KwModule, token.Ident, token.LBrace,
		token.KwInterface, token.Ident, token.LBrace, token.RBrace, token.Semicolon,
		token.RBrace, token.Semicolon, token.EOF,
	)
	if toks[1].Text != "Foo" {
		t.Errorf("Text = %q, want %q", toks[1].Text, "Foo")
	}
}

func TestScanIntegerLiterals(t *testing.T) {
	lx := lexer.New("const long X = 0x1F;", "test.idl")
	toks := collectAll(lx)
	var lit token.Token
	for _, tok := range toks {
		if tok.Kind == token.IntLit {
			lit = tok
		}
	}
	if lit.Kind != token.IntLit {
		t.Fatal("expected an integer literal token")
	}
	if lit.IntValue() != 0x1F {
		t.Errorf("IntValue() = %d, want %d", lit.IntValue(), 0x1F)
	}
}

func TestScanFloatLiteral(t *testing.T) {
	lx := lexer.New("3.14", "test.idl")
	tok := lx.Next()
	if tok.Kind != token.FloatLit {
		t.Fatalf("Kind = %v, want FloatLit", tok.Kind)
	}
	if tok.FloatValue() != 3.14 {
		t.Errorf("FloatValue() = %v, want 3.14", tok.FloatValue())
	}
}

func TestScanStringLiteralWithEscapes(t *testing.T) {
	lx := lexer.New(`"hi\n\t"`, "test.idl")
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("Kind = %v, want StringLit", tok.Kind)
	}
	if tok.StringValue() != "hi\n\t" {
		t.Errorf("StringValue() = %q, want %q", tok.StringValue(), "hi\n\t")
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	lx := lexer.New("\"unterminated", "test.idl")
	lx.Next()
	if lx.Errors().Len() == 0 {
		t.Error("expected a diagnostic for the unterminated string literal")
	}
}

func TestScanOperatorsAndPunctuation(t *testing.T) {
	lx := lexer.New(":: << >> = ; :", "test.idl")
	toks := collectAll(lx)
	assertKinds(t, kinds(toks),
		token.ColonColon, token.Shl, token.Shr, token.Assign,
		token.Semicolon, token.Colon, token.EOF,
	)
}

func TestSkipsLineAndBlockComments(t *testing.T) {
	lx := lexer.New("// a comment\nmodule /* inline */ Foo;", "test.idl")
	toks := collectAll(lx)
	assertKinds(t, kinds(toks), token.KwModule, token.Ident, token.Semicolon, token.EOF)
}

func TestUnterminatedBlockCommentReportsError(t *testing.T) {
	lx := lexer.New("/* never closes", "test.idl")
	lx.Next()
	if lx.Errors().Len() == 0 {
		t.Error("expected a diagnostic for the unterminated block comment")
	}
}

func TestUnknownCharacterReportsError(t *testing.T) {
	lx := lexer.New("@", "test.idl")
	tok := lx.Next()
	if tok.Kind != token.Unknown {
		t.Fatalf("Kind = %v, want Unknown", tok.Kind)
	}
	if lx.Errors().Len() == 0 {
		t.Error("expected a diagnostic for the unknown character")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New("module Foo;", "test.idl")
	first := lx.Peek(0)
	if first.Kind != token.KwModule {
		t.Fatalf("Peek(0).Kind = %v, want KwModule", first.Kind)
	}
	second := lx.Peek(1)
	if second.Kind != token.Ident {
		t.Fatalf("Peek(1).Kind = %v, want Ident", second.Kind)
	}
	if got := lx.Next(); got.Kind != token.KwModule {
		t.Errorf("Next() after Peek = %v, want KwModule", got.Kind)
	}
	if got := lx.Next(); got.Kind != token.Ident {
		t.Errorf("Next() after Peek = %v, want Ident", got.Kind)
	}
}

func TestHasMore(t *testing.T) {
	lx := lexer.New("x", "test.idl")
	if !lx.HasMore() {
		t.Fatal("expected HasMore to be true before consuming the only token")
	}
	lx.Next()
	if lx.HasMore() {
		t.Error("expected HasMore to be false at EOF")
	}
}

func TestLineDirectiveUpdatesReportedLocation(t *testing.T) {
	lx := lexer.New("#line 42 \"other.idl\"\nfoo", "test.idl")
	lineTok := lx.Next()
	if lineTok.Kind != token.LineDirective {
		t.Fatalf("Kind = %v, want LineDirective", lineTok.Kind)
	}
	ident := lx.Next()
	if ident.Loc.File != "other.idl" || ident.Loc.Line != 42 {
		t.Errorf("Loc = %+v, want File=other.idl Line=42", ident.Loc)
	}
}

func TestScanWideStringAndChar(t *testing.T) {
	lx := lexer.New(`L"wide" L'w'`, "test.idl")
	toks := collectAll(lx)
	assertKinds(t, kinds(toks), token.WStringLit, token.WCharLit, token.EOF)
}
