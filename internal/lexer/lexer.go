// Package lexer turns IDL source text into a stream of tokens.
package lexer

import (
	"strconv"
	"strings"

	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/source"
	"github.com/uysalibov/ibORB/internal/token"
)

// Lexer scans a single source file. It is not safe for concurrent use;
// callers building a multi-file pipeline run one Lexer per file.
type Lexer struct {
	src      string
	filename string
	pos      int
	line     int
	col      int

	lookahead []token.Token
	errs      *diag.Bag
}

// New creates a Lexer over src, reporting src's origin as filename in
// locations and diagnostics.
func New(src, filename string) *Lexer {
	return &Lexer{
		src:      src,
		filename: filename,
		line:     1,
		col:      1,
		errs:     diag.NewBag(),
	}
}

// Errors returns the diagnostics accumulated so far.
func (lx *Lexer) Errors() *diag.Bag { return lx.errs }

// Next consumes and returns the next token, draining the lookahead buffer
// first.
func (lx *Lexer) Next() token.Token {
	if len(lx.lookahead) > 0 {
		t := lx.lookahead[0]
		lx.lookahead = lx.lookahead[1:]
		return t
	}
	return lx.scan()
}

// Peek returns the token n positions ahead (0 = the next token yet to be
// consumed) without consuming anything.
func (lx *Lexer) Peek(n int) token.Token {
	for len(lx.lookahead) <= n {
		lx.lookahead = append(lx.lookahead, lx.scan())
	}
	return lx.lookahead[n]
}

// HasMore reports whether any non-EOF token remains.
func (lx *Lexer) HasMore() bool {
	return lx.Peek(0).Kind != token.EOF
}

// CurrentLocation reports the scan cursor's location, useful for diagnostics
// anchored between tokens.
func (lx *Lexer) CurrentLocation() source.Location {
	return source.Location{File: lx.filename, Line: lx.line, Column: lx.col}
}

func (lx *Lexer) atEnd() bool { return lx.pos >= len(lx.src) }

func (lx *Lexer) peekByte() byte {
	if lx.atEnd() {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) peekByteAt(n int) byte {
	if lx.pos+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+n]
}

func (lx *Lexer) advanceByte() byte {
	c := lx.src[lx.pos]
	lx.pos++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c
}

func (lx *Lexer) matchByte(expected byte) bool {
	if lx.atEnd() || lx.src[lx.pos] != expected {
		return false
	}
	lx.advanceByte()
	return true
}

func (lx *Lexer) addError(code diag.Code, loc source.Location, msg string) {
	lx.errs.Add(diag.NewError(code, loc, msg))
}

func (lx *Lexer) scan() token.Token {
	lx.skipWhitespaceAndComments()

	if lx.atEnd() {
		return token.Token{Kind: token.EOF, Loc: lx.CurrentLocation()}
	}

	loc := lx.CurrentLocation()
	c := lx.peekByte()

	if c == '#' {
		if strings.HasPrefix(lx.src[lx.pos:], "#line") ||
			(strings.HasPrefix(lx.src[lx.pos:], "# ") && isDigit(lx.peekByteAt(2))) {
			return lx.scanLineDirective()
		}
		if strings.HasPrefix(lx.src[lx.pos:], "#pragma") {
			return lx.scanPragma()
		}
		for !lx.atEnd() && lx.peekByte() != '\n' {
			lx.advanceByte()
		}
		return lx.scan()
	}

	if c == 'L' && (lx.peekByteAt(1) == '"' || lx.peekByteAt(1) == '\'') {
		lx.advanceByte()
		if lx.peekByte() == '"' {
			return lx.scanString(true)
		}
		return lx.scanChar(true)
	}

	if isIdentStart(c) {
		return lx.scanIdentOrKeyword()
	}
	if isDigit(c) {
		return lx.scanNumber()
	}

	if c == '"' {
		return lx.scanString(false)
	}
	if c == '\'' {
		return lx.scanChar(false)
	}

	lx.advanceByte()
	switch c {
	case ';':
		return token.Token{Kind: token.Semicolon, Text: ";", Loc: loc}
	case ',':
		return token.Token{Kind: token.Comma, Text: ",", Loc: loc}
	case '{':
		return token.Token{Kind: token.LBrace, Text: "{", Loc: loc}
	case '}':
		return token.Token{Kind: token.RBrace, Text: "}", Loc: loc}
	case '(':
		return token.Token{Kind: token.LParen, Text: "(", Loc: loc}
	case ')':
		return token.Token{Kind: token.RParen, Text: ")", Loc: loc}
	case '[':
		return token.Token{Kind: token.LBracket, Text: "[", Loc: loc}
	case ']':
		return token.Token{Kind: token.RBracket, Text: "]", Loc: loc}
	case '=':
		return token.Token{Kind: token.Assign, Text: "=", Loc: loc}
	case '+':
		return token.Token{Kind: token.Plus, Text: "+", Loc: loc}
	case '-':
		return token.Token{Kind: token.Minus, Text: "-", Loc: loc}
	case '*':
		return token.Token{Kind: token.Star, Text: "*", Loc: loc}
	case '/':
		return token.Token{Kind: token.Slash, Text: "/", Loc: loc}
	case '%':
		return token.Token{Kind: token.Percent, Text: "%", Loc: loc}
	case '&':
		return token.Token{Kind: token.Amp, Text: "&", Loc: loc}
	case '|':
		return token.Token{Kind: token.Pipe, Text: "|", Loc: loc}
	case '^':
		return token.Token{Kind: token.Caret, Text: "^", Loc: loc}
	case '~':
		return token.Token{Kind: token.Tilde, Text: "~", Loc: loc}
	case ':':
		if lx.matchByte(':') {
			return token.Token{Kind: token.ColonColon, Text: "::", Loc: loc}
		}
		return token.Token{Kind: token.Colon, Text: ":", Loc: loc}
	case '<':
		if lx.matchByte('<') {
			return token.Token{Kind: token.Shl, Text: "<<", Loc: loc}
		}
		return token.Token{Kind: token.LAngle, Text: "<", Loc: loc}
	case '>':
		if lx.matchByte('>') {
			return token.Token{Kind: token.Shr, Text: ">>", Loc: loc}
		}
		return token.Token{Kind: token.RAngle, Text: ">", Loc: loc}
	default:
		lx.addError(diag.LexUnknownChar, loc, "unexpected character: "+string(c))
		return token.Token{Kind: token.Unknown, Text: string(c), Loc: loc}
	}
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for !lx.atEnd() {
		switch lx.peekByte() {
		case ' ', '\t', '\r', '\n':
			lx.advanceByte()
		case '/':
			if lx.peekByteAt(1) == '/' {
				lx.skipLineComment()
			} else if lx.peekByteAt(1) == '*' {
				lx.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipLineComment() {
	lx.advanceByte()
	lx.advanceByte()
	for !lx.atEnd() && lx.peekByte() != '\n' {
		lx.advanceByte()
	}
}

func (lx *Lexer) skipBlockComment() {
	loc := lx.CurrentLocation()
	lx.advanceByte()
	lx.advanceByte()
	for !lx.atEnd() {
		if lx.peekByte() == '*' && lx.peekByteAt(1) == '/' {
			lx.advanceByte()
			lx.advanceByte()
			return
		}
		lx.advanceByte()
	}
	lx.addError(diag.LexUnterminatedBlockComment, loc, "unterminated block comment")
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	loc := lx.CurrentLocation()
	start := lx.pos
	for !lx.atEnd() && isIdentChar(lx.peekByte()) {
		lx.advanceByte()
	}
	text := lx.src[start:lx.pos]
	if kw, ok := token.Lookup(text); ok {
		return token.Token{Kind: kw, Text: text, Loc: loc}
	}
	return token.Token{Kind: token.Ident, Text: text, Value: text, Loc: loc}
}

func (lx *Lexer) scanNumber() token.Token {
	loc := lx.CurrentLocation()
	start := lx.pos
	isFloat, isHex, isOctal := false, false, false

	if lx.peekByte() == '0' {
		lx.advanceByte()
		if lx.peekByte() == 'x' || lx.peekByte() == 'X' {
			isHex = true
			lx.advanceByte()
			for !lx.atEnd() && isHexDigit(lx.peekByte()) {
				lx.advanceByte()
			}
		} else if isOctalDigit(lx.peekByte()) {
			isOctal = true
			for !lx.atEnd() && isOctalDigit(lx.peekByte()) {
				lx.advanceByte()
			}
		}
	}

	if !isHex && !isOctal {
		for !lx.atEnd() && isDigit(lx.peekByte()) {
			lx.advanceByte()
		}
		if lx.peekByte() == '.' && isDigit(lx.peekByteAt(1)) {
			isFloat = true
			lx.advanceByte()
			for !lx.atEnd() && isDigit(lx.peekByte()) {
				lx.advanceByte()
			}
		}
		if lx.peekByte() == 'e' || lx.peekByte() == 'E' {
			isFloat = true
			lx.advanceByte()
			if lx.peekByte() == '+' || lx.peekByte() == '-' {
				lx.advanceByte()
			}
			for !lx.atEnd() && isDigit(lx.peekByte()) {
				lx.advanceByte()
			}
		}
		if lx.peekByte() == 'f' || lx.peekByte() == 'F' || lx.peekByte() == 'd' || lx.peekByte() == 'D' {
			isFloat = true
			lx.advanceByte()
		}
	}

	text := lx.src[start:lx.pos]

	if isFloat {
		trimmed := strings.TrimRight(text, "fFdD")
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			lx.addError(diag.LexBadNumber, loc, "malformed float literal: "+text)
			v = 0
		}
		return token.Token{Kind: token.FloatLit, Text: text, Value: v, Loc: loc}
	}

	base := 10
	digits := text
	switch {
	case isHex:
		base = 16
		digits = text[2:]
	case isOctal:
		base = 8
	}
	iv, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		uv, uerr := strconv.ParseUint(digits, base, 64)
		if uerr != nil {
			lx.addError(diag.LexBadNumber, loc, "malformed integer literal: "+text)
			return token.Token{Kind: token.IntLit, Text: text, Value: int64(0), Loc: loc}
		}
		iv = int64(uv)
	}
	return token.Token{Kind: token.IntLit, Text: text, Value: iv, Loc: loc}
}

func (lx *Lexer) scanString(wide bool) token.Token {
	loc := lx.CurrentLocation()
	var textB, valB strings.Builder
	lx.advanceByte()
	textB.WriteByte('"')

	for !lx.atEnd() && lx.peekByte() != '"' {
		if lx.peekByte() == '\n' {
			lx.addError(diag.LexUnterminatedString, loc, "unterminated string literal")
			break
		}
		if lx.peekByte() == '\\' {
			textB.WriteByte(lx.advanceByte())
			if lx.atEnd() {
				break
			}
			escaped := lx.advanceByte()
			textB.WriteByte(escaped)
			switch escaped {
			case 'n':
				valB.WriteByte('\n')
			case 't':
				valB.WriteByte('\t')
			case 'r':
				valB.WriteByte('\r')
			case '\\':
				valB.WriteByte('\\')
			case '"':
				valB.WriteByte('"')
			case '\'':
				valB.WriteByte('\'')
			case '0':
				valB.WriteByte(0)
			case 'x':
				var hex strings.Builder
				for hex.Len() < 2 && !lx.atEnd() && isHexDigit(lx.peekByte()) {
					h := lx.advanceByte()
					hex.WriteByte(h)
					textB.WriteByte(h)
				}
				if hex.Len() > 0 {
					n, _ := strconv.ParseUint(hex.String(), 16, 8)
					valB.WriteByte(byte(n))
				}
			default:
				lx.addError(diag.LexBadEscape, loc, "unknown escape sequence: \\"+string(escaped))
				valB.WriteByte(escaped)
			}
		} else {
			c := lx.advanceByte()
			textB.WriteByte(c)
			valB.WriteByte(c)
		}
	}

	if lx.atEnd() {
		lx.addError(diag.LexUnterminatedString, loc, "unterminated string literal")
	} else {
		textB.WriteByte(lx.advanceByte())
	}

	kind := token.StringLit
	if wide {
		kind = token.WStringLit
	}
	return token.Token{Kind: kind, Text: textB.String(), Value: valB.String(), Loc: loc}
}

func (lx *Lexer) scanChar(wide bool) token.Token {
	loc := lx.CurrentLocation()
	var textB strings.Builder
	var value byte
	lx.advanceByte()
	textB.WriteByte('\'')

	if !lx.atEnd() && lx.peekByte() != '\'' {
		if lx.peekByte() == '\\' {
			textB.WriteByte(lx.advanceByte())
			if !lx.atEnd() {
				escaped := lx.advanceByte()
				textB.WriteByte(escaped)
				switch escaped {
				case 'n':
					value = '\n'
				case 't':
					value = '\t'
				case 'r':
					value = '\r'
				case '\\':
					value = '\\'
				case '"':
					value = '"'
				case '\'':
					value = '\''
				case '0':
					value = 0
				case 'x':
					var hex strings.Builder
					for hex.Len() < 2 && !lx.atEnd() && isHexDigit(lx.peekByte()) {
						h := lx.advanceByte()
						hex.WriteByte(h)
						textB.WriteByte(h)
					}
					if n, err := strconv.ParseUint(hex.String(), 16, 8); err == nil {
						value = byte(n)
					}
				default:
					value = escaped
				}
			}
		} else {
			value = lx.advanceByte()
			textB.WriteByte(value)
		}
	}

	if !lx.atEnd() && lx.peekByte() == '\'' {
		textB.WriteByte(lx.advanceByte())
	} else {
		lx.addError(diag.LexUnterminatedString, loc, "unterminated character literal")
	}

	kind := token.CharLit
	if wide {
		kind = token.WCharLit
	}
	return token.Token{Kind: kind, Text: textB.String(), Value: string(value), Loc: loc}
}

func (lx *Lexer) scanPragma() token.Token {
	loc := lx.CurrentLocation()
	start := lx.pos
	for !lx.atEnd() && lx.peekByte() != '\n' {
		lx.advanceByte()
	}
	text := lx.src[start:lx.pos]
	return token.Token{Kind: token.Pragma, Text: text, Value: text, Loc: loc}
}

// scanLineDirective handles a #line directive, redirecting the reported
// filename and line number for subsequent tokens without restarting the
// scan — the way a C preprocessor's output stitches multiple sources back
// into one reported coordinate space.
func (lx *Lexer) scanLineDirective() token.Token {
	loc := lx.CurrentLocation()
	start := lx.pos
	for !lx.atEnd() && lx.peekByte() != '\n' {
		lx.advanceByte()
	}
	text := lx.src[start:lx.pos]

	digitStart := strings.IndexAny(text, "0123456789")
	if digitStart >= 0 {
		end := digitStart
		for end < len(text) && text[end] >= '0' && text[end] <= '9' {
			end++
		}
		if n, err := strconv.Atoi(text[digitStart:end]); err == nil {
			// The newline that ends the directive advances the line, so
			// the line after the directive is reported as line n.
			lx.line = n - 1
		}
		if fnStart := strings.IndexByte(text[end:], '"'); fnStart >= 0 {
			fnStart += end
			if fnEnd := strings.IndexByte(text[fnStart+1:], '"'); fnEnd >= 0 {
				lx.filename = text[fnStart+1 : fnStart+1+fnEnd]
			}
		}
	}

	return token.Token{Kind: token.LineDirective, Text: text, Value: text, Loc: loc}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool   { return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }
func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isAlpha(c byte) bool      { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentStart(c byte) bool { return isAlpha(c) || c == '_' }
func isIdentChar(c byte) bool  { return isAlpha(c) || isDigit(c) || c == '_' }
