package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/uysalibov/ibORB/internal/token"
)

// TokenOutput is one lexed token rendered for JSON output.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// FormatTokensPretty writes one line per token: index, kind, spelling, and
// source position.
func FormatTokensPretty(w io.Writer, tokens []token.Token) {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d: %-16s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %-20q", tok.Text)
		} else {
			fmt.Fprintf(w, " %-20s", "")
		}
		fmt.Fprintf(w, " %s\n", tok.Loc.String())
		if tok.Kind == token.EOF {
			break
		}
	}
}

// FormatTokensJSON writes tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			File:   tok.Loc.File,
			Line:   tok.Loc.Line,
			Column: tok.Loc.Column,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
