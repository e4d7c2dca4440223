package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.idl",
	Short: "Tokenize an IDL file",
	Long:  `Tokenize breaks an IDL file down into its constituent tokens without parsing it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	lx := lexer.New(string(content), path)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if lx.Errors().Len() > 0 {
		lx.Errors().Sort()
		diagfmt.Pretty(os.Stderr, lx.Errors(), diagfmt.PrettyOpts{
			Color:   colorEnabled(cmd, os.Stderr),
			Context: 1,
		})
	}

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, tokens)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
