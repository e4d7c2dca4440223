package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/parser"
	"github.com/uysalibov/ibORB/internal/symbolexport"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.idl",
	Short: "Dump the symbol table produced by parsing an IDL file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runSymbols(cmd *cobra.Command, args []string) error {
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
	p := parser.New(lx)
	p.Parse()

	if p.Diagnostics().Len() > 0 {
		p.Diagnostics().Sort()
		diagfmt.Pretty(os.Stderr, p.Diagnostics(), diagfmt.PrettyOpts{
			Color:   colorEnabled(cmd, os.Stderr),
			Context: 1,
		})
	}

	switch format {
	case "pretty":
		diagfmt.FormatSymbolsPretty(os.Stdout, p.Symbols().GlobalScope())
		return nil
	case "json":
		return diagfmt.FormatSymbolsJSON(os.Stdout, p.Symbols().GlobalScope())
	case "msgpack":
		return symbolexport.Export(os.Stdout, p.Symbols(), symbolexport.FormatMsgpack)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
