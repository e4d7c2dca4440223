package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/uysalibov/ibORB/internal/symtab"
)

// SymbolOutput is one bound name rendered for JSON output.
type SymbolOutput struct {
	Name string `json:"name"`
	FQN  string `json:"fqn"`
	Kind string `json:"kind"`
}

// FormatSymbolsPretty writes the scope tree rooted at scope as indented
// text, one symbol per line, recursing into child scopes depth-first.
func FormatSymbolsPretty(w io.Writer, scope *symtab.Scope) {
	printScope(w, scope, 0)
}

func printScope(w io.Writer, scope *symtab.Scope, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	for _, sym := range scope.Symbols() {
		fmt.Fprintf(w, "%s%s %s (%s)\n", indent, sym.Kind.String(), sym.FQN, sym.Name)
	}
	for _, child := range scope.Order {
		fmt.Fprintf(w, "%s[%s]\n", indent, child.Name)
		printScope(w, child, depth+1)
	}
}

// collectSymbols flattens scope's tree into a single slice, depth-first.
func collectSymbols(scope *symtab.Scope) []symtab.Symbol {
	out := scope.Symbols()
	for _, child := range scope.Order {
		out = append(out, collectSymbols(child)...)
	}
	return out
}

// FormatSymbolsJSON writes every symbol reachable from scope as a flat
// JSON array.
func FormatSymbolsJSON(w io.Writer, scope *symtab.Scope) error {
	syms := collectSymbols(scope)
	out := make([]SymbolOutput, 0, len(syms))
	for _, sym := range syms {
		out = append(out, SymbolOutput{Name: sym.Name, FQN: sym.FQN, Kind: sym.Kind.String()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
