package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/parser"
)

func TestFormatSymbolsPrettyShowsNestedScopes(t *testing.T) {
	lx := lexer.New(`module Bank { struct Account { long id; }; };`, "test.idl")
	p := parser.New(lx)
	p.Parse()

	var buf bytes.Buffer
	diagfmt.FormatSymbolsPretty(&buf, p.Symbols().GlobalScope())
	out := buf.String()

	if !strings.Contains(out, "[Bank]") {
		t.Errorf("missing module scope marker:\n%s", out)
	}
	if !strings.Contains(out, "Bank::Account") {
		t.Errorf("missing struct FQN:\n%s", out)
	}
}

func TestFormatSymbolsJSONFlattensTree(t *testing.T) {
	lx := lexer.New(`module Bank { struct Account { long id; }; };`, "test.idl")
	p := parser.New(lx)
	p.Parse()

	var buf bytes.Buffer
	if err := diagfmt.FormatSymbolsJSON(&buf, p.Symbols().GlobalScope()); err != nil {
		t.Fatal(err)
	}
	var rows []diagfmt.SymbolOutput
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	found := false
	for _, r := range rows {
		if r.FQN == "Bank::Account" && r.Kind == "struct" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a struct symbol Bank::Account, got %+v", rows)
	}
}
