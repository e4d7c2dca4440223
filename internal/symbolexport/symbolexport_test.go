package symbolexport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/uysalibov/ibORB/internal/lexer"
	"github.com/uysalibov/ibORB/internal/parser"
	"github.com/uysalibov/ibORB/internal/symbolexport"
	"github.com/uysalibov/ibORB/internal/symtab"
)

func buildTable(t *testing.T, src string) *symtab.Table {
	t.Helper()
	lx := lexer.New(src, "test.idl")
	p := parser.New(lx)
	p.Parse()
	return p.Symbols()
}

func TestBuildPayloadFlattensNestedScopes(t *testing.T) {
	payload := symbolexport.BuildPayload(buildTable(t, `module Bank { struct Account { long id; }; };`))

	var found bool
	for _, sym := range payload.Symbols {
		if sym.FQN == "Bank::Account" && sym.Kind == "struct" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a struct symbol Bank::Account, got %+v", payload.Symbols)
	}
}

func TestExportImportMsgpackRoundTrip(t *testing.T) {
	table := buildTable(t, `module Bank { struct Account { long id; }; };`)
	want := symbolexport.BuildPayload(table)

	var buf bytes.Buffer
	if err := symbolexport.Export(&buf, table, symbolexport.FormatMsgpack); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got, err := symbolexport.Import(&buf, symbolexport.FormatMsgpack)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(got.Symbols) != len(want.Symbols) {
		t.Fatalf("got %d symbols, want %d", len(got.Symbols), len(want.Symbols))
	}
	if got.Symbols[0] != want.Symbols[0] {
		t.Errorf("round-tripped symbol mismatch: got %+v, want %+v", got.Symbols[0], want.Symbols[0])
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	table := buildTable(t, `interface Greeter { void hello(); };`)
	want := symbolexport.BuildPayload(table)

	var buf bytes.Buffer
	if err := symbolexport.Export(&buf, table, symbolexport.FormatJSON); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Greeter") {
		t.Errorf("expected JSON to mention Greeter:\n%s", buf.String())
	}

	got, err := symbolexport.Import(&buf, symbolexport.FormatJSON)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(got.Symbols) != len(want.Symbols) {
		t.Fatalf("got %d symbols, want %d", len(got.Symbols), len(want.Symbols))
	}
}

func TestImportRejectsMismatchedSchema(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`{"schema": 9999, "symbols": []}`)

	if _, err := symbolexport.Import(&buf, symbolexport.FormatJSON); err == nil {
		t.Fatal("expected Import to reject a payload with an unsupported schema version")
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	table := buildTable(t, `module Empty {};`)

	var buf bytes.Buffer
	if err := symbolexport.Export(&buf, table, symbolexport.Format(99)); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
