package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/diagfmt"
	"github.com/uysalibov/ibORB/internal/source"
)

func writeTempIDL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.idl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrettyPrintsMessageAndSourceContext(t *testing.T) {
	path := writeTempIDL(t, "module Foo {\n  struct Bad ; \n};\n")

	bag := diag.NewBag()
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Location{File: path, Line: 2, Column: 14}, "expected struct name"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, diagfmt.PrettyOpts{Context: 1, PathMode: diagfmt.PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "sample.idl:2:14:") {
		t.Errorf("missing location header:\n%s", out)
	}
	if !strings.Contains(out, "expected struct name") {
		t.Errorf("missing message:\n%s", out)
	}
	if !strings.Contains(out, "struct Bad") {
		t.Errorf("missing source context line:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret:\n%s", out)
	}
}

func TestPrettyWithoutContextSkipsSourceLines(t *testing.T) {
	path := writeTempIDL(t, "struct S {};\n")
	bag := diag.NewBag()
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Location{File: path, Line: 1, Column: 1}, "oops"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, diagfmt.PrettyOpts{})
	if strings.Contains(buf.String(), "struct S") {
		t.Errorf("expected no source context with Context=0:\n%s", buf.String())
	}
}

func TestSummaryCounts(t *testing.T) {
	bag := diag.NewBag()
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Location{}, "e"))
	bag.Add(diag.NewWarning(diag.SemOnewayViolation, source.Location{}, "w1"))
	bag.Add(diag.NewWarning(diag.SemOnewayViolation, source.Location{}, "w2"))

	var buf bytes.Buffer
	diagfmt.Summary(&buf, bag, diagfmt.PrettyOpts{})
	if got := strings.TrimSpace(buf.String()); got != "1 error(s), 2 warning(s)" {
		t.Errorf("Summary output = %q", got)
	}
}

func TestJSONEncodesDiagnostics(t *testing.T) {
	bag := diag.NewBag()
	bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Location{File: "a.idl", Line: 3, Column: 5}, "bad"))

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var rows []diagfmt.DiagnosticOutput
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Severity != "error" || rows[0].Line != 3 || rows[0].Column != 5 {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestJSONWithoutPositionsOmitsThem(t *testing.T) {
	bag := diag.NewBag()
	bag.Add(diag.NewWarning(diag.SemOnewayViolation, source.Location{File: "a.idl", Line: 3, Column: 5}, "w"))

	rows := diagfmt.BuildDiagnosticsOutput(bag, diagfmt.JSONOpts{})
	if rows[0].Line != 0 || rows[0].Column != 0 {
		t.Errorf("expected zero positions when IncludePositions is false, got %+v", rows[0])
	}
}

func TestBuildDiagnosticsOutputRespectsMax(t *testing.T) {
	bag := diag.NewBag()
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewError(diag.SynExpectIdentifier, source.Location{}, "e"))
	}
	rows := diagfmt.BuildDiagnosticsOutput(bag, diagfmt.JSONOpts{Max: 2})
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
}
