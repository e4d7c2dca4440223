package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/uysalibov/ibORB/internal/diag"
)

// DiagnosticOutput is one diagnostic rendered for JSON output.
type DiagnosticOutput struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// BuildDiagnosticsOutput renders bag according to opts, without writing it
// anywhere; JSON encodes the slice it returns.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) []DiagnosticOutput {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]DiagnosticOutput, 0, len(items))
	for _, d := range items {
		sev := "error"
		if d.IsWarning() {
			sev = "warning"
		}
		row := DiagnosticOutput{
			Severity: sev,
			Code:     d.Code.String(),
			Message:  d.Message,
			File:     displayPath(d.Location.File, opts.PathMode),
		}
		if opts.IncludePositions {
			row.Line = d.Location.Line
			row.Column = d.Location.Column
		}
		out = append(out, row)
	}
	return out
}

// JSON writes bag as a JSON array of diagnostics.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, opts))
}
