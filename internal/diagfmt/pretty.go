package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/uysalibov/ibORB/internal/diag"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	locColor    = color.New(color.FgWhite, color.Bold)
	codeColor   = color.New(color.FgHiBlack)
	caretColor  = color.New(color.FgCyan, color.Bold)
	noteColor   = color.New(color.FgBlue)
)

// Pretty writes bag's diagnostics as human-readable text:
//
//	path:line:col: error [sem-unknown-constant]: message
//	  3 | const long X = UNKNOWN;
//	    |                ^
//
// Call bag.Sort() beforehand for deterministic file/line ordering.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	cache := newLineCache()

	for _, d := range bag.Items() {
		sev := "error"
		sevColor := errorColor
		if d.IsWarning() {
			sev = "warning"
			sevColor = warnColor
		}

		path := displayPath(d.Location.File, opts.PathMode)
		header := fmt.Sprintf("%s:%d:%d:", path, d.Location.Line, d.Location.Column)

		if opts.Color {
			locColor.Fprint(w, header)
			fmt.Fprint(w, " ")
			sevColor.Fprint(w, sev)
			fmt.Fprint(w, " ")
			codeColor.Fprintf(w, "[%s]", d.Code.String())
			fmt.Fprintf(w, ": %s\n", d.Message)
		} else {
			fmt.Fprintf(w, "%s %s [%s]: %s\n", header, sev, d.Code.String(), d.Message)
		}

		if opts.Context > 0 && d.Location.File != "" {
			printSourceContext(w, cache, d, opts)
		}
	}
}

func printSourceContext(w io.Writer, cache *lineCache, d diag.Diagnostic, opts PrettyOpts) {
	start := d.Location.Line - opts.Context
	if start < 1 {
		start = 1
	}
	end := d.Location.Line + opts.Context

	gutterWidth := len(fmt.Sprintf("%d", end))

	for n := start; n <= end; n++ {
		text := cache.line(d.Location.File, n)
		if text == "" && n != d.Location.Line {
			continue
		}
		fmt.Fprintf(w, "  %*d | %s\n", gutterWidth, n, text)

		if n == d.Location.Line {
			pad := strings.Repeat(" ", gutterWidth)
			marker := strings.Repeat(" ", max0(d.Location.Column-1)) + "^"
			if opts.Color {
				fmt.Fprintf(w, "  %s | ", pad)
				caretColor.Fprintln(w, marker)
			} else {
				fmt.Fprintf(w, "  %s | %s\n", pad, marker)
			}
		}
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Summary writes a one-line "N error(s), M warning(s)" footer.
func Summary(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	errs := len(bag.Errors())
	warns := len(bag.Warnings())
	line := fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
	if !opts.Color {
		fmt.Fprintln(w, line)
		return
	}
	if errs > 0 {
		errorColor.Fprint(w, fmt.Sprintf("%d error(s)", errs))
	} else {
		noteColor.Fprint(w, fmt.Sprintf("%d error(s)", errs))
	}
	fmt.Fprint(w, ", ")
	if warns > 0 {
		warnColor.Fprintln(w, fmt.Sprintf("%d warning(s)", warns))
	} else {
		noteColor.Fprintln(w, fmt.Sprintf("%d warning(s)", warns))
	}
}
