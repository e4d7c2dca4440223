// Package source models source-text positions for the IDL front-end.
package source

import "fmt"

// Location is a (filename, line, column) triple, 1-based. It is attached
// to every token and every tree node. Filename is mutable because a
// preprocessor #line directive can redirect where a run of tokens is
// reported to originate from, without restarting the scan.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location the way diagnostics quote it: "file:line:col".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsZero reports whether l is the unset location.
func (l Location) IsZero() bool {
	return l == Location{}
}
