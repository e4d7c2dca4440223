package diag

import "sort"

// Bag accumulates diagnostics across a lexer/parser/emitter run. Nothing
// ever panics on the fallible path; callers append here and inspect the
// bag afterward.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 8)}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity == SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the accumulated diagnostics. Do not mutate the result.
func (b *Bag) Items() []Diagnostic { return b.items }

// Errors returns only the error-severity diagnostics.
func (b *Bag) Errors() []Diagnostic {
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		if d.Severity == SevError {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics.
func (b *Bag) Warnings() []Diagnostic {
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		if d.Severity == SevWarning {
			out = append(out, d)
		}
	}
	return out
}

// Sort orders diagnostics by file, then line, then column, then severity
// (errors before warnings), for deterministic reporting.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		a, c := b.items[i], b.items[j]
		if a.Location.File != c.Location.File {
			return a.Location.File < c.Location.File
		}
		if a.Location.Line != c.Location.Line {
			return a.Location.Line < c.Location.Line
		}
		if a.Location.Column != c.Location.Column {
			return a.Location.Column < c.Location.Column
		}
		return a.Severity > c.Severity
	})
}

// Merge appends other's items to b.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}
