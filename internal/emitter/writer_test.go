package emitter

import "testing"

func TestWriterIndentTracking(t *testing.T) {
	w := newWriter("  ")
	w.line("top")
	w.push()
	w.line("nested")
	w.push()
	w.line("deeper")
	w.pop()
	w.line("nested again")
	w.pop()
	w.line("top again")

	want := "top\n  nested\n    deeper\n  nested again\ntop again\n"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriterPopBelowZeroIsNoOp(t *testing.T) {
	w := newWriter("  ")
	w.pop()
	w.line("x")
	if got := w.String(); got != "x\n" {
		t.Errorf("String() = %q, want %q", got, "x\n")
	}
}

func TestWriterBlankLineHasNoIndent(t *testing.T) {
	w := newWriter("  ")
	w.push()
	w.blank()
	if got := w.String(); got != "\n" {
		t.Errorf("String() = %q, want a bare newline", got)
	}
}
