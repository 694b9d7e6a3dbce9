package variance

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoteFormatter renders dispute notes with locale-aware number formatting.
type NoteFormatter struct {
	printer *message.Printer
}

func NewNoteFormatter(tag language.Tag) *NoteFormatter {
	return &NoteFormatter{printer: message.NewPrinter(tag)}
}

// Dispute describes a variance that exceeded tolerance, e.g.
// "shortfall of 150.00 (3.00%) exceeds tolerance".
func (f *NoteFormatter) Dispute(r Result) string {
	kind := "surplus"
	if r.Variance.IsNegative() {
		kind = "shortfall"
	}

	return f.printer.Sprintf("%s of %.2f (%.2f%%) exceeds tolerance",
		kind, r.Variance.Abs().InexactFloat64(), r.Percentage.InexactFloat64())
}
