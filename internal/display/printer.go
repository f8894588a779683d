package display

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/harrison/reminder-lint/internal/models"
	"github.com/harrison/reminder-lint/internal/validation"
)

// Printer writes human-readable reminder output.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer for out. Color follows ColorEnabled(out).
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, color: ColorEnabled(out)}
}

// FormatRemind renders "<file>:<line> <message>".
func FormatRemind(r models.Remind) string {
	return fmt.Sprintf("%s %s", r.Position, r.Message)
}

// Remind prints one reminder, red when expired.
func (p *Printer) Remind(r models.Remind, expired bool) {
	line := FormatRemind(r)
	if expired {
		line = paint(p.color, ansiRed, line)
	}
	fmt.Fprintln(p.out, line)
}

// Reminds prints reminders in order, painting those expired at now.
func (p *Printer) Reminds(reminds []models.Remind, now time.Time) {
	for _, r := range reminds {
		p.Remind(r, r.IsExpired(now))
	}
}

// Classified prints the expired block first, then the upcoming block.
func (p *Printer) Classified(c models.Classified) {
	for _, r := range c.Expired {
		p.Remind(r, true)
	}
	for _, r := range c.Upcoming {
		p.Remind(r, false)
	}
}

// Invalid prints a validation report: a header, then for every invalid reminder its
// location line followed by one "Missing `name` format: <format>" line per unmatched
// name, sorted by name.
func (p *Printer) Invalid(invalid []models.InvalidRemind) {
	p.Failure(fmt.Sprintf("found %d invalid reminders:", len(invalid)))
	for _, inv := range invalid {
		fmt.Fprintln(p.out, FormatRemind(inv.Remind))
		for _, name := range validation.UnmatchedNames(inv) {
			fmt.Fprintf(p.out, "  Missing `%s` format: %s\n", name, paint(p.color, ansiRed, inv.Unmatched[name].Format))
		}
	}
}

// Success prints a green status line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.out, paint(p.color, ansiGreen, "✓ "+message))
}

// Failure prints a red status line.
func (p *Printer) Failure(message string) {
	fmt.Fprintln(p.out, paint(p.color, ansiRed, "✗ "+message))
}

// WriteJSON encodes v on a single line followed by a newline.
func WriteJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
