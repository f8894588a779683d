// Package validation checks reminder messages against named required formats.
// Each format uses the same rewriting as comment patterns: strftime directives
// become digit fragments and ${name} placeholders become (.*).
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/harrison/reminder-lint/internal/models"
	"github.com/harrison/reminder-lint/internal/pattern"
)

type namedFormat struct {
	name string
	item models.ValidateItem
	re   *regexp.Regexp
}

// Validator holds the compiled validate formats
type Validator struct {
	formats []namedFormat
}

// Report is the outcome of validating a set of reminders
type Report struct {
	Checked int                    // Number of reminders evaluated
	Invalid []models.InvalidRemind // Reminders with at least one unmatched format
}

// HasErrors returns true if any reminder failed a format
func (r *Report) HasErrors() bool {
	return len(r.Invalid) > 0
}

// Error returns an aggregated message, or "" when every reminder is valid
func (r *Report) Error() string {
	if !r.HasErrors() {
		return ""
	}
	lines := make([]string, 0, len(r.Invalid)+1)
	lines = append(lines, fmt.Sprintf("found %d invalid reminder(s):", len(r.Invalid)))
	for _, inv := range r.Invalid {
		lines = append(lines, fmt.Sprintf("  - %s missing %s", inv.Remind.Position, strings.Join(UnmatchedNames(inv), ", ")))
	}
	return strings.Join(lines, "\n")
}

// New compiles every format in validates. A format the regexp engine rejects is a
// configuration error naming the offending entry.
func New(validates map[string]models.ValidateItem) (*Validator, error) {
	names := make([]string, 0, len(validates))
	for name := range validates {
		names = append(names, name)
	}
	sort.Strings(names)

	formats := make([]namedFormat, 0, len(names))
	for _, name := range names {
		item := validates[name]
		re, err := pattern.CompileFormatRegex(item.Format)
		if err != nil {
			return nil, fmt.Errorf("validates.%s: %w", name, err)
		}
		formats = append(formats, namedFormat{name: name, item: item, re: re})
	}
	return &Validator{formats: formats}, nil
}

// Len returns the number of configured formats
func (v *Validator) Len() int {
	return len(v.formats)
}

// Check returns the formats that message does not match, or nil when it matches all of them.
func (v *Validator) Check(message string) map[string]models.ValidateItem {
	var unmatched map[string]models.ValidateItem
	for _, f := range v.formats {
		if f.re.MatchString(message) {
			continue
		}
		if unmatched == nil {
			unmatched = make(map[string]models.ValidateItem)
		}
		unmatched[f.name] = f.item
	}
	return unmatched
}

// Validate evaluates every reminder against every format. It never stops early and
// never modifies reminds; invalid records keep their input order.
func (v *Validator) Validate(reminds []models.Remind) *Report {
	report := &Report{
		Checked: len(reminds),
		Invalid: make([]models.InvalidRemind, 0),
	}
	for _, remind := range reminds {
		if unmatched := v.Check(remind.Message); len(unmatched) > 0 {
			report.Invalid = append(report.Invalid, models.InvalidRemind{
				Remind:    remind,
				Unmatched: unmatched,
			})
		}
	}
	return report
}

// Validate compiles validates and evaluates reminds in one call.
func Validate(reminds []models.Remind, validates map[string]models.ValidateItem) ([]models.InvalidRemind, error) {
	v, err := New(validates)
	if err != nil {
		return nil, err
	}
	return v.Validate(reminds).Invalid, nil
}

// UnmatchedNames returns the unmatched format names of inv, sorted.
func UnmatchedNames(inv models.InvalidRemind) []string {
	names := make([]string, 0, len(inv.Unmatched))
	for name := range inv.Unmatched {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
