package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning block, in yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, paint(ColorEnabled(out), ansiYellow, b.String()))
}

// WarnDeprecation builds the notice shown when a deprecated config key is in use.
// configFile may be empty when no file was loaded.
func WarnDeprecation(notice, configFile string) Warning {
	w := Warning{
		Title:      "Deprecated configuration",
		Message:    notice,
		Suggestion: "Rename datetime_format to trigger.datetime",
	}
	if configFile != "" {
		w.Files = []string{configFile}
	}
	return w
}

// WarnNoValidates builds the notice shown when validate has nothing to check.
func WarnNoValidates(configFile string) Warning {
	w := Warning{
		Title:      "No validates configured",
		Message:    "Every reminder is trivially valid",
		Suggestion: "Add a validates section, e.g. validates: {date: {format: '%Y/%m/%d'}}",
	}
	if configFile != "" {
		w.Files = []string{configFile}
	}
	return w
}
