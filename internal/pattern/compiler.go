// Package pattern compiles the user-facing patterns of reminder-lint into
// regular expressions.
//
// Three kinds of pattern exist:
//   - comment patterns, which may embed ${name} placeholders that are turned
//     into named capture groups for metadata extraction
//   - date formats, a strftime subset (%Y %m %d %H %M %S) rewritten into
//     digit-count fragments for locating a date inside a line
//   - validate formats, which combine both rewrites and are matched against
//     a reminder's message
//
// Everything except the recognized tokens is passed to the regexp engine
// untouched, so users may mix literal regex syntax with tokens freely.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// placeholderToken matches a ${name} placeholder; name is word characters only.
var placeholderToken = regexp.MustCompile(`\$\{(\w+)\}`)

// dateDirectives rewrites each recognized strftime directive into a digit-count fragment.
// Unrecognized directives pass through literally.
var dateDirectives = strings.NewReplacer(
	"%Y", `\d{4}`,
	"%m", `\d{2}`,
	"%d", `\d{2}`,
	"%H", `\d{2}`,
	"%M", `\d{2}`,
	"%S", `\d{2}`,
)

// ErrDuplicateName is returned when two capture groups share a name.
var ErrDuplicateName = errors.New("duplicate capture group name")

// CompileError reports a pattern that the regexp engine rejected after rewriting
type CompileError struct {
	Pattern   string // Pattern as written by the user
	Rewritten string // Pattern handed to the regexp engine
	Err       error
}

// Error implements the error interface for CompileError.
func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// DateRegexSource rewrites a date format into regex source text.
func DateRegexSource(format string) string {
	return dateDirectives.Replace(format)
}

// CompileDateRegex compiles a date format into a regex that finds a date written in that format.
func CompileDateRegex(format string) (*regexp.Regexp, error) {
	return compile(format, DateRegexSource(format))
}

// HasPlaceholders reports whether pattern contains at least one ${name} placeholder.
func HasPlaceholders(pattern string) bool {
	return placeholderToken.MatchString(pattern)
}

// PlaceholderNames returns the placeholder names of pattern in order of appearance.
func PlaceholderNames(pattern string) []string {
	matches := placeholderToken.FindAllStringSubmatch(pattern, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// PlaceholderRegexSource rewrites every ${name} into a greedy named group (?P<name>.*).
// Patterns without placeholders are returned unchanged.
func PlaceholderRegexSource(pattern string) string {
	return placeholderToken.ReplaceAllString(pattern, `(?P<${1}>.*)`)
}

// MatcherRegexSource rewrites every ${name} into an unnamed group (.*).
// This is the form used to decide whether a line is a reminder line at all.
func MatcherRegexSource(pattern string) string {
	return placeholderToken.ReplaceAllString(pattern, `(.*)`)
}

// CompilePlaceholderRegex compiles pattern with placeholders turned into named groups.
// Duplicate placeholder names surface as a CompileError wrapping ErrDuplicateName.
func CompilePlaceholderRegex(pattern string) (*regexp.Regexp, error) {
	return compile(pattern, PlaceholderRegexSource(pattern))
}

// CompileMatcher compiles the comment pattern used to select reminder lines.
func CompileMatcher(pattern string) (*regexp.Regexp, error) {
	return compile(pattern, MatcherRegexSource(pattern))
}

// CompileFormatRegex compiles a validate format, applying both the date and placeholder rewrites.
func CompileFormatRegex(format string) (*regexp.Regexp, error) {
	return compile(format, MatcherRegexSource(DateRegexSource(format)))
}

func compile(original, source string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, &CompileError{Pattern: original, Rewritten: source, Err: err}
	}
	seen := make(map[string]bool)
	for _, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, &CompileError{
				Pattern:   original,
				Rewritten: source,
				Err:       fmt.Errorf("%w %q", ErrDuplicateName, name),
			}
		}
		seen[name] = true
	}
	return re, nil
}
