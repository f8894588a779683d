package pattern

import "regexp"

// Placeholders extracts named captures from text using a compiled comment pattern.
// It accepts both ${name} placeholders and native (?P<name>...) groups.
type Placeholders struct {
	re *regexp.Regexp
}

// NewPlaceholders compiles pattern once so Extract can be called per line.
func NewPlaceholders(pattern string) (*Placeholders, error) {
	re, err := CompilePlaceholderRegex(pattern)
	if err != nil {
		return nil, err
	}
	return &Placeholders{re: re}, nil
}

// Extract matches text and returns every named group that participated in the match.
// Groups that did not participate are omitted rather than mapped to "".
// The second result is false when the pattern does not match text at all.
func (p *Placeholders) Extract(text string) (map[string]string, bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, false
	}

	values := make(map[string]string)
	for i, name := range p.re.SubexpNames() {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		values[name] = text[start:end]
	}
	return values, true
}

// ExtractPlaceholders compiles pattern and extracts its named captures from text.
// It returns (nil, false, nil) when the pattern does not match.
func ExtractPlaceholders(pattern, text string) (map[string]string, bool, error) {
	p, err := NewPlaceholders(pattern)
	if err != nil {
		return nil, false, err
	}
	values, ok := p.Extract(text)
	return values, ok, nil
}
