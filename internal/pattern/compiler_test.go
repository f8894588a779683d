package pattern

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRegexSource(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "date only", format: "%Y/%m/%d", want: `\d{4}/\d{2}/\d{2}`},
		{name: "date and time", format: "%Y-%m-%d %H:%M:%S", want: `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`},
		{name: "literal regex kept", format: `%Y\.%m`, want: `\d{4}\.\d{2}`},
		{name: "unknown directive passes through", format: "%Y %b", want: `\d{4} %b`},
		{name: "no directives", format: "deadline", want: "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRegexSource(tt.format))
		})
	}
}

func TestCompileDateRegex_RoundTrip(t *testing.T) {
	formats := []string{
		"%Y/%m/%d",
		"%Y-%m-%d",
		"%d.%m.%Y",
		"%Y/%m/%d %H:%M",
		"%Y-%m-%dT%H:%M:%S",
		"%H:%M:%S %Y%m%d",
	}
	dates := []time.Time{
		time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, format := range formats {
		re, err := CompileDateRegex(format)
		require.NoError(t, err, format)

		for _, d := range dates {
			formatted := strftime.Format(format, d)
			line := "// remind: " + formatted + " something"
			assert.Equal(t, formatted, re.FindString(line), "format %q date %v", format, d)
		}
	}
}

func TestMatcherRegexSource(t *testing.T) {
	assert.Equal(t, `@(.*) remind:\W?`, MatcherRegexSource(`@${assignee} remind:\W?`))
	assert.Equal(t, `@(.*) remind: (.*)\W?`, MatcherRegexSource(`@${assignee} remind: ${task}\W?`))
	assert.Equal(t, `remind:\W?`, MatcherRegexSource(`remind:\W?`))
}

func TestPlaceholderRegexSource(t *testing.T) {
	assert.Equal(t, `@(?P<assignee>.*) remind:\W?`, PlaceholderRegexSource(`@${assignee} remind:\W?`))
	assert.Equal(t,
		`@(?P<assignee>.*) remind: (?P<task>.*)\W?`,
		PlaceholderRegexSource(`@${assignee} remind: ${task}\W?`))
}

func TestHasPlaceholders(t *testing.T) {
	assert.True(t, HasPlaceholders(`@${assignee} remind:`))
	assert.False(t, HasPlaceholders(`remind:\W?`))
	assert.False(t, HasPlaceholders(`@(?P<assignee>.*) remind:`))
	assert.False(t, HasPlaceholders(`remind:$`))
}

func TestPlaceholderNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b_2"}, PlaceholderNames(`${a} x ${b_2}`))
	assert.Empty(t, PlaceholderNames(`remind:`))
}

func TestCompilePlaceholderRegex_DuplicateNames(t *testing.T) {
	_, err := CompilePlaceholderRegex(`${who} remind ${who}`)
	require.Error(t, err)

	var compileErr *CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, `${who} remind ${who}`, compileErr.Pattern)
	assert.Contains(t, compileErr.Rewritten, "(?P<who>.*)")
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), `"who"`)
}

func TestCompile_DuplicateNativeGroups(t *testing.T) {
	tests := []struct {
		name    string
		compile func(string) (*regexp.Regexp, error)
		pattern string
	}{
		{"placeholder and native group", CompilePlaceholderRegex, `${a} (?P<a>\w+)`},
		{"native groups in matcher", CompileMatcher, `(?P<x>a)(?P<x>b) remind:`},
		{"native groups in validate format", CompileFormatRegex, `(?P<d>%Y)-(?P<d>%m)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.compile(tt.pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateName)
		})
	}
}

func TestCompile_DistinctNamesAccepted(t *testing.T) {
	re, err := CompilePlaceholderRegex(`${a} (?P<b>\w+) ${c}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a", "b", "c"}, re.SubexpNames())
}

func TestCompileMatcher_Invalid(t *testing.T) {
	_, err := CompileMatcher(`remind:(`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid pattern "remind:("`)
}

func TestCompileFormatRegex(t *testing.T) {
	re, err := CompileFormatRegex("%Y/%m/%d")
	require.NoError(t, err)
	assert.True(t, re.MatchString("remind: 2024/03/15 ship it"))
	assert.False(t, re.MatchString("remind: ship it"))

	re, err = CompileFormatRegex(`@${assignee}`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("remind: 2024/03/15 @alice"))
	assert.False(t, re.MatchString("remind: 2024/03/15 alice"))
}
