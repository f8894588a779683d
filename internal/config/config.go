package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harrison/reminder-lint/internal/models"
	"github.com/harrison/reminder-lint/internal/pattern"
	"github.com/harrison/reminder-lint/internal/remind"
)

const (
	// DefaultConfigFilePath is read when no --config-file-path is given
	DefaultConfigFilePath = "remind.yml"
	// DefaultIgnoreFilePath is the extra ignore file honored in every directory
	DefaultIgnoreFilePath = ".remindignore"
	// DefaultCommentRegex matches "remind:" followed by an optional non-word character
	DefaultCommentRegex = `remind:\W?`
	// DefaultDateFormat is written by `reminder-lint init`
	DefaultDateFormat = "%Y/%m/%d"
	// DefaultLogLevel keeps per-line diagnostics visible without debug noise
	DefaultLogLevel = "warn"
)

// TriggerConfig holds the preferred date-format setting
type TriggerConfig struct {
	// Datetime is the strftime subset used to find and parse reminder dates
	Datetime string `koanf:"datetime" yaml:"datetime,omitempty"`
}

// Config is the read-only configuration record of one run
type Config struct {
	// CommentRegex selects reminder lines; may contain ${name} placeholders
	CommentRegex string `koanf:"comment_regex" yaml:"comment_regex" validate:"required"`

	// Trigger holds the preferred date format
	Trigger TriggerConfig `koanf:"trigger" yaml:"trigger"`

	// DatetimeFormat is the deprecated spelling of Trigger.Datetime
	DatetimeFormat string `koanf:"datetime_format" yaml:"datetime_format,omitempty"`

	// SearchDirectory is the root of the scan
	SearchDirectory string `koanf:"search_directory" yaml:"search_directory" validate:"required"`

	// IgnoreFilePath is the name of the gitignore-syntax file honored in every directory
	IgnoreFilePath string `koanf:"ignore_file_path" yaml:"ignore_file_path" validate:"required"`

	// RemindIfNoDate keeps reminders without a parseable date
	RemindIfNoDate bool `koanf:"remind_if_no_date" yaml:"remind_if_no_date"`

	// SortByDeadline sorts reminders ascending by date
	SortByDeadline bool `koanf:"sort_by_deadline" yaml:"sort_by_deadline"`

	// Validates maps a name to a format every reminder message must match
	Validates map[string]models.ValidateItem `koanf:"validates" yaml:"validates,omitempty" validate:"dive"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `koanf:"log_level" yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`

	// File is the config file that was loaded, empty when none existed
	File string `koanf:"-" yaml:"-"`
}

// structValidator is shared; validator caches struct metadata per instance.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their config key rather than the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultFileConfig returns the configuration written by `reminder-lint init`
func DefaultFileConfig() *Config {
	return &Config{
		CommentRegex:    DefaultCommentRegex,
		Trigger:         TriggerConfig{Datetime: DefaultDateFormat},
		SearchDirectory: ".",
		IgnoreFilePath:  DefaultIgnoreFilePath,
		RemindIfNoDate:  false,
		SortByDeadline:  false,
	}
}

// DateFormat returns the resolved date format, preferring trigger.datetime.
func (c *Config) DateFormat() string {
	if c.Trigger.Datetime != "" {
		return c.Trigger.Datetime
	}
	return c.DatetimeFormat
}

// Deprecations returns one notice per deprecated setting in use.
func (c *Config) Deprecations() []string {
	var notices []string
	if c.DatetimeFormat != "" && c.Trigger.Datetime == "" {
		notices = append(notices, "`datetime_format` is deprecated, use `trigger.datetime` instead")
	}
	return notices
}

// HasPlaceholders reports whether the comment pattern uses ${name} placeholders
func (c *Config) HasPlaceholders() bool {
	return pattern.HasPlaceholders(c.CommentRegex)
}

// Validate checks the merged record as a whole.
// Every failure is a *ConfigError; sentinel causes can be tested with errors.Is.
func (c *Config) Validate() error {
	switch {
	case c.Trigger.Datetime == "" && c.DatetimeFormat == "":
		return &ConfigError{Field: "trigger.datetime", Message: "a date format is required", Err: ErrMissingDateFormat}
	case c.Trigger.Datetime != "" && c.DatetimeFormat != "":
		return &ConfigError{Field: "trigger.datetime", Message: "remove the deprecated datetime_format", Err: ErrAmbiguousDateFormat}
	}

	if err := structValidator.Struct(c); err != nil {
		return fromValidationErrors(err)
	}

	if len(c.Validates) > 0 && c.HasPlaceholders() {
		return &ConfigError{
			Field:   "validates",
			Message: fmt.Sprintf("cannot be combined with placeholders %v in comment_regex", pattern.PlaceholderNames(c.CommentRegex)),
			Err:     ErrMutuallyExclusive,
		}
	}

	if _, err := pattern.CompileMatcher(c.CommentRegex); err != nil {
		return &ConfigError{Field: "comment_regex", Message: "malformed pattern", Err: err}
	}
	if _, err := pattern.CompilePlaceholderRegex(c.CommentRegex); err != nil {
		return &ConfigError{Field: "comment_regex", Message: "malformed placeholders", Err: err}
	}
	if _, err := pattern.CompileDateRegex(c.DateFormat()); err != nil {
		return &ConfigError{Field: "trigger.datetime", Message: "malformed date format", Err: err}
	}
	if err := remind.CheckDateFormat(c.DateFormat()); err != nil {
		return &ConfigError{Field: "trigger.datetime", Message: "unparseable date format", Err: err}
	}
	for name, item := range c.Validates {
		if _, err := pattern.CompileFormatRegex(item.Format); err != nil {
			return &ConfigError{Field: "validates." + name + ".format", Message: "malformed format", Err: err}
		}
	}

	return nil
}

func fromValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ConfigError{Message: "invalid configuration", Err: err}
	}

	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return &ConfigError{Field: field, Message: "is required"}
	case "oneof":
		return &ConfigError{Field: field, Message: fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())}
	default:
		return &ConfigError{Field: field, Message: fmt.Sprintf("failed %q check", fe.Tag())}
	}
}
