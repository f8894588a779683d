package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

// Defaults is the lowest configuration layer. It deliberately has no date
// format: one must come from the config file, the environment or a flag.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"comment_regex":     DefaultCommentRegex,
		"search_directory":  ".",
		"ignore_file_path":  DefaultIgnoreFilePath,
		"remind_if_no_date": false,
		"sort_by_deadline":  false,
		"validates":         map[string]interface{}{},
		"log_level":         DefaultLogLevel,
	}
}

// NewDefaultProvider returns the defaults as a koanf provider
func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(Defaults(), ".")
}
