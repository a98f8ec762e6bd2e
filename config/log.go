package config

import "github.com/lone-faerie/uomgrade/log"

// LogConfig is the configuration for logging.
type LogConfig struct {
	// Level is the minimum level logged. The default is WARN.
	Level log.Level `yaml:"level"`
	// Output is one of "stderr" (default), "stdout", "discard" or the path
	// of a file to append to.
	Output string `yaml:"output,omitempty"`
	// Format is either "text" (default) or "json".
	Format string `yaml:"format,omitempty"`
}

var DefaultLog = LogConfig{
	Level: log.LevelWarn,
}
