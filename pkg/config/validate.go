package config

import "fmt"

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks configuration correctness. It MUST NOT mutate the
// configuration.
func Validate(cfg *Config) error {
	if !logLevels[cfg.LogLevel] {
		return fmt.Errorf("log_level %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.MaxHistory < 1 {
		return fmt.Errorf("max_history %d: must be at least 1", cfg.MaxHistory)
	}
	return nil
}
