package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
}

// SessionConfig controls which deck files a session reads and writes
// without being asked.
type SessionConfig struct {
	// ImportFrom is loaded once before the first prompt when set.
	ImportFrom string `mapstructure:"import_from"`
	// ExportTo receives the whole deck when the session exits, when set.
	ExportTo string `mapstructure:"export_to"`
}

// LogConfig contains structured logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// QuizConfig contains settings for the quiz.
type QuizConfig struct {
	// Seed makes card selection reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
}
