// Package config handles configuration loading, parsing, and validation
// from command-line flags, environment variables and an optional config file.
// It provides type-safe access to the settings needed to start a study
// session while keeping configuration details separate from the session logic.
package config
