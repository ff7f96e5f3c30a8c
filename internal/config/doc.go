// Package config loads application configuration from environment variables
// and an optional YAML file, and resolves the default input/output paths.
package config
