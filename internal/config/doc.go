// Package config loads the application settings (storage path, log level and
// format) from defaults, an optional YAML file and SCRY_* environment
// variables, then validates them.
package config
