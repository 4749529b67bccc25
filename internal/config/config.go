package config

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
}

// StorageConfig contains settings for the persisted flashcard collection.
type StorageConfig struct {
	// Path is the JSON file holding the whole collection.
	Path string `mapstructure:"path" validate:"required"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
}
