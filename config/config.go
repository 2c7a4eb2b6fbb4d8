package config

// Config holds the settings of the user store demo.
type Config struct {
	Store StoreConfig `mapstructure:"store" validate:"required"`
	Log   LogConfig   `mapstructure:"log" validate:"required"`
}

// StoreConfig selects the repository backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory sqlite"`
	DSN     string `mapstructure:"dsn" validate:"required_if=Backend sqlite"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
