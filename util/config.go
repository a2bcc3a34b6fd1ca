package util

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

var ErrPortNotConfigured = errors.New("APP_PORT is not defined in config")

// Config is read once at startup and never changed afterwards.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AppPort              string        `mapstructure:"APP_PORT"`
	AppWebhookPath       string        `mapstructure:"APP_WEBHOOK_PATH" validate:"required,startswith=/"`
	AppURL               string        `mapstructure:"APP_URL" validate:"omitempty,url"`
	AppDebug             bool          `mapstructure:"APP_DEBUG"`
	AppMaxBodyBytes      int64         `mapstructure:"APP_MAX_BODY_BYTES" validate:"gt=0"`
	LineChannelSecret    string        `mapstructure:"LINE_CHANNEL_SECRET" validate:"required"`
	VersionCheckURL      string        `mapstructure:"VERSION_CHECK_URL" validate:"omitempty,url"`
	VersionCheckTimeout  time.Duration `mapstructure:"VERSION_CHECK_TIMEOUT" validate:"gt=0"`
	StorageDriver        string        `mapstructure:"STORAGE_DRIVER" validate:"oneof=memory redis postgres"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS" validate:"required_if=StorageDriver redis"`
	DBSource             string        `mapstructure:"DB_SOURCE" validate:"required_if=StorageDriver postgres"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL" validate:"required_if=StorageDriver postgres"`
	BotMaxPromptMessages int           `mapstructure:"BOT_MAX_PROMPT_MESSAGES" validate:"gt=0"`
}

// LoadConfig reads app.env from path, lets environment variables override it
// and fills in defaults for everything optional.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("APP_PORT", "")
	v.SetDefault("APP_WEBHOOK_PATH", "/webhook")
	v.SetDefault("APP_URL", "")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_MAX_BODY_BYTES", 1<<20)
	v.SetDefault("LINE_CHANNEL_SECRET", "")
	v.SetDefault("VERSION_CHECK_URL", "https://raw.githubusercontent.com/memochou1993/gpt-ai-assistant/main/package.json")
	v.SetDefault("VERSION_CHECK_TIMEOUT", 5*time.Second)
	v.SetDefault("STORAGE_DRIVER", StorageDriverMemory)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("MIGRATION_URL", "file://db/migration")
	v.SetDefault("BOT_MAX_PROMPT_MESSAGES", 16)

	// a missing app.env is fine, the environment alone can configure the bot
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()

	// report env variable names instead of struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})

	return v
}

// Validate checks that the config can run the bot. A missing port is reported
// on its own so the caller can fail loudly instead of idling.
func (config Config) Validate() error {
	if strings.TrimSpace(config.AppPort) == "" {
		return ErrPortNotConfigured
	}

	if err := configValidator.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// HTTPServerAddress returns the address the HTTP server listens on.
func (config Config) HTTPServerAddress() string {
	return net.JoinHostPort("", strings.TrimSpace(config.AppPort))
}

// MarshalZerologObject lets the config be logged at startup without the channel secret.
func (config Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("environment", config.Environment).
		Str("port", config.AppPort).
		Str("webhook_path", config.AppWebhookPath).
		Str("app_url", config.AppURL).
		Bool("debug", config.AppDebug).
		Str("storage_driver", config.StorageDriver).
		Dur("version_check_timeout", config.VersionCheckTimeout)
}
