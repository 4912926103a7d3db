package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the process-level configuration. Run-scoped pipeline settings
// live in the settings sheet instead and are read fresh per pass.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	PostgresConn       string        `mapstructure:"POSTGRES_CONN"`
	MigrationUrl       string        `mapstructure:"MIGRATION_URL"`
	SyncInterval       time.Duration `mapstructure:"SYNC_INTERVAL"`
	PollInterval       time.Duration `mapstructure:"POLL_INTERVAL"`
	CalendarBaseUrl    string        `mapstructure:"CALENDAR_BASE_URL"`
	StorageBaseUrl     string        `mapstructure:"STORAGE_BASE_URL"`
	NotifierWebhookUrl string        `mapstructure:"NOTIFIER_WEBHOOK_URL"`
	ListingBaseUrl     string        `mapstructure:"LISTING_BASE_URL"`
	AllowedEmailDomain string        `mapstructure:"ALLOWED_EMAIL_DOMAIN"`
}

// LoadConfig reads app.env from the given path, letting real environment
// variables override file values.
func LoadConfig(path string) (cfg Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("MIGRATION_URL", "file://migrations")
	viper.SetDefault("SYNC_INTERVAL", "15m")
	viper.SetDefault("POLL_INTERVAL", "4h")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&cfg)

	return
}
