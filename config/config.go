package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort int    `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENV"`

	DatabaseDbPath       string `mapstructure:"DATABASE_DB_PATH"`
	DatabaseCacheAddress string `mapstructure:"DATABASE_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DATABASE_CACHE_PORT"`

	SessionTTLHours int `mapstructure:"SESSION_TTL_HOURS"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`

	ReminderIntervalMinutes int `mapstructure:"REMINDER_INTERVAL_MINUTES"`
	ReminderWindowHours     int `mapstructure:"REMINDER_WINDOW_HOURS"`

	StrictTransitions bool `mapstructure:"STRICT_TRANSITIONS"`
}

func InitConfig() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8283)
	v.SetDefault("ENV", "development")
	v.SetDefault("DATABASE_DB_PATH", "data/hrm.db")
	v.SetDefault("DATABASE_CACHE_ADDRESS", "localhost")
	v.SetDefault("DATABASE_CACHE_PORT", 6379)
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "no-reply@riseandshine.example")
	v.SetDefault("REMINDER_INTERVAL_MINUTES", 15)
	v.SetDefault("REMINDER_WINDOW_HOURS", 24)
	v.SetDefault("STRICT_TRANSITIONS", false)

	// Optional local overrides, env vars win either way.
	v.SetConfigName("hrm")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c Config) ReminderInterval() uint64 {
	return uint64(c.ReminderIntervalMinutes)
}

func (c Config) ReminderWindow() time.Duration {
	return time.Duration(c.ReminderWindowHours) * time.Hour
}
