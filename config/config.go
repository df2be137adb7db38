package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisNotifyDB    int    `mapstructure:"REDIS_NOTIFY_DB"`
	SlotCacheSeconds int    `mapstructure:"SLOT_CACHE_SECONDS"`

	// Scheduling policy. The same-day/next-day lead hours encode the
	// clinic's advance-notice rules and are tunable per deployment.
	SlotDurationMinutes     int `mapstructure:"SLOT_DURATION_MINUTES"`
	SameDayLeadHours        int `mapstructure:"SAME_DAY_LEAD_HOURS"`
	NextDayMorningLeadHours int `mapstructure:"NEXT_DAY_MORNING_LEAD_HOURS"`
	SuggestionMaxDaysAhead  int `mapstructure:"SUGGESTION_MAX_DAYS_AHEAD"`
	SuggestionMaxResults    int `mapstructure:"SUGGESTION_MAX_RESULTS"`

	// Storage timeouts, in seconds.
	BatchCheckTimeout  int `mapstructure:"BATCH_CHECK_TIMEOUT"`
	SingleCheckTimeout int `mapstructure:"SINGLE_CHECK_TIMEOUT"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_NOTIFY_DB", 1)
	viper.SetDefault("SLOT_CACHE_SECONDS", 30)
	viper.SetDefault("SLOT_DURATION_MINUTES", 30)
	viper.SetDefault("SAME_DAY_LEAD_HOURS", 12)
	viper.SetDefault("NEXT_DAY_MORNING_LEAD_HOURS", 24)
	viper.SetDefault("SUGGESTION_MAX_DAYS_AHEAD", 7)
	viper.SetDefault("SUGGESTION_MAX_RESULTS", 3)
	viper.SetDefault("BATCH_CHECK_TIMEOUT", 5)
	viper.SetDefault("SINGLE_CHECK_TIMEOUT", 2)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
