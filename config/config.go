package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (resolver cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Remote collaborators.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`

	// Scheduling policy knobs.
	Timezone          string  `mapstructure:"TIMEZONE"`
	BookableWeekdays  string  `mapstructure:"BOOKABLE_WEEKDAYS"` // comma-separated ISO weekdays, 1=Monday
	StartHour         int     `mapstructure:"START_HOUR"`
	EndHour           int     `mapstructure:"END_HOUR"`
	SlotDurationHours float64 `mapstructure:"SLOT_DURATION_HOURS"`
	SearchHorizonDays int     `mapstructure:"SEARCH_HORIZON_DAYS"`
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
	// Empty means: info in production, debug everywhere else.
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "google_key.json")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("BOOKABLE_WEEKDAYS", "1,2,3,4,5")
	viper.SetDefault("START_HOUR", 9)
	viper.SetDefault("END_HOUR", 17)
	viper.SetDefault("SLOT_DURATION_HOURS", 1.0)
	viper.SetDefault("SEARCH_HORIZON_DAYS", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BookableWeekdayInts parses the comma-separated weekday list.
func (c Config) BookableWeekdayInts() ([]int, error) {
	var days []int
	for _, field := range strings.Split(c.BookableWeekdays, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		day, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q: %w", field, err)
		}
		days = append(days, day)
	}
	return days, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
