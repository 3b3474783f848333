package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Booking  BookingConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// SessionConfig controls the scs session manager and its backing store.
// Store is either "postgres" or "redis".
type SessionConfig struct {
	Store        string
	CookieName   string
	CookieSecure bool
	IdleTimeout  time.Duration
	Lifetime     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional, an empty broker list disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type AuthConfig struct {
	BcryptCost int
	// LegacyLoginStatus answers a wrong password with 200 instead of 401.
	LegacyLoginStatus bool
}

type BookingConfig struct {
	RequireAuth bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "flight-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_STORE", "postgres")
	viper.SetDefault("SESSION_COOKIE_NAME", "flight_session")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	viper.SetDefault("SESSION_LIFETIME", "24h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "flight-booking-events")
	viper.SetDefault("BCRYPT_COST", DefaultBcryptCost)
	viper.SetDefault("AUTH_LEGACY_LOGIN_STATUS", false)
	viper.SetDefault("BOOKING_REQUIRE_AUTH", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	// .env is optional, plain environment variables are enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			Store:        strings.ToLower(viper.GetString("SESSION_STORE")),
			CookieName:   viper.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: viper.GetBool("SESSION_COOKIE_SECURE"),
			IdleTimeout:  viper.GetDuration("SESSION_IDLE_TIMEOUT"),
			Lifetime:     viper.GetDuration("SESSION_LIFETIME"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Brokers: SplitList(viper.GetString("KAFKA_BROKERS")),
			Topic:   viper.GetString("KAFKA_TOPIC"),
		},
		Auth: AuthConfig{
			BcryptCost:        viper.GetInt("BCRYPT_COST"),
			LegacyLoginStatus: viper.GetBool("AUTH_LEGACY_LOGIN_STATUS"),
		},
		Booking: BookingConfig{
			RequireAuth: viper.GetBool("BOOKING_REQUIRE_AUTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: SplitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}
