package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Paths of the three datastore documents inside the content repository.
const (
	DataUsersPath    = "data/users.json"
	DataWorkersPath  = "data/workers.json"
	DataBookingsPath = "data/bookings.json"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	LocalTZ           string `mapstructure:"LOCAL_TZ"`

	// GitHub content repository acting as the datastore.
	GitHubOwner  string `mapstructure:"GITHUB_OWNER"`
	GitHubRepo   string `mapstructure:"GITHUB_REPO"`
	GitHubBranch string `mapstructure:"GITHUB_BRANCH"`
	GitHubToken  string `mapstructure:"GITHUB_TOKEN"`
	GitHubAPIURL string `mapstructure:"GITHUB_API_URL"`

	// SMTP settings for booking confirmation mail. Leaving the host or the
	// credentials empty disables the notifier without disabling bookings.
	SMTPHost        string `mapstructure:"SMTP_HOST"`
	SMTPPort        int    `mapstructure:"SMTP_PORT"`
	SMTPUsername    string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword    string `mapstructure:"SMTP_PASSWORD"`
	SMTPSenderName  string `mapstructure:"SMTP_SENDER_NAME"`
	SMTPSenderEmail string `mapstructure:"SMTP_SENDER_EMAIL"`
	SMTPUseTLS      bool   `mapstructure:"SMTP_USE_TLS"`

	// Redis configuration (auth token cache only).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("LOCAL_TZ", "Asia/Kolkata")
	viper.SetDefault("GITHUB_BRANCH", "main")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_SENDER_NAME", "Maid Services")
	viper.SetDefault("SMTP_USE_TLS", true)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// ErrMissingGitHub is returned when the content repository settings are
// incomplete; the app refuses to start without them.
var ErrMissingGitHub = errors.New("GITHUB_OWNER, GITHUB_REPO and GITHUB_TOKEN must be set")

// ValidateDatastore checks the settings without which the app cannot run.
func ValidateDatastore() error {
	if AppConfig.GitHubOwner == "" || AppConfig.GitHubRepo == "" || AppConfig.GitHubToken == "" {
		return ErrMissingGitHub
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
