package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port   string `mapstructure:"PORT"`
	AppEnv string `mapstructure:"APP_ENV"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	RedisAddr  string `mapstructure:"REDIS_ADDR"`

	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	CookieSecure  bool          `mapstructure:"COOKIE_SECURE"`

	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
	FrontendURL        string `mapstructure:"FRONTEND_URL"`
	AllowedOrigins     string `mapstructure:"ALLOWED_ORIGINS"`

	ProfileBucket string `mapstructure:"GCS_PROFILE_BUCKET"`
	ResumeBucket  string `mapstructure:"GCS_RESUME_BUCKET"`
	CourseBucket  string `mapstructure:"GCS_COURSE_BUCKET"`
	PublicBaseURL string `mapstructure:"GCS_PUBLIC_BASE_URL"`

	OtelEnabled  bool   `mapstructure:"OTEL_ENABLED"`
	OtelEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// ErrMissingJWTSecret is returned when no signing key is configured. Tokens
// signed with an empty HMAC key can be forged by anyone.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

var envKeys = []string{
	"PORT", "APP_ENV",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "REDIS_ADDR",
	"JWT_SECRET", "SESSION_SECRET", "TOKEN_TTL", "SESSION_TTL", "COOKIE_SECURE",
	"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URI", "FRONTEND_URL", "ALLOWED_ORIGINS",
	"GCS_PROFILE_BUCKET", "GCS_RESUME_BUCKET", "GCS_COURSE_BUCKET", "GCS_PUBLIC_BASE_URL",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	// Bind explicitly so keys are visible without app.env
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	v.SetDefault("PORT", ":5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("TOKEN_TTL", time.Hour)
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("FRONTEND_URL", "https://www.gisul.co")
	v.SetDefault("ALLOWED_ORIGINS", "https://gisul.co.in,https://www.gisul.co.in")
	v.SetDefault("GCS_PROFILE_BUCKET", "profile-pictures")
	v.SetDefault("GCS_COURSE_BUCKET", "course-images")

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// no app.env, env vars only
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}
	config.JWTSecret = strings.TrimSpace(config.JWTSecret)
	if config.JWTSecret == "" {
		err = ErrMissingJWTSecret
		return
	}
	if strings.TrimSpace(config.SessionSecret) == "" {
		config.SessionSecret = config.JWTSecret
	}
	return
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
