package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Digest DigestConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for media attachments.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// DigestConfig holds submission digest worker settings.
type DigestConfig struct {
	Enabled          bool `mapstructure:"enabled"`
	PollIntervalSecs int  `mapstructure:"poll_interval_secs"`
	BatchSize        int  `mapstructure:"batch_size"`
	Concurrency      int  `mapstructure:"concurrency"`
}

// Load reads configuration from environment variables with the SENTRYDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SENTRYDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sentrydesk")
	v.SetDefault("db.password", "sentrydesk_secret")
	v.SetDefault("db.name", "sentrydesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "sentrydesk")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "sentrydesk-media")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@sentrydesk.io")
	v.SetDefault("email.from_name", "SentryDesk")

	// Digest defaults
	v.SetDefault("digest.enabled", true)
	v.SetDefault("digest.poll_interval_secs", 60)
	v.SetDefault("digest.batch_size", 20)
	v.SetDefault("digest.concurrency", 4)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "SENTRYDESK_SERVER_PORT",
		"server.read_timeout":       "SENTRYDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "SENTRYDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":        "SENTRYDESK_SERVER_ENVIRONMENT",
		"db.host":                   "SENTRYDESK_DB_HOST",
		"db.port":                   "SENTRYDESK_DB_PORT",
		"db.user":                   "SENTRYDESK_DB_USER",
		"db.password":               "SENTRYDESK_DB_PASSWORD",
		"db.name":                   "SENTRYDESK_DB_NAME",
		"db.sslmode":                "SENTRYDESK_DB_SSLMODE",
		"db.max_open":               "SENTRYDESK_DB_MAX_OPEN",
		"db.max_idle":               "SENTRYDESK_DB_MAX_IDLE",
		"jwt.secret":                "SENTRYDESK_JWT_SECRET",
		"jwt.access_expiry":         "SENTRYDESK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":        "SENTRYDESK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                "SENTRYDESK_JWT_ISSUER",
		"s3.region":                 "SENTRYDESK_S3_REGION",
		"s3.bucket":                 "SENTRYDESK_S3_BUCKET",
		"s3.endpoint":               "SENTRYDESK_S3_ENDPOINT",
		"s3.access_key":             "SENTRYDESK_S3_ACCESS_KEY",
		"s3.secret_key":             "SENTRYDESK_S3_SECRET_KEY",
		"s3.max_file_size_mb":       "SENTRYDESK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":         "SENTRYDESK_S3_PRESIGN_EXPIRY",
		"log.level":                 "SENTRYDESK_LOG_LEVEL",
		"log.format":                "SENTRYDESK_LOG_FORMAT",
		"cors.allowed_origins":      "SENTRYDESK_CORS_ALLOWED_ORIGINS",
		"email.provider":            "SENTRYDESK_EMAIL_PROVIDER",
		"email.region":              "SENTRYDESK_EMAIL_REGION",
		"email.from_address":        "SENTRYDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":           "SENTRYDESK_EMAIL_FROM_NAME",
		"digest.enabled":            "SENTRYDESK_DIGEST_ENABLED",
		"digest.poll_interval_secs": "SENTRYDESK_DIGEST_POLL_INTERVAL_SECS",
		"digest.batch_size":         "SENTRYDESK_DIGEST_BATCH_SIZE",
		"digest.concurrency":        "SENTRYDESK_DIGEST_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SENTRYDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SENTRYDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Digest = DigestConfig{
		Enabled:          v.GetBool("digest.enabled"),
		PollIntervalSecs: v.GetInt("digest.poll_interval_secs"),
		BatchSize:        v.GetInt("digest.batch_size"),
		Concurrency:      v.GetInt("digest.concurrency"),
	}

	return cfg, nil
}
