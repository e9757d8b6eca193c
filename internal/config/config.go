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
	Server     ServerConfig
	DB         DBConfig
	JWT        JWTConfig
	S3         S3Config
	Log        LogConfig
	CORS       CORSConfig
	Queue      QueueConfig
	Email      EmailConfig
	Decompiler DecompilerConfig
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

// S3Config holds AWS S3 settings for attachment storage.
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

// QueueConfig holds decompile queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// DecompilerConfig holds the tunable thresholds of the report-text
// decompiler. They are deliberately configurable rather than baked
// into the algorithm.
type DecompilerConfig struct {
	AllCapsMinLen     int `mapstructure:"all_caps_min_len"`
	ParagraphMinLen   int `mapstructure:"paragraph_min_len"`
	MetadataScanLines int `mapstructure:"metadata_scan_lines"`
	ContextWindow     int `mapstructure:"context_window"`
	MaxKeywords       int `mapstructure:"max_keywords"`
}

// Load reads configuration from environment variables with the ARBOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ARBOS")
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
	v.SetDefault("db.user", "arbos")
	v.SetDefault("db.password", "arbos_secret")
	v.SetDefault("db.name", "arbos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "arbos")

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-2")
	v.SetDefault("s3.bucket", "arbos-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.concurrency", 4)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-2")
	v.SetDefault("email.from_address", "noreply@arbos.app")
	v.SetDefault("email.from_name", "Arbos")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Decompiler heuristic thresholds
	v.SetDefault("decompiler.all_caps_min_len", 10)
	v.SetDefault("decompiler.paragraph_min_len", 20)
	v.SetDefault("decompiler.metadata_scan_lines", 20)
	v.SetDefault("decompiler.context_window", 50)
	v.SetDefault("decompiler.max_keywords", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "ARBOS_SERVER_PORT",
		"server.read_timeout":            "ARBOS_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "ARBOS_SERVER_WRITE_TIMEOUT",
		"server.environment":             "ARBOS_SERVER_ENVIRONMENT",
		"db.host":                        "ARBOS_DB_HOST",
		"db.port":                        "ARBOS_DB_PORT",
		"db.user":                        "ARBOS_DB_USER",
		"db.password":                    "ARBOS_DB_PASSWORD",
		"db.name":                        "ARBOS_DB_NAME",
		"db.sslmode":                     "ARBOS_DB_SSLMODE",
		"db.max_open":                    "ARBOS_DB_MAX_OPEN",
		"db.max_idle":                    "ARBOS_DB_MAX_IDLE",
		"jwt.secret":                     "ARBOS_JWT_SECRET",
		"jwt.access_expiry":              "ARBOS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":             "ARBOS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                     "ARBOS_JWT_ISSUER",
		"s3.region":                      "ARBOS_S3_REGION",
		"s3.bucket":                      "ARBOS_S3_BUCKET",
		"s3.endpoint":                    "ARBOS_S3_ENDPOINT",
		"s3.access_key":                  "ARBOS_S3_ACCESS_KEY",
		"s3.secret_key":                  "ARBOS_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "ARBOS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":              "ARBOS_S3_PRESIGN_EXPIRY",
		"log.level":                      "ARBOS_LOG_LEVEL",
		"log.format":                     "ARBOS_LOG_FORMAT",
		"cors.allowed_origins":           "ARBOS_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs":       "ARBOS_QUEUE_POLL_INTERVAL_SECS",
		"queue.concurrency":              "ARBOS_QUEUE_CONCURRENCY",
		"email.provider":                 "ARBOS_EMAIL_PROVIDER",
		"email.region":                   "ARBOS_EMAIL_REGION",
		"email.from_address":             "ARBOS_EMAIL_FROM_ADDRESS",
		"email.from_name":                "ARBOS_EMAIL_FROM_NAME",
		"email.frontend_url":             "ARBOS_EMAIL_FRONTEND_URL",
		"decompiler.all_caps_min_len":    "ARBOS_DECOMPILER_ALL_CAPS_MIN_LEN",
		"decompiler.paragraph_min_len":   "ARBOS_DECOMPILER_PARAGRAPH_MIN_LEN",
		"decompiler.metadata_scan_lines": "ARBOS_DECOMPILER_METADATA_SCAN_LINES",
		"decompiler.context_window":      "ARBOS_DECOMPILER_CONTEXT_WINDOW",
		"decompiler.max_keywords":        "ARBOS_DECOMPILER_MAX_KEYWORDS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ARBOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ARBOS_SERVER_PORT") == "" {
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

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	cfg.Decompiler = DecompilerConfig{
		AllCapsMinLen:     v.GetInt("decompiler.all_caps_min_len"),
		ParagraphMinLen:   v.GetInt("decompiler.paragraph_min_len"),
		MetadataScanLines: v.GetInt("decompiler.metadata_scan_lines"),
		ContextWindow:     v.GetInt("decompiler.context_window"),
		MaxKeywords:       v.GetInt("decompiler.max_keywords"),
	}

	return cfg, nil
}
