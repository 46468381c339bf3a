package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"campus_match/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends for profile pictures.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	Auth      AuthConfig
	Uploads   UploadsConfig
	Login     LoginConfig
	Interests []string
}

type AuthConfig struct {
	SigningKey   string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
}

type UploadsConfig struct {
	Backend string // local | s3
	Dir     string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Prefix    string
	S3UseSSL    bool
}

type LoginConfig struct {
	AttemptsPerMinute int
	Burst             int
}

const envPrefix = "CAMPUS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.cookie_name", "session")
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("uploads.backend", StorageLocal)
	v.SetDefault("uploads.dir", "static/uploads")
	v.SetDefault("uploads.s3.prefix", "profile-pics/")
	v.SetDefault("login.attempts_per_minute", 10)
	v.SetDefault("login.burst", 5)
	v.SetDefault("interests.seed", models.DefaultInterests)
}

// Load reads .env (if present), then configs/config.yml from the given
// search paths, then CAMPUS_* environment overrides.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DBPath:   v.GetString("db.path"),
		Auth: AuthConfig{
			SigningKey:   v.GetString("auth.signing_key"),
			TokenTTL:     v.GetDuration("auth.token_ttl"),
			CookieName:   v.GetString("auth.cookie_name"),
			CookieSecure: v.GetBool("auth.cookie_secure"),
		},
		Uploads: UploadsConfig{
			Backend:     strings.ToLower(strings.TrimSpace(v.GetString("uploads.backend"))),
			Dir:         v.GetString("uploads.dir"),
			S3Endpoint:  v.GetString("uploads.s3.endpoint"),
			S3AccessKey: v.GetString("uploads.s3.access_key"),
			S3SecretKey: v.GetString("uploads.s3.secret_key"),
			S3Bucket:    v.GetString("uploads.s3.bucket"),
			S3Prefix:    v.GetString("uploads.s3.prefix"),
			S3UseSSL:    v.GetBool("uploads.s3.use_ssl"),
		},
		Login: LoginConfig{
			AttemptsPerMinute: v.GetInt("login.attempts_per_minute"),
			Burst:             v.GetInt("login.burst"),
		},
		Interests: v.GetStringSlice("interests.seed"),
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	switch c.Uploads.Backend {
	case StorageLocal:
		if c.Uploads.Dir == "" {
			return errors.New("uploads.dir must be set for the local backend")
		}
	case StorageS3:
		if c.Uploads.S3Endpoint == "" || c.Uploads.S3Bucket == "" {
			return errors.New("uploads.s3.endpoint and uploads.s3.bucket must be set for the s3 backend")
		}
	default:
		return fmt.Errorf("unknown uploads.backend %q", c.Uploads.Backend)
	}
	return nil
}
