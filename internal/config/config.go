package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// ───────── admin auth ─────────
	AdminPassword     string        `mapstructure:"admin_password"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	SessionBackend    string        `mapstructure:"session_backend"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	JWTSecret         string        `mapstructure:"jwt_secret"`

	// ───────── menu store ─────────
	StoreDriver string `mapstructure:"store_driver"`
	DatabaseURL string `mapstructure:"database_url"`
	SQLitePath  string `mapstructure:"sqlite_path"`

	// ───────── ordering ─────────
	WhatsAppPhone  string `mapstructure:"whatsapp_phone"`
	RestaurantName string `mapstructure:"restaurant_name"`
	Timezone       string `mapstructure:"timezone"`
	SidePolicy     string `mapstructure:"side_policy"`

	CORSOrigins string `mapstructure:"cors_origins"`
	APIURL      string `mapstructure:"api_url"`

	// ───────── menu snapshots (optional) ─────────
	R2Endpoint      string `mapstructure:"r2_endpoint"`
	R2AccessKey     string `mapstructure:"r2_access_key"`
	R2SecretKey     string `mapstructure:"r2_secret_key"`
	R2Bucket        string `mapstructure:"r2_bucket_name"`
	R2PublicBaseURL string `mapstructure:"r2_public_base_url"`
}

var defaults = map[string]any{
	"app_env":             "development",
	"port":                "8080",
	"log_level":           "",
	"admin_password":      "",
	"admin_password_hash": "",
	"session_backend":     "memory",
	"session_ttl":         "0s",
	"jwt_secret":          "",
	"store_driver":        "memory",
	"database_url":        "",
	"sqlite_path":         "cucharon.db",
	"whatsapp_phone":      "18097898010",
	"restaurant_name":     "El Cucharon JR",
	"timezone":            "America/Santo_Domingo",
	"side_policy":         "all",
	"cors_origins":        "http://localhost:3000,http://localhost:5173",
	"api_url":             "http://localhost:8080",
	"r2_endpoint":         "",
	"r2_access_key":       "",
	"r2_secret_key":       "",
	"r2_bucket_name":      "",
	"r2_public_base_url":  "",
}

// Load reads .env outside production, then the environment.
func Load() (*Config, error) {
	v := viper.New()
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	if !strings.EqualFold(lookupEnv(v, "app_env"), "production") {
		_ = godotenv.Load()
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	return &cfg, nil
}

func lookupEnv(v *viper.Viper, key string) string {
	_ = v.BindEnv(key)
	return v.GetString(key)
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	switch c.SessionBackend {
	case "memory":
	case "jwt":
		if c.JWTSecret == "" {
			return errors.New("SESSION_BACKEND=jwt requires JWT_SECRET")
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}

	if c.SessionTTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}

	switch c.StoreDriver {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("STORE_DRIVER=postgres requires DATABASE_URL")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("STORE_DRIVER=sqlite requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	if c.R2Enabled() && (c.R2Endpoint == "" || c.R2AccessKey == "" || c.R2SecretKey == "") {
		return errors.New("R2_BUCKET_NAME requires R2_ENDPOINT, R2_ACCESS_KEY and R2_SECRET_KEY")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// R2Enabled reports whether menu snapshots should be uploaded.
func (c *Config) R2Enabled() bool {
	return c.R2Bucket != ""
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
