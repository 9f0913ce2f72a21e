package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level       zapcore.Level
		Development bool
	}
	// StaticDir and TemplatesDir are absolute paths, or empty to use the
	// assets embedded in the binary.
	StaticDir       string
	TemplatesDir    string
	SessionLifetime time.Duration
	HistoryBuffer   int
	InsecureCookies bool
}

// Load reads config from an optional .env file, the environment (CRYPTOLAB_
// prefix) and an optional cryptolab.yaml.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("CRYPTOLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("cryptolab")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "file:cryptolab.db?_pragma=busy_timeout(5000)")
	v.SetDefault("session.lifetime", "24h")
	v.SetDefault("static.dir", "")
	v.SetDefault("templates.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("history.buffer", 256)
	v.SetDefault("insecure_cookies", false)
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Development = v.GetBool("log.development")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("invalid CRYPTOLAB_DB_DRIVER %q: must be sqlite3, mysql, or postgres", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("CRYPTOLAB_DB_DSN is required")
	}

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRYPTOLAB_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	level, err := zapcore.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRYPTOLAB_LOG_LEVEL: %w", err)
	}
	cfg.Log.Level = level

	cfg.HistoryBuffer = v.GetInt("history.buffer")
	if cfg.HistoryBuffer < 1 {
		return nil, fmt.Errorf("invalid CRYPTOLAB_HISTORY_BUFFER %d: must be at least 1", cfg.HistoryBuffer)
	}

	if cfg.StaticDir, err = absDir(v.GetString("static.dir")); err != nil {
		return nil, fmt.Errorf("invalid CRYPTOLAB_STATIC_DIR: %w", err)
	}
	if cfg.TemplatesDir, err = absDir(v.GetString("templates.dir")); err != nil {
		return nil, fmt.Errorf("invalid CRYPTOLAB_TEMPLATES_DIR: %w", err)
	}

	return cfg, nil
}

func absDir(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	return filepath.Abs(dir)
}
