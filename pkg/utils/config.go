package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAllowedOrigins is used when ALLOWED_ORIGINS is not set.
var DefaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://localhost:1234",
	"https://movies.com",
	"https://midu.dev",
}

type Config struct {
	App  AppConfig
	Log  LogConfig
	CORS CORSConfig
	Seed SeedConfig
}

type AppConfig struct {
	Name  string
	Port  string
	Debug bool
}

// LogConfig selects the logger sinks. An empty Path disables the file sink.
type LogConfig struct {
	Path       string
	Console    bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SeedConfig struct {
	// Path to a movies JSON file. Empty means the embedded seed.
	Path string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom is LoadConfig with an explicit env file path.
func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movies-api")
	v.SetDefault("PORT", "1234")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_CONSOLE", true)
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("LOG_COMPRESS", true)
	v.SetDefault("ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))
	v.SetDefault("SEED_PATH", "")

	if err := v.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Port:  v.GetString("PORT"),
			Debug: v.GetBool("DEBUG"),
		},
		Log: LogConfig{
			Path:       v.GetString("LOG_PATH"),
			Console:    v.GetBool("LOG_CONSOLE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
			Compress:   v.GetBool("LOG_COMPRESS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		Seed: SeedConfig{
			Path: v.GetString("SEED_PATH"),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
