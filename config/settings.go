package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the runtime knobs read from the environment. Command line
// flags override them.
type Settings struct {
	CacheDir     string
	Workers      int
	LogLevel     string
	LogFormat    string
	TemplatePath string
}

// Environment variable names
const (
	EnvCacheDir  = "MODEXTRACT_CACHE_DIR"
	EnvWorkers   = "MODEXTRACT_WORKERS"
	EnvLogLevel  = "MODEXTRACT_LOG_LEVEL"
	EnvLogFormat = "MODEXTRACT_LOG_FORMAT"
	EnvTemplate  = "MODEXTRACT_TEMPLATE"
)

// LoadSettings reads settings from the environment after loading a .env
// file from the working directory, if there is one.
func LoadSettings() Settings {
	_ = godotenv.Load()

	return Settings{
		CacheDir:     getEnv(EnvCacheDir, "./.cache/"),
		Workers:      getEnvInt(EnvWorkers, 1),
		LogLevel:     getEnv(EnvLogLevel, "warning"),
		LogFormat:    getEnv(EnvLogFormat, "text"),
		TemplatePath: getEnv(EnvTemplate, ""),
	}
}

// Template returns the configured template, or the default one when no
// template path is set.
func (s Settings) Template() (Template, error) {
	if s.TemplatePath == "" {
		return DefaultTemplate(), nil
	}
	return LoadTemplate(s.TemplatePath)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
