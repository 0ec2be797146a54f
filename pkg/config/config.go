package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the process environment after an optional .env file.
type Config struct {
	envFile string
}

// New loads envFile once per process. A missing file is not an error.
func New(envFile string) *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the environment without overriding variables already set.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return &Config{envFile: envFile}, nil
}

func (c *Config) EnvFile() string {
	return c.envFile
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt64(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// GetDuration accepts time.ParseDuration syntax ("90s", "1h").
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
