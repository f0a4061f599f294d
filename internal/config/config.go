package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
)

const (
	DriverGoogle = "google"
	DriverMemory = "memory"
)

type Config struct {
	ServerPort    string
	SpreadsheetID string

	// Cloud secret path is checked before the local one.
	CredentialsCloudPath string
	CredentialsLocalPath string

	StoreDriver string
	StaticDir   string

	RedisURL    string
	LockTTL     time.Duration
	DatabaseURL string

	LogLevel       string
	ClinicTimezone string
}

// Credentials is the service account used against the spreadsheet.
type Credentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	// Path the credentials were read from.
	Source string `json:"-"`
}

func Load() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("PORT", "3000"),
		SpreadsheetID:        getEnv("SPREADSHEET_ID", "15TvWPyk3UOnk37XK1pIHjLaxA7zE9LYuDuFyibcCNCg"),
		CredentialsCloudPath: getEnv("CREDENTIALS_CLOUD_PATH", "/etc/secrets/credenciais.json"),
		CredentialsLocalPath: getEnv("CREDENTIALS_LOCAL_PATH", "./credenciais.json"),
		StoreDriver:          getEnv("STORE_DRIVER", DriverGoogle),
		StaticDir:            getEnv("STATIC_DIR", "."),
		RedisURL:             getEnv("REDIS_URL", ""),
		LockTTL:              getDuration("LOCK_TTL", 10*time.Second),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		ClinicTimezone:       getEnv("CLINIC_TIMEZONE", "America/Sao_Paulo"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// LoadCredentials reads the service account from the cloud secret path,
// falling back to the local path. Absence of both is ErrCredentialsMissing.
func (c *Config) LoadCredentials() (*Credentials, error) {
	for _, path := range []string{c.CredentialsCloudPath, c.CredentialsLocalPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials %s: %w", path, err)
		}

		var creds Credentials
		if err := json.Unmarshal(raw, &creds); err != nil {
			return nil, fmt.Errorf("parse credentials %s: %w", path, err)
		}
		if creds.ClientEmail == "" || creds.PrivateKey == "" {
			return nil, fmt.Errorf("credentials %s: client_email and private_key are required", path)
		}

		creds.Source = path
		return &creds, nil
	}

	return nil, httperr.ErrCredentialsMissing
}
