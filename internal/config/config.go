package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"catalog-sync/internal/sftpclient"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

type CatalogOptions struct {
	BaseURL     string        `env:"CATALOG_BASE_URL" envDefault:"https://dev.api.infigon.app" validate:"required,url"`
	BearerToken string        `env:"CATALOG_BEARER_TOKEN"`
	HTTPTimeout time.Duration `env:"CATALOG_HTTP_TIMEOUT" envDefault:"0s" validate:"gte=0"`
}

type SyncOptions struct {
	Profile      string `env:"SYNC_PROFILE" envDefault:"kc" validate:"required"`
	ProfilesFile string `env:"SYNC_PROFILES_FILE"`
	FailedLog    string `env:"SYNC_FAILED_LOG" envDefault:"failed.txt" validate:"required"`
}

type SFTPOptions struct {
	Host                  string `env:"SFTP_HOST"`
	Port                  int    `env:"SFTP_PORT" envDefault:"22" validate:"gte=0,lte=65535"`
	User                  string `env:"SFTP_USER"`
	Pass                  string `env:"SFTP_PASS"`
	Dir                   string `env:"SFTP_DIR" envDefault:"/inbound"`
	InsecureIgnoreHostKey bool   `env:"SFTP_INSECURE_IGNORE_HOSTKEY" envDefault:"true"`
	KnownHosts            string `env:"SFTP_KNOWN_HOSTS"`
}

type Config struct {
	Catalog  CatalogOptions
	Sync     SyncOptions
	SFTP     SFTPOptions
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// LoadEnv loads the env files that exist and returns how many were read.
func LoadEnv(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads the env files, parses the environment and validates the result.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	if _, err := LoadEnv(files); err != nil {
		return Config{}, fmt.Errorf("config: load env files: %w", err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SFTPConfig maps the SFTP settings onto the uploader config.
func (c Config) SFTPConfig() sftpclient.Config {
	return sftpclient.Config{
		Host:                  c.SFTP.Host,
		Port:                  c.SFTP.Port,
		User:                  c.SFTP.User,
		Pass:                  c.SFTP.Pass,
		RemoteDir:             c.SFTP.Dir,
		InsecureIgnoreHostKey: c.SFTP.InsecureIgnoreHostKey,
		KnownHostsPath:        c.SFTP.KnownHosts,
	}
}
