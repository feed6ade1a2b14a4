package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultDataDir       = "./data"
	defaultUploadsDir    = "./uploads"
	defaultPublicBaseURL = "http://localhost:8080"
	defaultOrgID         = "barrigudo"
	defaultZipAPIBaseURL = "https://api.zippopotam.us"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultSessionTTL    = "45m"
)

// Config is the full runtime configuration. DatabaseURL empty means the
// service runs on the JSON-file fallback stores instead of a hosted database.
type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	DataDir       string
	UploadsDir    string
	PublicBaseURL string
	OrgID         string
	JWTSecret     string
	ZipAPIBaseURL string
	CORSOrigins   []string
	SessionTTL    time.Duration
}

func Load() (*Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}

	cfg := &Config{
		AppEnv:        strings.ToLower(appEnv),
		Addr:          getEnv("ADDR", defaultAddr),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DataDir:       getEnv("DATA_DIR", defaultDataDir),
		UploadsDir:    getEnv("UPLOADS_DIR", defaultUploadsDir),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/"),
		OrgID:         getEnv("ORG_ID", defaultOrgID),
		JWTSecret:     strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		ZipAPIBaseURL: strings.TrimRight(getEnv("ZIP_API_BASE_URL", defaultZipAPIBaseURL), "/"),
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	ttl, err := parseDurationEnv("QUOTE_SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = ttl

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HostedBackend reports whether a hosted database is configured. When false
// all stores fall back to on-disk JSON blobs under DataDir.
func (c *Config) HostedBackend() bool {
	return c.DatabaseURL != ""
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("QUOTE_SESSION_TTL must be > 0")
	}
	if cfg.OrgID == "" {
		return fmt.Errorf("ORG_ID must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
