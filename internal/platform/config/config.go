package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr         string
	DatabaseURL  string
	Redis        RedisConfig
	ResendAPIKey string
	EmailFrom    string
	SiteName     string
	SiteURL      string
}

// RedisConfig captures cache connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CandidateCacheTTL bounds how long a stale candidate collection may serve
// as a fallback when the store is unreachable.
var CandidateCacheTTL = 10 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("LEADERS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Latino Leaders 2026 <hello@discoverlatinoleaders.com>"
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "Latino Leaders 2026"
	}
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://discoverlatinoleaders.com"
	}

	return Server{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Redis:        redisFromEnv(),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    from,
		SiteName:     siteName,
		SiteURL:      siteURL,
	}
}

func redisFromEnv() RedisConfig {
	return RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     intFromEnv("REDIS_POOL_SIZE", 10),
		MinIdleConns: intFromEnv("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func intFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
