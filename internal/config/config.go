package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContentDir   string // directory holding the collection JSON files and markdown bodies
	ManifestFile string // manifest name inside ContentDir (collection -> file mapping)
	SitemapFile  string // path to the sitemap.yaml tree (optional, empty = sitemap disabled)
	AssetsDir    string // static asset bundle served at / (optional, empty = API only)

	ReloadInterval time.Duration // interval to reload content files (default: 24h)
	WatchContent   bool          // watch ContentDir and reload on change
	ViewGCInterval time.Duration // interval to prune orphaned view counters (default: 24h)
	FeaturedTTL    time.Duration // TTL for cached featured-image resolutions (default: 24h)

	SearchBurst        int // rate-limit burst for /api/search
	SearchRefillPerMin int // rate-limit refill per IP per minute for /api/search

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MUSEUM_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MUSEUM_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MUSEUM_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MUSEUM_PRETTY_LOG", true),

		// Content
		ContentDir:   requireEnv("MUSEUM_CONTENT_DIR"),
		ManifestFile: getenv("MUSEUM_MANIFEST_FILE", "museum.yaml"),
		SitemapFile:  getenv("MUSEUM_SITEMAP_FILE", ""), // Optional, empty = sitemap disabled
		AssetsDir:    getenv("MUSEUM_ASSETS_DIR", ""),

		ReloadInterval: mustDuration("MUSEUM_RELOAD_CONTENT_INTERVAL", 24*time.Hour),
		WatchContent:   mustBool("MUSEUM_WATCH_CONTENT", false),
		ViewGCInterval: mustDuration("MUSEUM_VIEW_GC_INTERVAL", 24*time.Hour),
		FeaturedTTL:    mustDuration("MUSEUM_FEATURED_TTL", 24*time.Hour),

		SearchBurst:        getenvInt("MUSEUM_SEARCH_BURST", 20),
		SearchRefillPerMin: getenvInt("MUSEUM_SEARCH_REFILL_PER_MIN", 60),

		// Redis settings
		RedisAddr:             requireEnv("MUSEUM_REDIS_ADDR"),
		RedisUser:             getenv("MUSEUM_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("MUSEUM_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("MUSEUM_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("MUSEUM_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("MUSEUM_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("MUSEUM_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("MUSEUM_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: MUSEUM_REDIS_PASSWORD is required when MUSEUM_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
