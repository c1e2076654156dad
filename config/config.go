package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default remote sources. All of them can be overridden from the environment.
const (
	DefaultShowroomBaseURL   = "https://www.showroom-live.com"
	DefaultRoomListURL       = "https://mksoul-pro.com/showroom/file/room_list.csv"
	DefaultEventLiverListURL = "https://mksoul-pro.com/showroom/file/event_liver_list.csv"
	DefaultOrganizerListURL  = "https://mksoul-pro.com/showroom/file/organizer_list.csv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// DBUrl enables the lookup log when set.
	DBUrl string

	// RedisAddr selects the Redis table cache; empty means in-process caching.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TableCacheTTL time.Duration

	HTTPTimeout       time.Duration
	ShowroomBaseURL   string
	ShowroomCookie    string
	RoomListURL       string
	EventLiverListURL string
	OrganizerListURL  string

	JWTSecret          string
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:       env,
		Port:              getenv("PORT", "8080"),
		DBUrl:             os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getenvInt("REDIS_DB", 0),
		TableCacheTTL:     getenvDuration("TABLE_CACHE_TTL", 10*time.Minute),
		HTTPTimeout:       getenvDuration("HTTP_TIMEOUT", 10*time.Second),
		ShowroomBaseURL:   strings.TrimSuffix(getenv("SHOWROOM_BASE_URL", DefaultShowroomBaseURL), "/"),
		ShowroomCookie:    os.Getenv("SHOWROOM_COOKIE"),
		RoomListURL:       getenv("ROOM_LIST_URL", DefaultRoomListURL),
		EventLiverListURL: getenv("EVENT_LIVER_LIST_URL", DefaultEventLiverListURL),
		OrganizerListURL:  getenv("ORGANIZER_LIST_URL", DefaultOrganizerListURL),
		JWTSecret:         os.Getenv("JWT_SECRET"),
	}

	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		cfg.CORSAllowedOrigins = strings.Split(s, ",")
	}

	if cfg.JWTSecret == "" && env != "production" {
		cfg.JWTSecret = "dev-secret"
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("90s") or a bare number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	log.Printf("Warning: invalid %s=%q, using %s", key, v, def)
	return def
}
