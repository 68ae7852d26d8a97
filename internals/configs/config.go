package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// DefaultAPIBaseURL is the production backend used when API_BASE_URL is not set.
const DefaultAPIBaseURL = "https://api.otm.edu.uz/api/v1/"

var (
	Port          string
	APIBaseURL    string
	APITimeout    time.Duration
	WriteTimeout  time.Duration
	InstitutionID string
	LoginEndpoint string
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
	RedirectDelay time.Duration
	HealthCron    string
	CookieSecure  bool

	// stub backend (cmd/stubapi)
	StubDSN       string
	StubPort      string
	StubJWTSecret string
)

// RequestDeadline bounds the backend work of one browser request: API_TIMEOUT when set,
// otherwise the server write timeout (the response could not be delivered after it anyway).
func RequestDeadline() time.Duration {
	if APITimeout > 0 {
		return APITimeout
	}
	return WriteTimeout
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	Port = GetEnv("PORT", "3000")
	APIBaseURL = NormalizeBaseURL(GetEnv("API_BASE_URL", DefaultAPIBaseURL))
	APITimeout = GetDuration("API_TIMEOUT", 0)
	WriteTimeout = GetDuration("WRITE_TIMEOUT", 30*time.Second)
	InstitutionID = GetEnv("INSTITUTION_ID", "1")
	LoginEndpoint = GetEnv("LOGIN_ENDPOINT", "auth/login/")
	RedisAddr = GetEnv("REDIS_ADDR")
	RedisPassword = GetEnv("REDIS_PASSWORD")
	SessionTTL = GetDuration("SESSION_TTL", 7*24*time.Hour)
	RedirectDelay = GetDuration("REDIRECT_DELAY", 1500*time.Millisecond)
	HealthCron = GetEnv("HEALTH_CRON", "@every 30s")
	CookieSecure = GetBool("COOKIE_SECURE", false)

	StubDSN = GetEnv("STUB_DB_DSN")
	StubPort = GetEnv("STUB_PORT", "8000")
	StubJWTSecret = GetEnv("STUB_JWT_SECRET", "stub-secret")

	log.Printf("✅ API base: %s", APIBaseURL)
	if RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set, sessions are kept in memory")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetDuration accepts Go durations ("1500ms") or a plain number of milliseconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("[WARN] %s=%q is not a duration, using %s", key, raw, fallback)
	return fallback
}

func GetBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return b
}

// NormalizeBaseURL guarantees exactly one trailing slash so endpoints like "staffs/" join cleanly.
func NormalizeBaseURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(u, "/") + "/"
}

// =======================
// GORM LOGGER CUSTOM (stub backend)
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
