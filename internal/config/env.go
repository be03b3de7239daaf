package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string
	AppEnv  string

	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBMaxConns   int
	QueryTimeout time.Duration

	JWTSecret    string
	JWTExpiresIn time.Duration

	FrontendURLs []string

	UploadDir      string
	UploadMaxBytes int64
	ExportPageSize int
}

// IsDevelopment reports whether store error details may be echoed to clients.
func (e Env) IsDevelopment() bool {
	return strings.EqualFold(e.AppEnv, "development")
}

// LoadEnv reads the optional env files (".env" when none given) and then the process environment.
// Variables already present in the environment win over file values.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":" + getEnv("PORT", "5000")
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		AppEnv:  getEnv("APP_ENV", "development"),

		DBHost:       getEnv("DB_HOST", "127.0.0.1"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "root"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "snm_dispensary"),
		DBMaxConns:   getInt("DB_MAX_CONNS", 10),
		QueryTimeout: getDuration("DB_QUERY_TIMEOUT", 15*time.Second),

		JWTSecret:    getEnv("JWT_SECRET", "your-default-secret-key-for-development"),
		JWTExpiresIn: getDuration("JWT_EXPIRES_IN", time.Hour),

		FrontendURLs: splitList(getEnv("FRONTEND_URL", "http://localhost:5173")),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes: int64(getInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		ExportPageSize: getInt("EXPORT_PAGE_SIZE", 500),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
