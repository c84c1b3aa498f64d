package config

import (
	"os"
	"strconv"
	"strings"

	"gamehub/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultDSN = "host=localhost port=5432 user=postgres dbname=gamehub sslmode=disable"

type Config struct {
	Port           string
	DatabaseURL    string
	GinMode        string
	LogLevel       string
	LogFile        string
	AutoMigrate    bool
	SeedOnStart    bool
	CORSOrigins    []string
	UseHTTPS       bool
	TLSCertFile    string
	TLSKeyFile     string
	DBMaxOpenConns int
}

// Release reports whether gin runs in release mode.
func (c Config) Release() bool {
	return c.GinMode == "release"
}

// TLSEnabled reports whether the server should listen with TLS.
func (c Config) TLSEnabled() bool {
	return c.UseHTTPS && c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Log.Debug("No .env file found")
	}

	return Config{
		Port:           getString("PORT", "8080"),
		DatabaseURL:    getString("DATABASE_URL", defaultDSN),
		GinMode:        getString("GIN_MODE", "debug"),
		LogLevel:       getString("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
		AutoMigrate:    getBool("AUTO_MIGRATE", true),
		SeedOnStart:    getBool("SEED_ON_START", false),
		CORSOrigins:    getList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		UseHTTPS:       getBool("USE_HTTPS", false),
		TLSCertFile:    os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:     os.Getenv("TLS_KEY_FILE"),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
	}
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.Log.WithFields(logrus.Fields{"key": key, "value": v}).Warn("Invalid boolean, using default")
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.Log.WithFields(logrus.Fields{"key": key, "value": v}).Warn("Invalid integer, using default")
		return fallback
	}
	return n
}

func getList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
