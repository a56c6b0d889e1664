package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisURL      string

	TelegramToken  string
	TelegramChatID string

	PublicURL   string
	Environment string
	CORSOrigins []string
	LogLevel    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	// Local development keeps credentials in .env; in deployment the
	// variables come from the process environment.
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase:  getenv("MONGODB_DATABASE", "grantportal"),
		RedisURL:       os.Getenv("REDIS_URL"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_SUPPORT_CHAT_ID"),
		PublicURL:      os.Getenv("PUBLIC_URL"),
		Environment:    getenv("APP_ENV", "development"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}

// AdminBaseURL is the base for links embedded in notifications. Outside
// production the admin frontend runs on the local dev server.
func (c Config) AdminBaseURL() string {
	if c.Environment == "production" && c.PublicURL != "" {
		return c.PublicURL
	}
	return "http://localhost:3000"
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
