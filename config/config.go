package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI    string
	MongoDBName string

	JWTAccessSecret string

	// Comma-separated list of admin emails allowed into the admin area
	AdminAllowedEmails []string

	// ✅ Redis Config (rate limiter store; falls back to memory when unset)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ SMTP Config
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// ✅ Wedding details (used in confirmation emails)
	CoupleNames     string
	WeddingDate     string
	WeddingLocation string

	CORSAllowedOrigins []string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbName := os.Getenv("MONGODB_NAME")
	if dbName == "" {
		dbName = "wedding"
	}

	return &Config{
		Port: port,

		MongoURI:    os.Getenv("MONGODB_URI"),
		MongoDBName: dbName,

		JWTAccessSecret: os.Getenv("JWT_ACCESS_SECRET"),

		AdminAllowedEmails: splitList(os.Getenv("ADMIN_ALLOWED_EMAILS")),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		CoupleNames:     os.Getenv("COUPLE_NAMES"),
		WeddingDate:     os.Getenv("WEDDING_DATE"),
		WeddingLocation: os.Getenv("WEDDING_LOCATION"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// splitList parses a comma-separated env value into trimmed, non-empty entries
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
