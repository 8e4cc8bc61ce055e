package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config collects every environment-backed setting at startup so the rest of
// the application receives an explicit handle instead of reading os.Getenv
// behind the caller's back.
type Config struct {
	Port        string
	DatabaseURL string

	// Discrete DB settings, used when DATABASE_URL is not set
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	// Africa's Talking SMS credentials
	ATAPIKey   string
	ATUsername string
	ATBaseURL  string
	ATSenderID string

	// SMTP settings for the contact form
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	ContactInbox string

	// "free" (default) allows any status to be set; "forward" only allows
	// moves to a later lifecycle state.
	OrderTransitionPolicy string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		ATAPIKey:   strings.TrimSpace(os.Getenv("AT_API_KEY")),
		ATUsername: getEnv("AT_USERNAME", "sandbox"),
		ATBaseURL:  getEnv("AT_BASE_URL", "https://api.africastalking.com/version1/messaging"),
		ATSenderID: os.Getenv("AT_SENDER_ID"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUser:     os.Getenv("EMAIL_USER"),
		SMTPPassword: os.Getenv("EMAIL_PASS"),
		ContactInbox: os.Getenv("RECEIVER_EMAIL"),

		OrderTransitionPolicy: getEnv("ORDER_TRANSITION_POLICY", "free"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	if cfg.ContactInbox == "" {
		cfg.ContactInbox = cfg.SMTPUser
	}

	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
