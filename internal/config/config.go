package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strings" // strings splits list-valued variables
	"time"    // time parses the keep-alive interval

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// defaultKeepaliveURLs are the deployments pinged to keep them from being
// suspended when idle. Overridable through KEEPALIVE_URLS.
var defaultKeepaliveURLs = []string{
	"https://crud-alice.onrender.com/",
	"https://n8n-vl1r.onrender.com/",
	"https://landcraft-be.onrender.com/",
	"https://expense-tracker-llm-zm78.onrender.com/",
}

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Database variables are required; everything else
// has a default suitable for local development.
type Config struct {
	Env               string        // application environment (e.g. "dev", "prod")
	Host              string        // interface the HTTP server binds to
	Port              string        // HTTP port to listen on
	DBUser            string        // database username
	DBPass            string        // database password (optional)
	DBHost            string        // database host address
	DBPort            string        // database port number
	DBName            string        // database name
	KeepaliveURLs     []string      // URLs probed by the keep-alive pinger
	KeepaliveInterval time.Duration // period between keep-alive rounds
	NgrokDomain       string        // public tunnel domain used by cmd/dev
	AMQPURL           string        // RabbitMQ URL for item events (empty disables publishing)
}

// Load reads configuration from the environment, after loading a .env file
// when one exists. Missing required variables cause the program to exit
// with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // a missing .env file is fine; real env vars win anyway

	urls := defaultKeepaliveURLs
	if raw := os.Getenv("KEEPALIVE_URLS"); raw != "" {
		urls = nil
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
	}

	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		amqpURL = os.Getenv("AMQP_URL")
	}

	interval := envDur("KEEPALIVE_INTERVAL", 10*time.Minute)
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return Config{
		Env:               envStr("APP_ENV", "dev"),
		Host:              envStr("APP_HOST", "0.0.0.0"),
		Port:              envStr("APP_PORT", "8000"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"), // empty allowed
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		KeepaliveURLs:     urls,
		KeepaliveInterval: interval,
		NgrokDomain:       envStr("NGROK_DOMAIN", "rational-bison-kind.ngrok-free.app"),
		AMQPURL:           amqpURL,
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
