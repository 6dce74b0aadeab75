package config

import (
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Redis configuration (session store)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Session configuration
type SessionConfig struct {
	TTLHours     int
	CookieName   string
	CookieSecure bool
}

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Session    SessionConfig
	BcryptCost int
}

// Default configuration values
const (
	DefaultServerPort        = "5000"
	DefaultServerHost        = ""
	DefaultMongoURI          = "mongodb://localhost:27017/planora"
	DefaultMongoDB           = "planora"
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisDB           = 0
	DefaultSessionTTLHours   = 24
	DefaultSessionCookieName = "planora_session"
	DefaultBcryptCost        = 10
)

// New returns a new Config with default values
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", DefaultMongoURI),
			Database: getEnv("MONGODB_DB", DefaultMongoDB),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", DefaultRedisDB),
		},
		Session: SessionConfig{
			TTLHours:     getEnvInt("SESSION_TTL_HOURS", DefaultSessionTTLHours),
			CookieName:   getEnv("SESSION_COOKIE_NAME", DefaultSessionCookieName),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		BcryptCost: getEnvInt("BCRYPT_COST", DefaultBcryptCost),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
