package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	DataFile        string // Path of the users JSON file
	LedgerDir       string // Directory of per-user transaction files
	AdminUsername   string // Fixed admin username
	AdminPassword   string // Fixed admin password
	PasswordHashing string // "plain" or "bcrypt"
	LogLevel        string // Logrus level name
	AppPort         string // HTTP facade port
	JWTSecret       string // JWT secret key
	RedisAddr       string // Redis server address, empty disables caching
	RedisPass       string // Redis password
	RedisDB         int    // Redis database number
	DBUser          string // MySQL user for the reporting mirror
	DBPassword      string // MySQL password
	DBHost          string // MySQL host
	DBPort          string // MySQL port
	DBName          string // MySQL database name
	IsProd          bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		DataFile:        getenv("DATA_FILE", "users.json"),    // Users file
		LedgerDir:       getenv("LEDGER_DIR", "."),            // Ledger directory
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),    // Admin username
		AdminPassword:   getenv("ADMIN_PASSWORD", "password"), // Admin password
		PasswordHashing: getenv("PASSWORD_HASHING", "plain"),  // Password storage mode
		LogLevel:        os.Getenv("LOG_LEVEL"),               // Log level, empty picks the entry point default
		AppPort:         getenv("APP_PORT", "8080"),           // Application port
		JWTSecret:       os.Getenv("JWT_SECRET"),              // JWT secret key
		RedisAddr:       os.Getenv("REDIS_ADDR"),              // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),              // Redis password
		RedisDB:         redisDB,                              // Redis database number
		DBUser:          os.Getenv("DB_USER"),                 // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),             // Database password
		DBHost:          getenv("DB_HOST", "127.0.0.1"),       // Database host
		DBPort:          getenv("DB_PORT", "3306"),            // Database port
		DBName:          os.Getenv("DB_NAME"),                 // Database name
		IsProd:          os.Getenv("IS_PROD") == "true",       // Is production environment
	}
}

// DSN returns the MySQL data source name for the reporting mirror
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getenv returns the variable or fallback when it is unset or empty
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
