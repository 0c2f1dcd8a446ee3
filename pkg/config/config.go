package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	Logging      bool
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig describes the relational store. Driver is either "mysql" or "sqlite3"; the MySQL
// fields are ignored for SQLite and vice versa.
type DatabaseConfig struct {
	Driver      string
	Host        string
	User        string
	Password    string
	Name        string
	Path        string
	AutoMigrate bool
}

type SessionConfig struct {
	Secret string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the optional .env file and then the environment variables. Values set in the
// environment win over values in the .env file.
//
// Usage example on the command line:
// > PORT=8080 DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 GIN_LOGGING=off go run main.go
func Load() (*Config, error) {
	// A missing .env file is the normal case in production.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			Logging:      !strings.EqualFold(os.Getenv("GIN_LOGGING"), "off"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DBDRIVER", "mysql"),
			Host:        getEnv("DBHOST", "localhost:3306"),
			User:        os.Getenv("DBUSER"),
			Password:    os.Getenv("DBPWD"),
			Name:        getEnv("DBNAME", "test"),
			Path:        getEnv("DBPATH", "./inquiries.db"),
			AutoMigrate: getEnvAsBool("DBMIGRATE", false),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-secret-key"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("could not parse PORT env variable %q: %w", c.Server.Port, err)
	}
	switch c.Database.Driver {
	case "mysql", "sqlite3":
	default:
		return fmt.Errorf("unsupported DBDRIVER %q", c.Database.Driver)
	}
	return nil
}

// DSN builds the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite3" {
		return d.Path + "?_foreign_keys=on&_busy_timeout=30000"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Name)
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
