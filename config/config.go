package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

var validate = validator.New()

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HousingCSVPath string `validate:"required_if=DataSource csv"`
	SalaryCSVPath  string `validate:"required_if=DataSource csv"`
	DataSource     string `validate:"oneof=csv postgres"`

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	ConnectRetries   int `validate:"min=1"`

	TopN              int `validate:"min=1"`
	CheapestN         int `validate:"min=1"`
	MaxPromptAttempts int `validate:"min=1"`

	ReportPath      string
	ReportFormat    string `validate:"oneof=csv yaml"`
	MetricsTextfile string

	LogLevel string `validate:"oneof=debug info warn warning error"`
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		HousingCSVPath: getEnv("HOUSING_CSV_PATH", "../PropertyValues.csv"),
		SalaryCSVPath:  getEnv("SALARY_CSV_PATH", "../JobSalarys.csv"),
		DataSource:     getEnv("DATA_SOURCE", SourceCSV),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "housing"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "housing123"),
		PostgresDB:       getEnv("POSTGRES_DB", "housing_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		ConnectRetries:   getEnvInt("POSTGRES_CONNECT_RETRIES", 5),

		TopN:              getEnvInt("TOP_N", 5),
		CheapestN:         getEnvInt("CHEAPEST_N", 10),
		MaxPromptAttempts: getEnvInt("MAX_PROMPT_ATTEMPTS", 3),

		ReportPath:      getEnv("REPORT_PATH", ""),
		ReportFormat:    getEnv("REPORT_FORMAT", FormatCSV),
		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
