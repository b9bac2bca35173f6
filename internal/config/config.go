package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// DBHostEnv is the environment variable for database host.
	DBHostEnv = "DB_HOST"

	// DBPortEnv is the environment variable for database port.
	DBPortEnv = "DB_PORT"

	// DBUserEnv is the environment variable for database user.
	DBUserEnv = "DB_USER"

	// DBPassEnv is the environment variable for database password.
	DBPassEnv = "DB_PASS"

	// DBNameEnv is the environment variable for database name.
	DBNameEnv = "DB_NAME"

	// MigrationsPathEnv is the environment variable for the migrations source directory.
	MigrationsPathEnv = "MIGRATIONS_PATH"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// DefaultMigrationsPath is used when MIGRATIONS_PATH is not set.
	DefaultMigrationsPath = "migrations"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// OutboxIntervalEnv is the environment variable for the outbox polling interval.
	OutboxIntervalEnv = "OUTBOX_INTERVAL"

	// JWTSecretEnv is the environment variable for the session token signing key.
	JWTSecretEnv = "JWT_SECRET"

	// JWTTTLEnv is the environment variable for the session token lifetime.
	JWTTTLEnv = "JWT_TTL"

	// BootstrapEmployeeCodeEnv, BootstrapEmployeeNameEnv and BootstrapEmployeePasswordEnv
	// describe an employee created on startup when absent.
	BootstrapEmployeeCodeEnv     = "BOOTSTRAP_EMPLOYEE_CODE"
	BootstrapEmployeeNameEnv     = "BOOTSTRAP_EMPLOYEE_NAME"
	BootstrapEmployeePasswordEnv = "BOOTSTRAP_EMPLOYEE_PASSWORD"

	// AdminAPIURLEnv is the environment variable for the admin panel's API base URL.
	AdminAPIURLEnv = "ADMIN_API_URL"

	// AdminTimeoutEnv is the environment variable for the admin panel's request timeout.
	AdminTimeoutEnv = "ADMIN_TIMEOUT"

	// AdminCodeEnv, AdminNameEnv and AdminPasswordEnv prefill the login form.
	AdminCodeEnv     = "ADMIN_CODIGO"
	AdminNameEnv     = "ADMIN_NOME"
	AdminPasswordEnv = "ADMIN_PASSWORD"

	// AdminLogFileEnv is the environment variable for the admin panel's log file.
	AdminLogFileEnv = "ADMIN_LOG_FILE"

	// DefaultAdminAPIURL is the API base URL used by the admin panel when none is configured.
	DefaultAdminAPIURL = "http://localhost:8080/api"

	// DefaultAdminTimeout is the request timeout used by the admin panel when none is configured.
	DefaultAdminTimeout = 5 * time.Second

	// DefaultAdminLogFile is where the admin panel logs when ADMIN_LOG_FILE is not set.
	DefaultAdminLogFile = "inventory-admin.log"

	defaultOutboxInterval = 2 * time.Second
	defaultJWTTTL         = 8 * time.Hour
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the inventory API configuration.
type Config struct {
	DebugMode      bool
	Database       DB
	HTTPServer     Server
	MetricsServer  Server
	AWS            AWSConfig
	Auth           Auth
	Bootstrap      Employee
	OutboxInterval time.Duration
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

// DB represents database configuration settings.
type DB struct {
	Host           string
	User           string
	Password       string
	Name           string
	Port           string
	MigrationsPath string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// Auth holds the session token settings.
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Employee describes the optional bootstrap employee.
type Employee struct {
	Code     string
	Name     string
	Password string
}

// Enabled reports whether all bootstrap fields are set.
func (e Employee) Enabled() bool {
	return e.Code != "" && e.Name != "" && e.Password != ""
}

// NotifierConfig represents the notification consumer configuration.
type NotifierConfig struct {
	DebugMode bool
	AWS       AWSConfig
}

// AdminConfig represents the admin panel configuration.
type AdminConfig struct {
	DebugMode bool
	APIURL    string
	Timeout   time.Duration
	Code      string
	Name      string
	Password  string
	LogFile   string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if err := allNonEmpty(map[string]string{
		DBHostEnv: c.Database.Host,
		DBUserEnv: c.Database.User,
		DBNameEnv: c.Database.Name,
	}); err != nil {
		return fmt.Errorf("database configuration incomplete: %w", err)
	}

	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	if err := allNumbers(map[string]string{
		DBPortEnv:            c.Database.Port,
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	if err := allNonEmpty(map[string]string{
		JWTSecretEnv: c.Auth.JWTSecret,
	}); err != nil {
		return fmt.Errorf("auth configuration incomplete: %w", err)
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		slog.Warn("invalid duration, using default", slog.String("key", name), slog.String("value", raw))
		return defaultValue
	}
	return val
}

func getEnv(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func applyDefaultEnvFile() {
	envPath := getEnv(EnvFilePath, DefaultEnvFilePath)
	if err := ApplyEnvFile(envPath); err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}
}

func loadAWS() AWSConfig {
	return AWSConfig{
		Region:      os.Getenv(AWSRegionEnv),
		Endpoint:    os.Getenv(AWSEndpointEnv),
		SQSQueueURL: os.Getenv(SQSQueueURLEnv),
	}
}

// LoadFromEnv loads the inventory API configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	applyDefaultEnvFile()

	conf := &Config{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		Database: DB{
			Host:           os.Getenv(DBHostEnv),
			User:           os.Getenv(DBUserEnv),
			Password:       os.Getenv(DBPassEnv),
			Name:           os.Getenv(DBNameEnv),
			Port:           os.Getenv(DBPortEnv),
			MigrationsPath: getEnv(MigrationsPathEnv, DefaultMigrationsPath),
		},
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		AWS: loadAWS(),
		Auth: Auth{
			JWTSecret: os.Getenv(JWTSecretEnv),
			TokenTTL:  getEnvAsDuration(JWTTTLEnv, defaultJWTTTL),
		},
		Bootstrap: Employee{
			Code:     os.Getenv(BootstrapEmployeeCodeEnv),
			Name:     os.Getenv(BootstrapEmployeeNameEnv),
			Password: os.Getenv(BootstrapEmployeePasswordEnv),
		},
		OutboxInterval: getEnvAsDuration(OutboxIntervalEnv, defaultOutboxInterval),
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}

// LoadNotifierFromEnv loads the notification consumer configuration.
func LoadNotifierFromEnv() (*NotifierConfig, error) {
	applyDefaultEnvFile()

	conf := &NotifierConfig{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		AWS:       loadAWS(),
	}
	if err := allNonEmpty(map[string]string{
		SQSQueueURLEnv: conf.AWS.SQSQueueURL,
	}); err != nil {
		return nil, fmt.Errorf("configuration validation failed: AWS configuration incomplete: %w", err)
	}
	return conf, nil
}

// LoadAdminFromEnv loads the admin panel configuration. Every value has a default,
// so the only failure is a malformed API URL.
func LoadAdminFromEnv() (*AdminConfig, error) {
	applyDefaultEnvFile()

	conf := &AdminConfig{
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		APIURL:    getEnv(AdminAPIURLEnv, DefaultAdminAPIURL),
		Timeout:   getEnvAsDuration(AdminTimeoutEnv, DefaultAdminTimeout),
		Code:      os.Getenv(AdminCodeEnv),
		Name:      os.Getenv(AdminNameEnv),
		Password:  os.Getenv(AdminPasswordEnv),
		LogFile:   getEnv(AdminLogFileEnv, DefaultAdminLogFile),
	}
	if err := allNonEmpty(map[string]string{
		AdminAPIURLEnv: conf.APIURL,
	}); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
