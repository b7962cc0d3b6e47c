package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errUnsupportedDriver error = errors.New("unsupported database driver")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	apiPortEnvKey  = "API_PORT"
	logLevelEnvKey = "LOG_LEVEL"
	dbDriverEnvKey = "DB_DRIVER"
	dbConnEnvKey   = "DB_CONNECTION_URL"

	pgHostEnvKey     = "POSTGRES_HOST"
	pgPortEnvKey     = "POSTGRES_PORT"
	pgUserEnvKey     = "POSTGRES_USER"
	pgPasswordEnvKey = "POSTGRES_PASSWORD"
	pgDatabaseEnvKey = "POSTGRES_DB"

	defaultPort     = "8000"
	defaultLogLevel = "info"
)

type App struct {
	Port               string
	LogLevel           string
	DBDriver           string
	DBConnectionString string
}

// NewAppConfig reads the application configuration from the environment.
// A .env file in the working directory, when present, is loaded first and
// never overrides variables that are already set.
func NewAppConfig() (App, error) {
	_ = godotenv.Load()

	driver := lookupOr(dbDriverEnvKey, DriverPostgres)
	if driver != DriverPostgres && driver != DriverSQLite {
		return App{}, fmt.Errorf("%w: %q", errUnsupportedDriver, driver)
	}

	dsn, err := connectionString(driver)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:               lookupOr(apiPortEnvKey, defaultPort),
		LogLevel:           lookupOr(logLevelEnvKey, defaultLogLevel),
		DBDriver:           driver,
		DBConnectionString: dsn,
	}, nil
}

func connectionString(driver string) (string, error) {
	if dsn, ok := os.LookupEnv(dbConnEnvKey); ok && dsn != "" {
		return dsn, nil
	}

	if driver == DriverSQLite {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	parts := make(map[string]string, 5)
	for _, key := range []string{pgHostEnvKey, pgPortEnvKey, pgUserEnvKey, pgPasswordEnvKey, pgDatabaseEnvKey} {
		val, ok := os.LookupEnv(key)
		if !ok {
			return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		parts[key] = val
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(parts[pgUserEnvKey], parts[pgPasswordEnvKey]),
		Host:     parts[pgHostEnvKey] + ":" + parts[pgPortEnvKey],
		Path:     parts[pgDatabaseEnvKey],
		RawQuery: "sslmode=disable",
	}

	return dsn.String(), nil
}

func lookupOr(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
