// Package config reads server settings from the environment. A .env file is
// loaded by main before any of these are consulted.
package config

import (
	"os"
	"strconv"
)

// DefaultNewsCountOnHomePage caps the front page when the environment does
// not say otherwise.
const DefaultNewsCountOnHomePage = 10

// NewsCountOnHomePage returns the maximum number of news items shown on the
// front page (NEWS_COUNT_ON_HOME_PAGE).
func NewsCountOnHomePage() int {
	return getEnvAsInt("NEWS_COUNT_ON_HOME_PAGE", DefaultNewsCountOnHomePage)
}

// Port returns the HTTP listen port (PORT).
func Port() string {
	return getEnv("PORT", "8080")
}

// DatabaseURL returns the Postgres DSN (DATABASE_URL).
func DatabaseURL() string {
	return getEnv("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=newsline port=5432 sslmode=disable")
}

// SessionSecret returns the cookie session signing key (SESSION_SECRET).
func SessionSecret() string {
	return getEnv("SESSION_SECRET", "secret_key_change_me")
}

func getEnv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}
