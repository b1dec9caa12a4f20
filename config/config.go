// Package config loads process configuration from the environment.
//
// Every value has a working default, so a bare `server` starts with
// file-backed storage in the current directory. A .env file is honored
// when present (loaded by cmd/server before Load runs).
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr    string // HTTP listen address
	DataDir string // snapshot and artifact directory
	Storage string // "file" or "sqlite"
	DBPath  string // SQLite database path when Storage is "sqlite"
	Bonus   float64
	Loan    float64
}

func Load() Config {
	return Config{
		Addr:    getEnv("PAYROLL_ADDR", ":8080"),
		DataDir: getEnv("PAYROLL_DATA_DIR", "."),
		Storage: getEnv("PAYROLL_STORAGE", "file"),
		DBPath:  getEnv("PAYROLL_DB_PATH", "payroll.db"),
		Bonus:   getEnvFloat("PAYROLL_BONUS", 50),
		Loan:    getEnvFloat("PAYROLL_LOAN", 20),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
