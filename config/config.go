package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file into the process environment when one exists.
// Deployed environments set real variables and ship no .env, so a missing
// file is only logged.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using the process environment")
	}
}

// GetEnv returns the named variable, or fallback when it is unset
func GetEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}

// GetEnvInt returns the named variable parsed as an int, or fallback when it
// is unset or not a number
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, value, fallback)
		return fallback
	}
	return n
}
