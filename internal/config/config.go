package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port int
}

// Load reads configuration from the environment. A .env file is applied
// first when present; missing or malformed values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8000 // fallback
	}

	return &Config{
		Port: port,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
