package agency

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when the environment does not say otherwise.
const (
	DefaultDataDir  = "data"
	defaultLogLevel = "info"
)

// Config holds runtime wiring options for the agency.
type Config struct {
	DataDir  string // directory holding the four data files
	LogLevel string // debug, info, warn or error
	NoColor  bool   // disable the colored log handler
}

// LoadConfig reads configuration from the environment, optionally
// preloading a .env file first. A missing .env file is not an error.
func LoadConfig(envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}
	return Config{
		DataDir:  envOr("ESTATE_DATA_DIR", DefaultDataDir),
		LogLevel: envOr("ESTATE_LOG_LEVEL", defaultLogLevel),
		NoColor:  os.Getenv("ESTATE_NO_COLOR") != "",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
