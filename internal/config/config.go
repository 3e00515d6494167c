package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the application configuration, including the mapping from
// collection names to backing files. Constructed once in main and passed
// down explicitly; nothing reads the environment after startup.
type Config struct {
	ServerPort         string
	DataDir            string
	PatientsFile       string
	UsersFile          string
	JWTSecret          string
	JWTExpirationHours int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	jwtExpHours := int64(24)
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			log.Printf("Invalid JWT_EXPIRATION_HOURS %q, defaulting to 24", v)
		} else {
			jwtExpHours = parsed
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data" // Default data directory
	}

	return &Config{
		ServerPort:         serverPort,
		DataDir:            dataDir,
		PatientsFile:       filepath.Join(dataDir, "patients.json"),
		UsersFile:          filepath.Join(dataDir, "users.json"),
		JWTSecret:          jwtSecret,
		JWTExpirationHours: jwtExpHours,
	}, nil
}
