package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// SessionFile is where the signed session marker is persisted between
	// runs (the browser localStorage analog).
	SessionFile   string
	SessionSecret []byte
	SessionTTL    time.Duration
	SeedDemoData  bool
	Version       string
}

func Load() *Config {
	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".hostel_session"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Demo deployments run without one; the store holds plaintext
		// passwords anyway, so a static signing key is not the weak
		// point here.
		secret = "hostel-dashboard-dev-secret"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			panic("SESSION_TTL_HOURS must be a positive integer")
		}
		ttl = time.Duration(hours) * time.Hour
	}

	seed := true
	if raw := os.Getenv("SEED_DEMO_DATA"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			panic("SEED_DEMO_DATA must be a boolean")
		}
		seed = parsed
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "unknown"
	}

	return &Config{
		SessionFile:   sessionFile,
		SessionSecret: []byte(secret),
		SessionTTL:    ttl,
		SeedDemoData:  seed,
		Version:       version,
	}
}
