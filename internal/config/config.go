package config

import (
	"os"
)

const (
	apiPortEnvKey      = "API_PORT"
	staticDirEnvKey    = "STATIC_DIR"
	seedUsernameEnvKey = "SEED_USERNAME"
	seedNameEnvKey     = "SEED_NAME"
	seedPasswordEnvKey = "SEED_PASSWORD"
)

type App struct {
	Port         string
	StaticDir    string
	SeedUsername string
	SeedName     string
	SeedPassword string
}

func NewAppConfig() App {
	return App{
		Port:         getEnv(apiPortEnvKey, "3000"),
		StaticDir:    getEnv(staticDirEnvKey, "public"),
		SeedUsername: getEnv(seedUsernameEnvKey, "admin"),
		SeedName:     getEnv(seedNameEnvKey, "Administrator"),
		// development default, override in any real deployment
		SeedPassword: getEnv(seedPasswordEnvKey, "certamen123"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
