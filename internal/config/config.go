package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Firebase FirebaseConfig
	CORS     CORSConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type FirebaseConfig struct {
	ProjectID string `env:"FIREBASE_PROJECT_ID"`
	// Credentials holds the service account JSON inline, the way
	// a deployment platform injects it as a structured secret.
	Credentials string `env:"FIREBASE_CREDENTIALS"`
	// CredentialsFile is the local development fallback.
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE" env-default:"serviceAccountKey.json"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}
