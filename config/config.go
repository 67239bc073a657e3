package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime parameters sourced from environment variables.
type Config struct {
	InputPath  string `envconfig:"INPUT_PATH" required:"true"`
	SheetName  string `envconfig:"SHEET_NAME"`
	OutputPath string `envconfig:"OUTPUT_PATH" default:"data.json"`

	ServeHTTP    bool   `envconfig:"SERVE_HTTP" default:"false"`
	HTTPPort     string `envconfig:"HTTP_PORT" default:"4242"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	// Rebuild schedule, only active in serve mode.
	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 6 * * *"`

	// Optional upload of the output artifact to S3-compatible storage.
	S3Enabled bool   `envconfig:"S3_ENABLED" default:"false"`
	S3Key     string `envconfig:"S3_KEY"`
	S3Secret  string `envconfig:"S3_SECRET"`
	S3URL     string `envconfig:"S3_URL"`
	S3Region  string `envconfig:"S3_REGION"`
	S3Bucket  string `envconfig:"S3_BUCKET"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
