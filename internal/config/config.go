package config

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT" envDefault:"4000"`
		Env  string `yaml:"env" env:"SERVER_ENV" envDefault:"development"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url" env:"DATABASE_URL"`
	} `yaml:"database"`

	// Email credentials are optional: with an empty SMTPHost the service
	// degrades to logging outbound mail instead of sending it.
	Email struct {
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT" envDefault:"587"`
		SMTPUsername string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"EMAIL_FROM" envDefault:"noreply@studio.local"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME" envDefault:"Studio"`
		AdminEmail   string `yaml:"admin_email" env:"EMAIL_ADMIN"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
		TTL    int    `yaml:"ttl" env:"JWT_TTL" envDefault:"60"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type" env:"STORAGE_TYPE" envDefault:"local"` // local, s3, cloudflare_r2
		BasePath  string `yaml:"base_path" env:"STORAGE_BASE_PATH" envDefault:"./uploads"`
		BaseURL   string `yaml:"base_url" env:"STORAGE_BASE_URL" envDefault:"/api/files"`
		Bucket    string `yaml:"bucket" env:"STORAGE_BUCKET"`
		Region    string `yaml:"region" env:"STORAGE_REGION"`
		AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		Endpoint  string `yaml:"endpoint" env:"STORAGE_ENDPOINT"` // for R2 or custom S3
	} `yaml:"storage"`

	Upload struct {
		MaxSize    int64    `yaml:"max_size" env:"UPLOAD_MAX_SIZE" envDefault:"26214400"` // bytes
		ImageTypes []string `yaml:"image_types" env:"UPLOAD_IMAGE_TYPES" envSeparator:","`
		AudioTypes []string `yaml:"audio_types" env:"UPLOAD_AUDIO_TYPES" envSeparator:","`
	} `yaml:"upload"`

	Admin struct {
		FirstAdminEmail    string `yaml:"first_admin_email" env:"FIRST_ADMIN_EMAIL"`
		FirstAdminPassword string `yaml:"first_admin_password" env:"FIRST_ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Worker struct {
		EvaluationInterval int `yaml:"evaluation_interval" env:"EVALUATION_INTERVAL" envDefault:"300"` // seconds
	} `yaml:"worker"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When DATABASE_URL is present in the
// environment the whole config is read from env vars (container and test
// mode); otherwise it is read from config/config.yaml.
func LoadConfig() {
	var cfg Config

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse config from environment: %v", err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 25 * 1024 * 1024
	}
	if len(cfg.Upload.ImageTypes) == 0 {
		cfg.Upload.ImageTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
	if len(cfg.Upload.AudioTypes) == 0 {
		cfg.Upload.AudioTypes = []string{"audio/mpeg", "audio/wav", "audio/mp4", "audio/x-m4a", "audio/webm"}
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" && cfg.Storage.Type == "local" {
		cfg.Storage.BaseURL = "/api/files"
	}
	if cfg.Worker.EvaluationInterval == 0 {
		cfg.Worker.EvaluationInterval = 300
	}
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// EmailConfigured reports whether a real SMTP credential is present.
func (c *Config) EmailConfigured() bool {
	return c.Email.SMTPHost != ""
}
