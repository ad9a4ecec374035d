package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port                string `envconfig:"PORT" default:"8080"`
	SupabaseURL         string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseAnonKey     string `envconfig:"SUPABASE_URL_ANON_KEY" required:"true"`
	MongoDBURI          string `envconfig:"MONGODB_URI" required:"true"`
	MongoDBPassword     string `envconfig:"MONGODB_PASSWORD"`
	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	Environment         string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
