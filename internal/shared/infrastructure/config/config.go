package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
	DriverLocal = "local"
)

// Config holds all configuration for the function
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Converter ConverterConfig
	Log       LogConfig
}

// ServerConfig holds configuration for the local HTTP gateway
type ServerConfig struct {
	Port string
}

// StorageConfig holds object store configuration
type StorageConfig struct {
	Driver    string
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	LocalPath string
}

// ConverterConfig holds the external converter configuration
type ConverterConfig struct {
	Command string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables, after loading envFiles
// (default .env) if present. Variables already set in the environment win.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault("STORAGE_DRIVER", DriverS3)
	v.SetDefault("S3_USE_SSL", true)
	v.SetDefault("LOCAL_STORAGE_PATH", "./uploads")
	v.SetDefault("CONVERTER_COMMAND", "rawtherapee-cli-custom")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	return Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Region:    v.GetString("REGION"),
			Bucket:    v.GetString("BUCKET"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			UseSSL:    v.GetBool("S3_USE_SSL"),
			LocalPath: v.GetString("LOCAL_STORAGE_PATH"),
		},
		Converter: ConverterConfig{
			Command: v.GetString("CONVERTER_COMMAND"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

// Validate reports the first missing or unusable setting. REGION and BUCKET
// only matter to the bucket-backed drivers.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverS3, DriverMinio:
		if c.Storage.Region == "" {
			return fmt.Errorf("REGION is required")
		}
		if c.Storage.Bucket == "" {
			return fmt.Errorf("BUCKET is required")
		}
		if c.Storage.Driver == DriverMinio && c.Storage.Endpoint == "" {
			return fmt.Errorf("S3_ENDPOINT is required for the minio driver")
		}
	case DriverLocal:
		if c.Storage.LocalPath == "" {
			return fmt.Errorf("LOCAL_STORAGE_PATH is required for the local driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}
