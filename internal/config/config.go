package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/student360/internal/pkg/apperrors"
	"github.com/yigit/student360/internal/pkg/validation"
)

// DefaultRegion is used when neither a flag, the config nor the environment names one
const DefaultRegion = "us-east-1"

// Config structure represents the application configuration
type Config struct {
	Generator struct {
		Students int    `yaml:"num_students" env:"NUM_STUDENTS" validate:"gt=0"`
		Seed     int64  `yaml:"seed" env:"SEED"`
		OutDir   string `yaml:"out_dir" env:"OUT_DIR" validate:"required"`
	} `yaml:"generator"`

	Storage struct {
		Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT" validate:"required"`
		AccessKey string `yaml:"access_key" env:"AWS_ACCESS_KEY_ID"`
		SecretKey string `yaml:"secret_key" env:"AWS_SECRET_ACCESS_KEY"`
		UseSSL    bool   `yaml:"use_ssl" env:"S3_USE_SSL"`
		Region    string `yaml:"region" env:"AWS_REGION"`
		Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	} `yaml:"storage"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST" validate:"required"`
		Port            string `yaml:"port" env:"DB_PORT" validate:"required"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME" validate:"required"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" validate:"gte=1"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" validate:"duration"`
	} `yaml:"database"`

	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode            string `yaml:"mode" env:"SERVER_MODE" validate:"oneof=development production test"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" validate:"duration"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := validation.RegisterRules(v); err != nil {
		panic(err)
	}
	return v
}

// LoadConfig loads configuration from defaults, an optional YAML file, an
// optional .env file and the process environment, in that order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("failed to parse config %s: %v", configPath, err))
			}
		case errors.Is(err, fs.ErrNotExist):
			// the config file is optional
		default:
			return nil, apperrors.NewIOError("failed to read config file", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	if err := processStructFields(config); err != nil {
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("failed to load from environment: %v", err))
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads KEY=VALUE pairs from path into the environment. Variables
// that are already set win over the file.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return apperrors.NewIOError("failed to load "+path, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Generator.Students = 2000
	config.Generator.Seed = 360
	config.Generator.OutDir = "data"

	config.Storage.Endpoint = "s3.amazonaws.com"
	config.Storage.UseSSL = true

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "student360"
	config.Database.SSLMode = "disable"
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ShutdownTimeout = "5s"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// Validate checks the struct constraints, including duration formats
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return apperrors.NewInvalidArgumentError("invalid configuration: " + strings.Join(fields, ", "))
		}
		return apperrors.NewInvalidArgumentError("invalid configuration: " + err.Error())
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
		strconv.Itoa(c.Database.MaxOpenConns),
	)
}

// ResolveRegion picks the bucket region: explicit flag, then config or
// AWS_REGION, then AWS_DEFAULT_REGION, then us-east-1.
func (c *Config) ResolveRegion(flagRegion string) string {
	if flagRegion != "" {
		return flagRegion
	}
	if c.Storage.Region != "" {
		return c.Storage.Region
	}
	return GetEnv("AWS_DEFAULT_REGION", DefaultRegion)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
