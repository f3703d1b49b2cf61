package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Repository RepositoryConfig `yaml:"repository"`
	Auth       AuthConfig       `yaml:"auth"`
	Worker     WorkerConfig     `yaml:"worker"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type RepositoryConfig struct {
	Type string `yaml:"type"` // "postgres" o "inmemory"
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	// RequireAuth exige token Bearer en las rutas de datos. Apagado por
	// defecto: los clientes existentes llaman a la API sin token.
	RequireAuth bool `yaml:"require_auth"`
}

type WorkerConfig struct {
	Interval  time.Duration `yaml:"interval"`
	BatchSize int           `yaml:"batch_size"`
}

// Load lee config.yml (si existe) y aplica valores por defecto y las
// variables de entorno DATABASE_URL, JWT_SECRET y PORT, que siempre
// ganan sobre el archivo.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = "config.yml"
	}
	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("error al parsear %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("no puedo abrir %s: %w", path, err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	if cfg.Repository.Type == "postgres" && cfg.Database.URL == "" {
		return nil, fmt.Errorf("repository.type es postgres pero falta database.url o DATABASE_URL")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Logging:    LoggingConfig{Development: true},
		Repository: RepositoryConfig{Type: "inmemory"},
		Auth: AuthConfig{
			JWTSecret: "cambiame-en-produccion",
			TokenTTL:  72 * time.Hour,
		},
		Worker: WorkerConfig{
			Interval:  5 * time.Minute,
			BatchSize: 100,
		},
	}
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
