package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
}

type Server struct {
	ListenAddr        string `yaml:"listenAddr"`
	PostgresDsn       string `yaml:"postgresDsn"`
	RedisAddr         string `yaml:"redisAddr"`
	RedisPassword     string `yaml:"redisPassword"`
	RedisDB           int    `yaml:"redisDB"`
	SessionTTLMinutes int    `yaml:"sessionTTLMinutes"`
	EnableTrace       bool   `yaml:"enableTrace"`
	TraceEndpoint     string `yaml:"traceEndpoint"`
}

// SessionTTL returns the configured session lifetime, defaulting to 12 hours.
func (s Server) SessionTTL() time.Duration {
	if s.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(s.SessionTTLMinutes) * time.Minute
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}

	return config, nil
}
