// README: Config loader with defaults, TAXIFARE_* env overrides and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TAXIFARE"

type PredictConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Predict PredictConfig
	CORS    struct {
		AllowedOrigins []string
	}
}

// New returns a viper instance with defaults and env bindings applied.
// Callers may bind flags onto it before LoadFrom.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("predict.endpoint", "https://taxifare.lewagon.ai/predict")
	v.SetDefault("predict.timeout", 10*time.Second)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("config", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func Load() (Config, error) {
	return LoadFrom(New())
}

func LoadFrom(v *viper.Viper) (Config, error) {
	var cfg Config
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Predict.Endpoint = strings.TrimSpace(v.GetString("predict.endpoint"))
	cfg.Predict.Timeout = v.GetDuration("predict.timeout")
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))

	if cfg.Predict.Endpoint == "" {
		return cfg, fmt.Errorf("config: predict.endpoint is required")
	}
	if cfg.Predict.Timeout < 0 {
		return cfg, fmt.Errorf("config: predict.timeout must not be negative")
	}
	return cfg, nil
}

// splitList accepts both repeated values and a single comma separated env value.
func splitList(in []string) []string {
	out := []string{}
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
