package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkrasnov/authapi/internal/flagx"
	"github.com/dkrasnov/authapi/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. It uses timex.Duration
// for the lifetime field so config files can say "30m" as well as raw
// nanoseconds. Values are copied into the runtime Config after decoding.
type JsonConfig struct {
	EndpointAddr  string         `json:"endpoint_addr"`
	DatabaseDSN   string         `json:"database_dsn"`
	SecretKey     string         `json:"secret_key"`
	Issuer        string         `json:"issuer"`
	Audience      string         `json:"audience"`
	TokenLifetime timex.Duration `json:"token_lifetime"`
	APIKey        string         `json:"api_key"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is given the
// Config is left untouched. An unreadable or invalid file panics: a server
// started with broken configuration should not come up.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.Issuer = c.Issuer
	config.Audience = c.Audience
	config.TokenLifetime = time.Duration(c.TokenLifetime.Duration)
	config.APIKey = c.APIKey
}
