package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/linkboard/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Duration fields are strings in time.ParseDuration format ("24h").
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string `json:"endpoint_addr_http"`
	DatabaseDSN           string `json:"database_dsn"`
	SecretKey             string `json:"secret_key"`
	TokenValidityDuration string `json:"token_validity_duration"`
	BcryptCost            int    `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. Unreadable or invalid
// files cause a panic, as does a malformed duration.
//
// Zero-valued fields in the file leave the current Config values untouched,
// so a partial file only overrides what it names.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != "" {
		d, err := time.ParseDuration(c.TokenValidityDuration)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
