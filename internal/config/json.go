package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/labpool/internal/timex"
)

// jsonConfig is the DTO for the JSON configuration file. It uses
// timex.Duration for interval fields, which allows parsing both string
// values such as "15s" and integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config.
//
// Pointer fields distinguish "absent" from zero values, so a partial file
// only overrides what it names.
type jsonConfig struct {
	NamePrefix  *string         `json:"name_prefix"`
	PadZeroes   *bool           `json:"pad_zeroes"`
	Store       *string         `json:"store"`
	DatabaseDSN *string         `json:"database_dsn"`
	PoolSize    *int            `json:"pool_size"`
	OpTimeout   *timex.Duration `json:"op_timeout"`
}

// parseJSON overlays values from the JSON file at path onto config. An empty
// path means no file, which is not an error; an unreadable or malformed file
// is.
func parseJSON(config *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if c.NamePrefix != nil {
		config.NamePrefix = *c.NamePrefix
	}
	if c.PadZeroes != nil {
		config.PadZeroes = *c.PadZeroes
	}
	if c.Store != nil {
		config.Store = *c.Store
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.PoolSize != nil {
		config.PoolSize = *c.PoolSize
	}
	if c.OpTimeout != nil {
		config.OpTimeout = time.Duration(c.OpTimeout.Duration)
	}

	return nil
}
