package configuration

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/willibrandon/timber/selflog"
)

// RegistryConfiguration describes one registry and its sinks.
type RegistryConfiguration struct {
	Name  string              `json:"Name,omitempty"`
	Sinks []SinkConfiguration `json:"Sinks,omitempty"`
}

// SinkConfiguration represents a sink configuration.
type SinkConfiguration struct {
	Name string         `json:"Name"`
	Args map[string]any `json:"Args,omitempty"`
}

// Configuration is the root configuration object.
type Configuration struct {
	Timber RegistryConfiguration `json:"Timber"`
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	return LoadFromJSON(data)
}

// LoadFromJSON loads configuration from JSON data.
func LoadFromJSON(data []byte) (*Configuration, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "parse config JSON")
	}
	return &config, nil
}

// GetString gets a string value from configuration args.
func GetString(args map[string]any, key string, defaultValue string) string {
	v, ok := args[key]
	if !ok {
		return defaultValue
	}
	if s, ok := v.(string); ok {
		return s
	}
	if selflog.IsEnabled() {
		selflog.Printf("[configuration] expected string for '%s', got %T", key, v)
	}
	return defaultValue
}

// GetInt gets an int value from configuration args. JSON numbers and numeric
// strings are accepted.
func GetInt(args map[string]any, key string, defaultValue int) int {
	v, ok := args[key]
	if !ok {
		return defaultValue
	}
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		i, err := strconv.Atoi(val)
		if err == nil {
			return i
		}
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] failed to parse '%s' as int for '%s'", val, key)
		}
		return defaultValue
	}
	if selflog.IsEnabled() {
		selflog.Printf("[configuration] expected int for '%s', got %T", key, v)
	}
	return defaultValue
}

// GetFloat gets a float value from configuration args.
func GetFloat(args map[string]any, key string, defaultValue float64) float64 {
	v, ok := args[key]
	if !ok {
		return defaultValue
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] failed to parse '%s' as float for '%s'", val, key)
		}
		return defaultValue
	}
	if selflog.IsEnabled() {
		selflog.Printf("[configuration] expected float for '%s', got %T", key, v)
	}
	return defaultValue
}

// GetBool gets a bool value from configuration args.
func GetBool(args map[string]any, key string, defaultValue bool) bool {
	v, ok := args[key]
	if !ok {
		return defaultValue
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return strings.EqualFold(val, "true")
	}
	if selflog.IsEnabled() {
		selflog.Printf("[configuration] expected bool for '%s', got %T", key, v)
	}
	return defaultValue
}

// GetDuration gets a duration from configuration args, written like "500ms"
// or "2s".
func GetDuration(args map[string]any, key string, defaultValue time.Duration) time.Duration {
	s := GetString(args, key, "")
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] failed to parse '%s' as duration for '%s'", s, key)
		}
		return defaultValue
	}
	return d
}
