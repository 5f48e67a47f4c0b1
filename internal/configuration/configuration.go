// Package configuration provides reading of generic Unix-type configuration
// files into typed application settings. The actual file parsing is delegated
// to a provider implementation, so the package can be tested without touching
// the filesystem.
package configuration

import (
	"fmt"
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for configuration operations.
type Handler struct {
	configProvider genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configProvider genericConfigProvider) *Handler {
	return &Handler{
		configProvider: configProvider,
	}
}

// ReadGeneric reads given generic configuration files into a map
// (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	envMap, err := c.configProvider.Read(filenames...)
	if err != nil {
		return envMap, fmt.Errorf("(config) %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns a key's string value from a configuration map, or the
// empty string when the key is not set.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns a key's boolean value from a configuration map, or the
// given fallback when the key is not set or not parseable.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string, fallback bool) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return fallback
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return boolValue
}
