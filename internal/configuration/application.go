package configuration

import (
	"errors"
	"io/fs"
)

// Configuration keys recognized inside the application's configuration file.
const (
	KeyRoot        = "BOMSCAN_ROOT"
	KeyUI          = "BOMSCAN_UI"
	KeySort        = "BOMSCAN_SORT"
	KeyFingerprint = "BOMSCAN_FINGERPRINT"
)

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	// RootPath is the top-level directory the recursive scan begins at.
	RootPath string

	// UIEnabled enables the command-line user interface.
	UIEnabled bool

	// SortOutput buffers and lexically sorts the reported paths, instead of
	// streaming them in traversal order.
	SortOutput bool

	// Fingerprint enables content hashing of matched files.
	Fingerprint bool
}

// EstablishConfiguration reads an application configuration file into a new
// [AppConfiguration]. A missing file is not an error and yields the defaults;
// any other read failure is returned to the caller.
func (c *Handler) EstablishConfiguration(filename string) (*AppConfiguration, error) {
	config := &AppConfiguration{}

	envMap, err := c.ReadGeneric(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}

		return nil, err
	}

	config.RootPath = c.MapKeyToString(envMap, KeyRoot)
	config.UIEnabled = c.MapKeyToBool(envMap, KeyUI, false)
	config.SortOutput = c.MapKeyToBool(envMap, KeySort, false)
	config.Fingerprint = c.MapKeyToBool(envMap, KeyFingerprint, false)

	return config, nil
}
