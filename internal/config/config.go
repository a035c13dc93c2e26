// Package config loads the optional workspace configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/workspace-mcp/internal/types"
)

// FileName is the workspace config file looked up at the workspace root.
const FileName = ".workspace-mcp.yaml"

// Load reads the workspace config from root. A missing file is not an
// error; the caller gets a nil config and the built-in ignore rules apply
// unchanged. A file that exists but fails to parse is an error so a typo
// never silently reverts the filter to defaults.
func Load(root string) (*types.PathFilterConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg types.PathFilterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}
