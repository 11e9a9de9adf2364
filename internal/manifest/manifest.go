package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the subset of pubspec.yaml that assetscan cares about.
// Only the project name and the nested flutter.assets list are read;
// everything else in the manifest is ignored.
type Manifest struct {
	// Name is the package name declared at the top of the manifest.
	Name string `yaml:"name"`

	// Flutter holds the flutter-specific section.
	Flutter Flutter `yaml:"flutter"`
}

// Flutter is the flutter section of the manifest.
type Flutter struct {
	// Assets is the declared asset list: relative path strings.
	// Absence of the key yields a nil slice, not an error.
	Assets []string `yaml:"assets"`
}

// Load reads and parses a manifest file.
// An unreadable or malformed manifest is a fatal error: without the
// declared asset list there is nothing to scan.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Manifest path derives from the user's project root
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &m, nil
}

// DeclaredAssets returns the ordered list of declared asset paths filtered
// to entries whose lowercased path ends with "." + one of the recognized
// extensions. Directory entries (trailing slash) and unrecognized formats
// are dropped. The result preserves declaration order.
func (m *Manifest) DeclaredAssets(types []string) []string {
	assets := make([]string, 0, len(m.Flutter.Assets))
	for _, asset := range m.Flutter.Assets {
		lower := strings.ToLower(asset)
		for _, ext := range types {
			if strings.HasSuffix(lower, "."+strings.ToLower(ext)) {
				assets = append(assets, asset)
				break
			}
		}
	}
	return assets
}
