package letters

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"golang.org/x/mod/semver"
)

const manifestFile = "manifest.json"

// MinPackVersion is the oldest asset pack layout this build understands.
// Packs from a newer major version are rejected.
const MinPackVersion = "v1.0.0"

// ReadManifest loads and checks manifest.json from the root of fsys.
func ReadManifest(fsys fs.FS) (Manifest, error) {
	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	if err := ValidateJSON(SchemaManifest, raw); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", manifestFile, err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, m.Check()
}

// Check verifies the manifest version is compatible.
func (m Manifest) Check() error {
	if !semver.IsValid(m.Version) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrPackVersion, m.Version)
	}
	if semver.Compare(m.Version, MinPackVersion) < 0 {
		return fmt.Errorf("%w: %s is older than %s", ErrPackVersion, m.Version, MinPackVersion)
	}
	if semver.Major(m.Version) != semver.Major(MinPackVersion) {
		return fmt.Errorf("%w: major version %s not supported", ErrPackVersion, semver.Major(m.Version))
	}
	return nil
}
