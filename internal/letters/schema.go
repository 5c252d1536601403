package letters

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Schema kinds, picked from the asset file name.
const (
	SchemaLetter   = "letter"
	SchemaManifest = "manifest"
)

var compiled sync.Map // map[string]*jsonschema.Schema

// SchemaFor returns the schema kind for an asset file name, or "" when the
// file is not a known asset.
func SchemaFor(name string) string {
	base := path.Base(name)
	switch {
	case base == manifestFile:
		return SchemaManifest
	case !strings.HasSuffix(base, ".json"):
		return ""
	case strings.HasPrefix(base, "letter_"), strings.HasPrefix(base, "h_letter_"):
		return SchemaLetter
	}
	return ""
}

// ValidateJSON checks raw asset JSON against the named schema kind.
func ValidateJSON(kind string, raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := schemaByKind(kind)
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func schemaByKind(kind string) (*jsonschema.Schema, error) {
	if cached, ok := compiled.Load(kind); ok {
		return cached.(*jsonschema.Schema), nil
	}

	raw, err := schemaFS.ReadFile("schema/" + kind + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", kind, err)
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", kind, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", kind)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", kind, err)
	}

	compiled.Store(kind, sch)
	return sch, nil
}
