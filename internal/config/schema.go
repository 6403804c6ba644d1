package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	pkgconfig "github.com/goran-ethernal/DomainIndexor/pkg/config"
)

// Schema returns the JSON Schema describing the configuration file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "json",
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	s := r.Reflect(&pkgconfig.Config{})
	s.Title = "DomainIndexor configuration"

	return s
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	out, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config schema: %w", err)
	}

	return out, nil
}
