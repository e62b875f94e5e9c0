package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSON renders the document for prompts.
func (d Document) JSON() (string, error) {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("schema: failed to encode json: %w", err)
	}
	return string(raw), nil
}

// YAML renders the document for humans.
func (d Document) YAML() (string, error) {
	raw, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("schema: failed to encode yaml: %w", err)
	}
	return string(raw), nil
}
