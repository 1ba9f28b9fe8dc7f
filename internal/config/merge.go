package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys that ShallowMergeYAML understands.
const (
	keySchemaVersion = "schema_version"
	keyOutput        = "output"
	keyLogging       = "logging"
	keyRoutes        = "routes"
	keyEmission      = "emission"
	keyCredits       = "credits"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the overlay replaces the whole section; absent
// keys leave target unchanged and unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = applySection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// applySection decodes node into a fresh zero value of the section named by
// key so the overlay replaces it instead of merging field by field.
func applySection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		return node.Decode(&target.SchemaVersion)
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyRoutes:
		var v RoutesConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Routes = v
	case keyEmission:
		var v EmissionConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Emission = v
	case keyCredits:
		var v CreditsConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Credits = v
	}
	return nil
}
