package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Get returns the value at a dotted key such as "output.locale" or
// "credits". Sections are returned as maps.
func (c *Config) Get(key string) (any, error) {
	parts := splitKey(key)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	tree, err := c.tree()
	if err != nil {
		return nil, err
	}

	var node any = tree
	for _, part := range parts {
		section, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		if node, ok = section[part]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
	}
	return node, nil
}

// Set assigns value, parsed as a YAML scalar or flow collection, to a
// dotted key. The result must still pass Validate; on failure c is unchanged.
func (c *Config) Set(key, value string) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	tree, err := c.tree()
	if err != nil {
		return err
	}

	section := tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := section[part].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		section = next
	}

	leaf := parts[len(parts)-1]
	if _, ok := section[leaf]; !ok && !c.isOptionalKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	var parsed any
	if err = yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("%w: value for %s: %w", ErrInvalidConfig, key, err)
	}
	section[leaf] = parsed

	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	updated := &Config{configPath: c.configPath}
	if err = yaml.Unmarshal(data, updated); err != nil {
		return fmt.Errorf("%w: value for %s: %w", ErrInvalidConfig, key, err)
	}
	if err = updated.Validate(); err != nil {
		return err
	}

	*c = *updated
	return nil
}

// Keys lists every leaf key in dotted form, sorted.
func (c *Config) Keys() ([]string, error) {
	tree, err := c.tree()
	if err != nil {
		return nil, err
	}

	var keys []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if sub, ok := v.(map[string]any); ok {
				walk(full, sub)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", tree)
	sort.Strings(keys)
	return keys, nil
}

// isOptionalKey reports keys tagged omitempty, which are missing from the
// tree while empty.
func (c *Config) isOptionalKey(key string) bool {
	switch key {
	case "logging.file", "routes.files", "emission.factors":
		return true
	default:
		return false
	}
}

// tree round-trips c through YAML into nested maps keyed by YAML names.
func (c *Config) tree() (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	tree := map[string]any{}
	if err = yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return tree, nil
}

func splitKey(key string) []string {
	key = strings.Trim(strings.TrimSpace(key), ".")
	if key == "" {
		return nil
	}
	return strings.Split(key, ".")
}
