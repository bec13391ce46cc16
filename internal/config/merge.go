package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tfprep/tfprep/internal/errors"
)

// Field names a category's entries live under.
const (
	listKeyArgs  = "args"
	listKeyPaths = "paths"
)

// Args returns the merged flag list for an args category: the defaults
// entries first, then the environment's own, in declared order. An
// environment skips the defaults by setting inherit: false on the category.
func (d *Document) Args(env, category string) ([]string, error) {
	return d.merged(env, category, listKeyArgs)
}

// Paths returns the merged path list for a paths category, with the same
// merge rules as Args. Entries are declared paths; resolution against the
// working tree happens downstream.
func (d *Document) Paths(env, category string) ([]string, error) {
	return d.merged(env, category, listKeyPaths)
}

func (d *Document) merged(env, category, key string) ([]string, error) {
	var envCat Category
	if e, ok := d.Environments[env]; ok {
		var err error
		envCat, err = decodeCategory(e.Categories[category],
			fmt.Sprintf(".environments.%s.%s", env, category))
		if err != nil {
			return nil, err
		}
	}

	inherit, err := boolOrTrue(envCat.Inherit,
		fmt.Sprintf(".environments.%s.%s.inherit", env, category))
	if err != nil {
		return nil, err
	}

	var merged []string
	if inherit {
		defCat, err := decodeCategory(d.Defaults[category],
			fmt.Sprintf(".defaults.%s", category))
		if err != nil {
			return nil, err
		}
		defaults, err := stringList(defCat.field(key),
			fmt.Sprintf(".defaults.%s.%s", category, key))
		if err != nil {
			return nil, err
		}
		merged = append(merged, defaults...)
	}

	own, err := stringList(envCat.field(key),
		fmt.Sprintf(".environments.%s.%s.%s", env, category, key))
	if err != nil {
		return nil, err
	}
	return append(merged, own...), nil
}

// field selects the entry list named by key.
func (c Category) field(key string) any {
	if key == listKeyPaths {
		return c.Paths
	}
	return c.Args
}

// decodeCategory decodes one category block. A missing or explicitly null
// block decodes to the empty category.
func decodeCategory(n yaml.Node, fieldPath string) (Category, error) {
	var c Category
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return c, nil
	}
	if n.Kind != yaml.MappingNode {
		return c, errors.New(errors.ErrConfigType,
			fmt.Sprintf("Configuration error: '%s' must be a mapping", fieldPath),
			"Give the category a mapping with args or paths, and an optional inherit flag")
	}
	if err := n.Decode(&c); err != nil {
		return c, errors.WrapWithCode(err, errors.ErrConfigType,
			fmt.Sprintf("Configuration error: '%s' has the wrong shape", fieldPath),
			"")
	}
	return c, nil
}

// boolOrTrue reads an inherit value: unset means true, anything non-boolean
// is a shape error.
func boolOrTrue(v any, fieldPath string) (bool, error) {
	switch b := v.(type) {
	case nil:
		return true, nil
	case bool:
		return b, nil
	default:
		return false, errors.New(errors.ErrConfigType,
			fmt.Sprintf("Configuration error: '%s' must be a boolean", fieldPath),
			"Use true or false")
	}
}

// stringList coerces a decoded YAML value to a list of strings. Nil (the
// key is absent) yields an empty list.
func stringList(v any, fieldPath string) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.ErrConfigType,
			fmt.Sprintf("Configuration error: '%s' must be a list", fieldPath),
			"Use a YAML sequence")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New(errors.ErrConfigType,
				fmt.Sprintf("Configuration error: '%s' must be a list of strings", fieldPath),
				"Quote each entry")
		}
		out = append(out, s)
	}
	return out, nil
}
