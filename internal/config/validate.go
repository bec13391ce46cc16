package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tfprep/tfprep/internal/errors"
)

// knownCategories is the set of category keys prepare reads.
var knownCategories = map[string]bool{
	CategoryBackendConfigs: true,
	CategoryVarFiles:       true,
	CategoryInitArgs:       true,
	CategoryPlanArgs:       true,
	CategoryApplyArgs:      true,
}

// IsPathCategory reports whether category carries paths rather than args.
func IsPathCategory(category string) bool {
	return category == CategoryBackendConfigs || category == CategoryVarFiles
}

// Validate shape-checks every category block in the document without
// touching the filesystem. It returns lint warnings (unknown keys, settings
// with no effect) and the first structural error found.
func (d *Document) Validate() ([]string, error) {
	var warnings []string

	for _, category := range sortedKeys(d.Defaults) {
		if !knownCategories[category] {
			warnings = append(warnings,
				fmt.Sprintf("unknown key '.defaults.%s' is ignored", category))
			continue
		}
		fieldPath := ".defaults." + category
		cat, err := decodeCategory(d.Defaults[category], fieldPath)
		if err != nil {
			return warnings, err
		}
		if cat.Inherit != nil {
			warnings = append(warnings,
				fmt.Sprintf("'%s.inherit' has no effect; inherit belongs on environment categories", fieldPath))
		}
		if err := checkEntryList(cat, category, fieldPath, &warnings); err != nil {
			return warnings, err
		}
	}

	for _, env := range d.EnvironmentNames() {
		e := d.Environments[env]
		if e.WorkingDirectory != nil && strings.TrimSpace(*e.WorkingDirectory) == "" {
			return warnings, errors.New(errors.ErrWorkdir,
				fmt.Sprintf("Configuration error: '.environments.%s.working-directory' must not be blank", env),
				"Remove the key to use the caller default, or point it at a directory")
		}
		for _, category := range sortedKeys(e.Categories) {
			if !knownCategories[category] {
				warnings = append(warnings,
					fmt.Sprintf("unknown key '.environments.%s.%s' is ignored", env, category))
				continue
			}
			fieldPath := fmt.Sprintf(".environments.%s.%s", env, category)
			cat, err := decodeCategory(e.Categories[category], fieldPath)
			if err != nil {
				return warnings, err
			}
			if _, err := boolOrTrue(cat.Inherit, fieldPath+".inherit"); err != nil {
				return warnings, err
			}
			if err := checkEntryList(cat, category, fieldPath, &warnings); err != nil {
				return warnings, err
			}
		}
	}

	return warnings, nil
}

// checkEntryList validates the list the category kind reads and warns when
// the block declares the one it does not.
func checkEntryList(cat Category, category, fieldPath string, warnings *[]string) error {
	if IsPathCategory(category) {
		if _, err := stringList(cat.Paths, fieldPath+".paths"); err != nil {
			return err
		}
		if cat.Args != nil {
			*warnings = append(*warnings,
				fmt.Sprintf("'%s.args' is ignored for a paths category; use paths", fieldPath))
		}
		return nil
	}

	if _, err := stringList(cat.Args, fieldPath+".args"); err != nil {
		return err
	}
	if cat.Paths != nil {
		*warnings = append(*warnings,
			fmt.Sprintf("'%s.paths' is ignored for an args category; use args", fieldPath))
	}
	return nil
}

func sortedKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
