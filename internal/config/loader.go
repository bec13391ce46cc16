package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tfprep/tfprep/internal/errors"
)

const (
	// ConfigFileName is the preferred deploy document name.
	ConfigFileName = ".tfprep.yaml"
	// ConfigFileNameAlt is the accepted alternate extension.
	ConfigFileNameAlt = ".tfprep.yml"
)

// Find locates the deploy document using the search order:
// 1. Explicit path (from --config flag); it must exist.
// 2. .tfprep.yaml at the repository root.
// 3. .tfprep.yml at the repository root.
//
// Returns the path to the document, or empty string if the repository
// carries none. Absence is not an error.
func Find(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrEnv,
					"Specified config file not found: "+explicit,
					"Check the --config path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrEnv,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", nil
}

// Load reads and decodes the deploy document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrEnv,
				"Config file not found: "+path,
				"Check the path is correct")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check file permissions")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// yaml returns *TypeError unwrapped when the document is valid
		// YAML but the wrong shape.
		if _, ok := err.(*yaml.TypeError); ok {
			return nil, errors.WrapWithCode(err, errors.ErrConfigType,
				"Config file has the wrong shape: "+filepath.Base(path),
				"defaults and environments must be mappings")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file: "+filepath.Base(path),
			"Check the document for YAML syntax errors")
	}

	return &doc, nil
}

// LoadOrEmpty finds and loads the deploy document. When the repository
// carries none, it returns an empty document and an empty path; the run
// then proceeds on caller-supplied defaults alone.
func LoadOrEmpty(root, explicit string) (*Document, string, error) {
	path, err := Find(root, explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return Empty(), "", nil
	}

	doc, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
