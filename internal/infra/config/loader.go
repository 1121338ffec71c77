package config

import (
	"os"
	"path/filepath"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace configuration file name.
const ConfigFile = "dataprep.yaml"

// Load reads dataprep.yaml from the workspace root and applies defaults.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, ConfigFile)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y.Dataprep)
}
