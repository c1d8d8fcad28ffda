package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the default directory of the config files.
const Path = "infra/config"

// File returns the path of the default config file for the given key.
func File(key string) string {
	return filepath.Join(Path, fmt.Sprintf("%s.json", key))
}

// Load loads the json config at the given path into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", path, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded config")
	return nil
}
