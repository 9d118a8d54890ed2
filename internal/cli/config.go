package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// defaultConfigFile is looked for in the working directory when --config
// is not given.
const defaultConfigFile = "toccata.toml"

// fileConfig mirrors the toccata.toml schema. Zero values leave the
// corresponding extractor defaults untouched.
//
//	line_tolerance = 2.5
//	title_tolerance = 1.0
//	exclude_repeats = true
//	sequential = false
type fileConfig struct {
	LineTolerance  float64 `toml:"line_tolerance"`
	TitleTolerance float64 `toml:"title_tolerance"`
	ExcludeRepeats bool    `toml:"exclude_repeats"`
	Sequential     bool    `toml:"sequential"`
}

// loadConfig reads the TOML config file. A missing default file is fine;
// a missing explicitly named file is an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
