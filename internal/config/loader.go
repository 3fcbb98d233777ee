// Package config loads treelint configuration files and compiles them
// into the resolved form the lint engine consumes.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// knownRuleKeys are the rule sections a config file may contain. Any
// other key under rules is a defect, not a typo to ignore silently.
var knownRuleKeys = map[string]bool{
	"server_side_exports":        true,
	"component_nesting_depth":    true,
	"filename_style_consistency": true,
	"missing_companion_files":    true,
	"file_organization":          true,
}

// Load reads configuration with the usual layering, lowest to highest
// precedence: defaults, config file, TREELINT_ environment variables,
// explicitly set CLI flags. cfgFile may be "" for defaults only.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":  DefaultFormat,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), parserFor(cfgFile)); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// TREELINT_FORMAT=json -> format
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	for _, key := range k.MapKeys("rules") {
		if !knownRuleKeys[key] {
			return nil, fmt.Errorf("unknown rule %q in configuration", key)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// parserFor picks the file parser by extension. YAML is the default; it
// also accepts plain JSON documents.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser()
	default:
		return yaml.Parser()
	}
}
