package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is read when present; --config names another file.
const defaultConfigPath = "~/.skim/config.yaml"

// YAMLConfig is a kong.ConfigurationLoader for YAML files. Keys are flag
// names; nested maps are joined with hyphens, so "serve: {addr: :9000}"
// sets --addr and "log: {level: debug}" sets --log-level. Underscores in
// keys are read as hyphens.
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	values := make(map[string]any)
	flattenConfig("", true, raw, values)

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}
		return v, nil
	}), nil
}

// flattenConfig copies src into dst keyed by hyphen-joined paths. Scalars
// become strings and lists become comma-separated strings so that kong's
// own mappers parse them like command-line values. Command names at the
// top level are dropped from the path.
func flattenConfig(prefix string, top bool, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := strings.ReplaceAll(strings.ToLower(k), "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}
		switch v := v.(type) {
		case map[string]any:
			if top && commandNames[key] {
				flattenConfig("", false, v, dst)
				continue
			}
			flattenConfig(key, false, v, dst)
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			dst[key] = strings.Join(parts, ",")
		case nil:
		default:
			dst[key] = fmt.Sprint(v)
		}
	}
}

var commandNames = map[string]bool{
	"summarize": true,
	"batch":     true,
	"serve":     true,
	"history":   true,
	"show":      true,
	"delete":    true,
	"export":    true,
	"prune":     true,
	"watch":     true,
	"mcp":       true,
}

// defaultDBPath returns ~/.skim/skim.db. The directory is created when the
// database is first opened.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "skim.db"
	}
	return filepath.Join(home, ".skim", "skim.db")
}
