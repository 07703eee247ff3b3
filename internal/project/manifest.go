// Package project reads clangview.toml, the per-project configuration of
// compiler arguments, source globs, the compilation database, output and
// the documentation cache.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"clangview/internal/kinds"
)

// Manifest is a loaded clangview.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// Unknown lists keys of the file that no setting reads.
	Unknown []string
}

type Config struct {
	Parse   ParseConfig   `toml:"parse"`
	Sources SourcesConfig `toml:"sources"`
	CompDB  CompDBConfig  `toml:"compdb"`
	Output  OutputConfig  `toml:"output"`
	Cache   CacheConfig   `toml:"cache"`
}

type ParseConfig struct {
	Args        []string `toml:"args"`
	IncludeDirs []string `toml:"include_dirs"`
	Defines     []string `toml:"defines"`
	Std         string   `toml:"std"`
	// Flags are parse option names, e.g. "detailed_preprocessing_record".
	Flags []string `toml:"flags"`
}

type SourcesConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type CompDBConfig struct {
	// Dir holds compile_commands.json, relative to the project root.
	Dir string `toml:"dir"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the settings used without a manifest.
func Default() Config {
	return Config{
		Sources: SourcesConfig{Include: []string{"**/*.c", "**/*.h"}},
		Output:  OutputConfig{Color: "auto"},
		Cache:   CacheConfig{Enabled: true},
	}
}

// LoadManifest finds clangview.toml above startDir and loads it. ok is
// false when there is none.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	return m, true, err
}

// Load decodes and validates the manifest at path. Missing settings keep
// their Default values.
func Load(path string) (*Manifest, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m := &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}
	for _, k := range meta.Undecoded() {
		m.Unknown = append(m.Unknown, k.String())
	}
	if meta.IsDefined("sources") && !meta.IsDefined("sources", "include") {
		return nil, fmt.Errorf("%s: [sources] needs include", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (c *Config) validate() error {
	for _, pat := range append(append([]string(nil), c.Sources.Include...), c.Sources.Exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("[sources]: invalid glob %q", pat)
		}
	}
	if _, err := c.ParseFlags(); err != nil {
		return fmt.Errorf("[parse].flags: %w", err)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: invalid value %q (expected auto|on|off)", c.Output.Color)
	}
	return nil
}

// ParseFlags combines [parse].flags.
func (c *Config) ParseFlags() (kinds.ParseFlags, error) {
	return kinds.ParseParseFlags(c.Parse.Flags)
}

// CompilerArgs returns the command line for files without a compilation
// database entry: include dirs, defines and std, then the raw args.
// Relative include dirs are resolved against root.
func (c *Config) CompilerArgs(root string) []string {
	var args []string
	for _, dir := range c.Parse.IncludeDirs {
		if !filepath.IsAbs(dir) && root != "" {
			dir = filepath.Join(root, dir)
		}
		args = append(args, "-I"+dir)
	}
	for _, def := range c.Parse.Defines {
		args = append(args, "-D"+def)
	}
	if std := strings.TrimSpace(c.Parse.Std); std != "" {
		args = append(args, "-std="+std)
	}
	return append(args, c.Parse.Args...)
}

// CompDBDir returns the compilation database directory, or "".
func (m *Manifest) CompDBDir() string {
	dir := m.Config.CompDB.Dir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}

// CacheDir returns the configured cache directory, or "" for the user
// cache directory.
func (m *Manifest) CacheDir() string {
	dir := m.Config.Cache.Dir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, dir)
}
