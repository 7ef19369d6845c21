package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the app root when -config is not given.
const DefaultFile = "fighter_tools.yaml"

// Tool selects which flags a command accepts.
type Tool int

const (
	ToolFighterValue Tool = iota
	ToolSubroleValidator
)

func (t Tool) String() string {
	if t == ToolSubroleValidator {
		return "subrole_validator"
	}
	return "fighter_value"
}

type Config struct {
	DataDir      string
	FightersFile string
	SubrolesFile string
	XLSXPath     string
	Strict       bool
	Verbose      bool
	// CompareA and CompareB are set when a trade comparison was requested.
	CompareA string
	CompareB string
}

// FightersPath resolves the fighters file against DataDir.
func (c Config) FightersPath() string {
	return resolve(c.DataDir, c.FightersFile)
}

// SubrolesPath resolves the subroles file against DataDir.
func (c Config) SubrolesPath() string {
	return resolve(c.DataDir, c.SubrolesFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// cliFlags holds what was parsed from the command line. set names the flags that
// actually appeared, so an unset flag never overrides the config file.
type cliFlags struct {
	config  string
	data    string
	xlsx    string
	compare string
	strict  bool
	verbose bool
	set     map[string]bool
}

func parseFlags(tool Tool, args []string) (cliFlags, error) {
	fs := flag.NewFlagSet(tool.String(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are returned, not printed

	var cf cliFlags
	fs.StringVar(&cf.config, "config", "", "path to config yaml (default: "+DefaultFile+" in the app root)")
	fs.StringVar(&cf.data, "data", "", "directory holding fighters.json and subroles.json")
	fs.StringVar(&cf.xlsx, "xlsx", "", "also export the report to this .xlsx path")
	fs.BoolVar(&cf.verbose, "verbose", false, "enable debug logging on stderr")
	switch tool {
	case ToolSubroleValidator:
		fs.BoolVar(&cf.strict, "strict", false, "treat warnings as failures")
	case ToolFighterValue:
		fs.StringVar(&cf.compare, "compare", "", "check a trade between two fighters: idA,idB")
	}

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if fs.NArg() > 0 {
		return cliFlags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	cf.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cf.set[f.Name] = true })
	return cf, nil
}

type FileConfig struct {
	DataDir      string `yaml:"data_dir"`
	FightersFile string `yaml:"fighters_file"`
	SubrolesFile string `yaml:"subroles_file"`
	XLSXPath     string `yaml:"xlsx_path"`
	Strict       *bool  `yaml:"strict"`
	Verbose      *bool  `yaml:"verbose"`
}

// Load builds the effective config: defaults, then the optional YAML file, then flags that were set.
func Load(appRoot string, tool Tool, args []string) (Config, error) {
	cf, err := parseFlags(tool, args)
	if err != nil {
		return Config{}, err
	}

	// Defaults
	cfg := Config{
		DataDir:      appRoot,
		FightersFile: "fighters.json",
		SubrolesFile: "subroles.json",
	}

	// Config file (optional unless given explicitly)
	path := strings.TrimSpace(cf.config)
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(appRoot, path)
	}
	fc, err := loadFileConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}

	// Apply file config
	if s := strings.TrimSpace(fc.DataDir); s != "" {
		cfg.DataDir = s
		if !filepath.IsAbs(s) {
			cfg.DataDir = filepath.Join(appRoot, s)
		}
	}
	if s := strings.TrimSpace(fc.FightersFile); s != "" {
		cfg.FightersFile = s
	}
	if s := strings.TrimSpace(fc.SubrolesFile); s != "" {
		cfg.SubrolesFile = s
	}
	cfg.XLSXPath = strings.TrimSpace(fc.XLSXPath)
	if cfg.XLSXPath != "" && !filepath.IsAbs(cfg.XLSXPath) {
		cfg.XLSXPath = filepath.Join(appRoot, cfg.XLSXPath)
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}

	// Overlay flags (only if provided); flag paths are relative to the working directory.
	if cf.set["data"] {
		cfg.DataDir = strings.TrimSpace(cf.data)
	}
	if cf.set["xlsx"] {
		cfg.XLSXPath = strings.TrimSpace(cf.xlsx)
	}
	if cf.set["verbose"] {
		cfg.Verbose = cf.verbose
	}
	if cf.set["strict"] {
		cfg.Strict = cf.strict
	}
	if cf.set["compare"] {
		a, b, err := parseCompare(cf.compare)
		if err != nil {
			return Config{}, err
		}
		cfg.CompareA, cfg.CompareB = a, b
	}

	if cfg.XLSXPath != "" && !strings.EqualFold(filepath.Ext(cfg.XLSXPath), ".xlsx") {
		return Config{}, fmt.Errorf("xlsx path %q must end with .xlsx", cfg.XLSXPath)
	}
	return cfg, nil
}

func parseCompare(v string) (string, string, error) {
	a, b, ok := strings.Cut(v, ",")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" || strings.Contains(b, ",") {
		return "", "", fmt.Errorf("invalid -compare %q (expected idA,idB)", v)
	}
	return a, b, nil
}

func loadFileConfig(path string, required bool) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config yaml %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return FileConfig{}, nil
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return fc, nil
}
