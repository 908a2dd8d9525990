package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/studio-wiz/iconmaker/internal/export"
	"github.com/studio-wiz/iconmaker/internal/render"
)

const (
	EnvOut       = "ICONMAKER_OUT"
	EnvPlatforms = "ICONMAKER_PLATFORMS"
	EnvFont      = "ICONMAKER_FONT"
	EnvPreview   = "ICONMAKER_PREVIEW"
	EnvDebug     = "ICONMAKER_DEBUG"
	EnvStdioLog  = "ICONMAKER_STDIO_LOG"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"

	DefaultPreviewTimeout = 10 * time.Second
)

// Config contains everything a run needs.
//
// Precedence, lowest first: built-in defaults, .env, process environment, flags.
type Config struct {
	OutDir         string
	Platforms      []export.Platform
	FontName       string
	Preview        bool
	PreviewTimeout time.Duration
	Debug          bool
	StdioLog       string
}

// Defaults returns the built-in configuration: every platform, written below the working directory.
func Defaults() Config {
	return Config{
		OutDir:         ".",
		Platforms:      export.AllPlatforms(),
		FontName:       render.DefaultFontName,
		PreviewTimeout: DefaultPreviewTimeout,
	}
}

// LoadDotEnv merges variables from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// FromEnv applies environment overrides on top of Defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Defaults()

	if v := getenv(EnvOut); v != "" {
		cfg.OutDir = v
	}
	if v := getenv(EnvPlatforms); v != "" {
		platforms, err := export.ParsePlatforms(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s", EnvPlatforms)
		}
		cfg.Platforms = platforms
	}
	if v := getenv(EnvFont); v != "" {
		cfg.FontName = v
	}
	var err error
	if cfg.Preview, err = parseBool(getenv, EnvPreview); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = parseBool(getenv, EnvDebug); err != nil {
		return Config{}, err
	}
	cfg.StdioLog = getenv(EnvStdioLog)
	return cfg, nil
}

func parseBool(getenv func(string) string, key string) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "%s must be a boolean (got %q)", key, raw)
	}
	return parsed, nil
}

// Parse registers the command line flags on fs, using cfg as defaults,
// parses args and returns the merged configuration.
func Parse(fs *flag.FlagSet, args []string, cfg Config) (Config, error) {
	platforms := joinPlatforms(cfg.Platforms)

	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "project root the icon paths are relative to; also configurable via "+EnvOut)
	fs.StringVar(&platforms, "platforms", platforms, "comma separated platforms to export (android,ios,windows,web); also configurable via "+EnvPlatforms)
	fs.StringVar(&cfg.FontName, "font", cfg.FontName, "label font file name or path; also configurable via "+EnvFont)
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "show the icon on the Linux framebuffer after exporting; also configurable via "+EnvPreview)
	fs.DurationVar(&cfg.PreviewTimeout, "preview-timeout", cfg.PreviewTimeout, "how long the preview stays on screen")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to ./iconmaker-debug.log; also configurable via "+EnvDebug)
	fs.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	parsed, err := export.ParsePlatforms(platforms)
	if err != nil {
		return Config{}, errors.Wrap(err, "-platforms")
	}
	cfg.Platforms = parsed
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.PreviewTimeout <= 0 {
		return Config{}, errors.Errorf("-preview-timeout must be positive (got %s)", cfg.PreviewTimeout)
	}
	return cfg, nil
}

func joinPlatforms(platforms []export.Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}
