package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls presentation and diagnostics. None of it changes what matches.
type Options struct {
	Output   string
	Color    bool
	Pager    bool
	Quiet    bool
	Verbose  bool
	LogFile  string
	SavePath string
	Force    bool
}

// DefaultLogFile returns the log path used when none is configured
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "minigrep.log")
}

// SetDefaults registers default option values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", FormatText)
	v.SetDefault("color", false)
	v.SetDefault("pager", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log-file", DefaultLogFile())
	v.SetDefault("save", "")
	v.SetDefault("force", false)
}

// ReadOptionsFile loads an options file into v. An explicit path must exist;
// without one, $HOME/.minigrep.yaml is used when present.
func ReadOptionsFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	v.AddConfigPath(home)
	v.SetConfigName(".minigrep")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// LoadOptions reads and validates options from v
func LoadOptions(v *viper.Viper) (*Options, error) {
	opts := &Options{
		Output:   strings.ToLower(strings.TrimSpace(v.GetString("output"))),
		Color:    v.GetBool("color"),
		Pager:    v.GetBool("pager"),
		Quiet:    v.GetBool("quiet"),
		Verbose:  v.GetBool("verbose"),
		LogFile:  v.GetString("log-file"),
		SavePath: v.GetString("save"),
		Force:    v.GetBool("force"),
	}

	switch opts.Output {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q: must be '%s' or '%s'", opts.Output, FormatText, FormatJSON)
	}

	if opts.Pager && opts.Output == FormatJSON {
		return nil, fmt.Errorf("--pager cannot be combined with --output %s", FormatJSON)
	}

	if opts.Force && opts.SavePath == "" {
		return nil, fmt.Errorf("--force requires --save")
	}

	return opts, nil
}
