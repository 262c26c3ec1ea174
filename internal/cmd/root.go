package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cheerioskun/minigrep/internal/config"
	"github.com/cheerioskun/minigrep/internal/export"
	"github.com/cheerioskun/minigrep/internal/models"
	"github.com/cheerioskun/minigrep/internal/runner"
	"github.com/cheerioskun/minigrep/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is reported by --version
var Version = "0.1.0"

// Execute runs the root command against the real filesystem and standard streams
func Execute() error {
	return NewRootCmd(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds the minigrep command. Each call gets its own viper instance.
func NewRootCmd(fs afero.Fs, in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetFs(fs)
	config.SetDefaults(v)

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "minigrep [case-insensitive] <query> <filename>",
		Short: "Print the lines of a file that contain a pattern",
		Long: `Search a file for lines containing a literal pattern.

The pattern is matched as a plain substring. Prefix the arguments with
'case-insensitive' to ignore case. A pattern starting with '-' must come
after '--'.

Examples:
  minigrep duct poem.txt
  minigrep case-insensitive rUst poem.txt
  minigrep --output json duct poem.txt
  minigrep --color --pager case-insensitive error app.log
  minigrep -- -v notes.txt`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, args, v, cfgFile, fs)
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return NewConfigError(fmt.Errorf("%w. %s", err, config.DashPatternHint))
	})

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "options file (default is $HOME/.minigrep.yaml)")
	flags.StringP("output", "o", config.FormatText, "output format: text or json")
	flags.Bool("color", false, "highlight matches in text output")
	flags.Bool("pager", false, "browse matches in an interactive pager")
	flags.String("save", "", "also write the JSON result to this file")
	flags.Bool("force", false, "allow --save to overwrite an existing file")
	flags.BoolP("quiet", "q", false, "do not print the search banner")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("log-file", config.DefaultLogFile(), "log file path")

	// Bind flags to viper
	for _, name := range []string{"output", "color", "pager", "save", "force", "quiet", "verbose", "log-file"} {
		v.BindPFlag(name, flags.Lookup(name))
	}

	return rootCmd
}

func runSearch(cmd *cobra.Command, args []string, v *viper.Viper, cfgFile string, fs afero.Fs) error {
	if err := config.ReadOptionsFile(v, cfgFile); err != nil {
		return NewConfigError(err)
	}

	opts, err := config.LoadOptions(v)
	if err != nil {
		return NewConfigError(err)
	}

	logger := utils.Configure(opts.LogFile, opts.Verbose)
	defer logger.Close()

	cfg, err := config.ParseArgs(append([]string{cmd.Root().Name()}, args...))
	if err != nil {
		var perr *config.ParseError
		if errors.As(err, &perr) && perr.Kind == config.WrongArgumentCount && shorthandUsed(cmd) {
			perr.Hint = config.DashPatternHint
		}
		utils.Warning("rejected arguments %q: %v", args, err)
		return NewConfigError(err)
	}

	out := cmd.OutOrStdout()

	diag := out
	if opts.Quiet || opts.Output == config.FormatJSON {
		diag = io.Discard
	}

	result, err := runner.New(fs, diag).Run(cfg)
	if err != nil {
		utils.Error("search failed: %v", err)
		return NewRuntimeError(err)
	}

	exporter := export.NewService(fs)

	if opts.SavePath != "" {
		saveOpts := export.SaveOptions{
			DestinationPath: opts.SavePath,
			Overwrite:       opts.Force,
		}
		if err := exporter.Save(result, saveOpts); err != nil {
			utils.Error("save failed: %v", err)
			return NewRuntimeError(err)
		}
		utils.Info("saved %d matches to %s", result.Count(), opts.SavePath)
	}

	if opts.Pager {
		var render func(models.Query, string) string
		if opts.Color {
			render = exporter.HighlightLine
		}
		if err := runPager(cmd.InOrStdin(), out, result, render); err != nil {
			return NewRuntimeError(err)
		}
		return nil
	}

	switch opts.Output {
	case config.FormatJSON:
		err = exporter.WriteJSON(out, result)
	default:
		err = exporter.WriteText(out, result, export.TextOptions{Highlight: opts.Color})
	}
	if err != nil {
		return NewRuntimeError(err)
	}

	return nil
}

// shorthandUsed reports whether a single-letter flag was set, which may have
// swallowed a pattern that starts with '-'
func shorthandUsed(cmd *cobra.Command) bool {
	used := false
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			used = true
		}
	})
	return used
}
