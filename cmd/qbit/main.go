package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qbit-lang/qbit/parser"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

// app holds the state shared by all commands of one invocation.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "qbit",
		Short:         "Parse and lint qbit source code",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is ./.qbit.yaml or ~/.qbit.yaml)")
	pf.Int("max-depth", parser.DefaultMaxDepth, "maximum nesting depth")
	pf.Bool("trailing-commas", true, "accept trailing commas in lists")
	pf.Bool("no-color", false, "disable colored output")
	pf.StringP("output", "o", "text", "output format: text, json or yaml")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	if err := a.v.BindPFlags(pf); err != nil {
		fatal(err)
	}
	_ = root.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp))

	root.AddCommand(
		a.parseCmd(),
		a.astCmd(),
		a.lintCmd(),
		a.checkCmd(),
		a.tokensCmd(),
		a.vetCmd(),
	)
	return root
}

// initConfig reads the config file and environment and sets up logging.
// Flags take precedence over the environment, which takes precedence over
// the config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("QBIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	explicit := a.v.GetString("config")
	if explicit != "" {
		a.v.SetConfigFile(explicit)
	} else {
		a.v.SetConfigName(".qbit")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if a.v.GetBool("no-color") {
		color.NoColor = true
	}

	level := zerolog.InfoLevel
	if a.v.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    !a.useColor(),
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("path", filepath.Clean(used)).Msg("loaded config file")
	}
	return nil
}

// parserOptions returns the parser options selected by flags, environment
// and config file.
func (a *app) parserOptions() []parser.Option {
	return []parser.Option{
		parser.WithConfig(parser.Config{
			AllowTrailingCommas: a.v.GetBool("trailing-commas"),
			MaxRecursionDepth:   a.v.GetInt("max-depth"),
		}),
	}
}

// useColor reports whether output written to stdout should be colored.
func (a *app) useColor() bool {
	if a.v.GetBool("no-color") || color.NoColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
