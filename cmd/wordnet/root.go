package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet"
	"github.com/katalvlaran/wordnet/config"
	"github.com/katalvlaran/wordnet/loader"
	"github.com/katalvlaran/wordnet/logging"
)

// app carries flag values and lazily loaded state shared by subcommands.
type app struct {
	configPath string
	synsets    string
	hypernyms  string
	cacheDir   string
	logLevel   string
	dev        bool
	colorMode  string

	cfg    config.Config
	logger *zap.Logger
	label  *color.Color

	once sync.Once
	wn   *wordnet.WordNet
	err  error
}

// rootCmd builds the command tree bound to a.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "wordnet",
		Short:             "Semantic distance between nouns of a WordNet taxonomy",
		Long:              "wordnet measures how related two nouns are by the shortest ancestral path between their synsets.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&a.synsets, "synsets", "", "synset file (overrides config)")
	pf.StringVar(&a.hypernyms, "hypernyms", "", "hypernym file (overrides config)")
	pf.StringVar(&a.cacheDir, "cache-dir", "", "snapshot cache directory (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&a.dev, "dev", false, "human-readable development logs")
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(
		a.distanceCmd(),
		a.sapCmd(),
		a.relationCmd(),
		a.isNounCmd(),
		a.nounsCmd(),
		a.statsCmd(),
		a.outcastCmd(),
		a.digraphCmd(),
		a.snapshotCmd(),
	)

	return root
}

// setup resolves configuration (defaults < file < env < flags) and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("synsets") {
		cfg.Synsets = a.synsets
	}
	if flags.Changed("hypernyms") {
		cfg.Hypernyms = a.hypernyms
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = a.cacheDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("dev") {
		cfg.Log.Development = a.dev
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = logging.New(cfg.Log); err != nil {
		return err
	}

	a.label = color.New(color.FgCyan, color.Bold)
	switch a.colorMode {
	case "on":
		a.label.EnableColor()
	case "off":
		a.label.DisableColor()
	case "auto":
	default:
		return fmt.Errorf("--color: want auto, on or off, got %q", a.colorMode)
	}

	return nil
}

// wordnet loads the taxonomy once per process.
func (a *app) wordnet(cmd *cobra.Command) (*wordnet.WordNet, error) {
	a.once.Do(func() {
		src := loader.Source{Synsets: a.cfg.Synsets, Hypernyms: a.cfg.Hypernyms}
		tx, err := loader.Load(cmd.Context(), src,
			loader.WithCacheDir(a.cfg.CacheDir),
			loader.WithLogger(a.logger),
		)
		if err != nil {
			a.err = err
			return
		}
		a.wn, a.err = wordnet.New(tx)
	})

	return a.wn, a.err
}

// sync flushes buffered log entries. Errors are dropped: stderr reports
// EINVAL on sync when it is a terminal.
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// printf writes a labelled line: the label is colored, the value is not.
func (a *app) printf(w io.Writer, label, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", a.label.Sprint(label+":"), fmt.Sprintf(format, args...))
}
