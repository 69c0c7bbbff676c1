package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordnet/internal/app"
	"wordnet/internal/config"
)

var (
	configPath string
	flags      config.Config
	noCache    bool
	rt         *app.App
)

var rootCmd = &cobra.Command{
	Use:   "wordnet-cli",
	Short: "Query the WordNet noun taxonomy",
	Long: `wordnet-cli answers shortest ancestral path questions over the WordNet
noun hierarchy: how related two nouns are, which concept links them, and
which noun of a group does not belong.

Taxonomy files are read from --synsets and --hypernyms (or the config file)
and cached in SQLite so later runs start quickly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		if f.Changed("synsets") {
			cfg.Synsets = flags.Synsets
		}
		if f.Changed("hypernyms") {
			cfg.Hypernyms = flags.Hypernyms
		}
		if f.Changed("log-level") {
			cfg.LogLevel = flags.LogLevel
		}
		if noCache {
			cfg.Cache = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		rt = app.New(cfg, os.Stderr)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt != nil {
			return rt.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/wordnet/config.yaml)")
	pf.StringVar(&flags.Synsets, "synsets", config.DefaultSynsets, "path to synsets.txt")
	pf.StringVar(&flags.Hypernyms, "hypernyms", config.DefaultHypernyms, "path to hypernyms.txt")
	pf.StringVar(&flags.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&noCache, "no-cache", false, "always parse the taxonomy files")
}

// GetApp returns the initialized app
func GetApp() *app.App {
	return rt
}
