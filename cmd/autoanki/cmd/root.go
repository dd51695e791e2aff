// Package cmd contains all CLI commands for autoanki.
package cmd

import (
	"errors"
	"fmt"

	"github.com/f3rmion/autoanki/internal/anki"
	"github.com/f3rmion/autoanki/internal/clipboard"
	"github.com/f3rmion/autoanki/internal/config"
	"github.com/f3rmion/autoanki/internal/httpx"
	"github.com/f3rmion/autoanki/internal/job"
	"github.com/f3rmion/autoanki/internal/ldoce"
	"github.com/f3rmion/autoanki/internal/logging"
	"github.com/f3rmion/autoanki/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	readErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "autoanki [word...]",
	Short: "Turn LDOCE dictionary entries into AnkiWeb notes",
	Long: `autoanki looks up each word in the Longman Dictionary of Contemporary
English, builds a note from the first three entries and saves it to your
AnkiWeb deck.

Every word is processed concurrently and reported on its own line:
  [✓] word
  [✗] word detail: <reason>

Running 'autoanki' without words takes one word from the clipboard.

Example:
  autoanki abandon
  autoanki "give up" reluctant --tui`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/autoanki/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.Flags().Bool("tui", false, "show a live progress view")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set. Errors surface
// from the commands that need the configuration.
func initConfig() {
	readErr = config.Read(viper.GetViper(), cfgFile)
}

// loadConfig returns the configuration, requiring a complete AnkiWeb session
// when validate is set.
func loadConfig(validate bool) (*config.Config, error) {
	if readErr != nil {
		return nil, readErr
	}
	if validate {
		return config.Load(viper.GetViper())
	}
	return config.Decode(viper.GetViper())
}

func newLogger(quiet bool) *zap.Logger {
	verbose := viper.GetBool("verbose")
	if quiet && !verbose {
		return logging.Nop()
	}
	return logging.New(verbose)
}

func newDictionary(cfg *config.Config, logger *zap.Logger) *ldoce.Client {
	return ldoce.NewClient(cfg.Dictionary.BaseURL, cfg.UserAgent, httpx.NewClient(cfg.Timeout), logger)
}

// wordsOrClipboard returns args, or the clipboard text when no words are given.
func wordsOrClipboard(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	text, err := clipboard.Read()
	if err != nil {
		return nil, fmt.Errorf("no words given: %w", err)
	}
	if text == "" {
		return nil, errors.New("no words given and the clipboard is empty")
	}
	return []string{text}, nil
}

// runRoot saves a note per word. Per-word failures are reported, never
// returned.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	session, err := cfg.Session()
	if err != nil {
		return err
	}

	words, err := wordsOrClipboard(args)
	if err != nil {
		return err
	}

	useTUI, _ := cmd.Flags().GetBool("tui")
	logger := newLogger(useTUI)
	defer func() { _ = logger.Sync() }()

	httpClient := httpx.NewClient(cfg.Timeout)
	dict := ldoce.NewClient(cfg.Dictionary.BaseURL, cfg.UserAgent, httpClient, logger)
	saver := anki.NewClient(cfg.Anki.Endpoint, session, httpClient, logger)

	ctx := cmd.Context()
	reporter := tui.NewReporter(cmd.OutOrStdout(), words)

	if !useTUI {
		job.NewRunner(dict, saver, logger, job.WithObserver(reporter.Report)).Run(ctx, words)
		return nil
	}

	outcomes, view, err := tui.RunProgress(words, func(observe job.Observer) []job.Outcome {
		return job.NewRunner(dict, saver, logger, job.WithObserver(observe)).Run(ctx, words)
	})
	if err != nil || view.Interrupted() {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
		}
		for _, o := range outcomes {
			reporter.Report(o)
		}
	}
	return nil
}
