package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oukeidos/gt/internal/cleanup"
	"github.com/oukeidos/gt/internal/config"
	"github.com/oukeidos/gt/internal/files"
	"github.com/oukeidos/gt/internal/gtclient"
	"github.com/oukeidos/gt/internal/httpclient"
	"github.com/oukeidos/gt/internal/language"
	"github.com/oukeidos/gt/internal/logger"
	"github.com/oukeidos/gt/internal/notify"
	"github.com/oukeidos/gt/internal/version"
	"github.com/spf13/cobra"
)

var loadConfig = config.Load

// options are the parsed command line of one popup session.
type options struct {
	selection  string
	timeout    float64
	translit   bool
	seeAlso    notify.SeeAlso
	system     bool
	sourceLang string
	targetLang string
	debug      bool
	logFile    string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unrecovered GUI panic", "scope", "main", "panic", fmt.Sprint(r))
			os.Exit(1)
		}
	}()

	err := newRootCmd(runApp).Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(run func(*config.Config, options) error) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "gt-notify [flags] [<source> <target>]",
		Short: "Translate the current selection in a desktop popup",
		Long: `Translate the current selection in a desktop popup.

Without languages, the pair used last time is reused (auto -> en at first).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
			case 2:
				opts.sourceLang, opts.targetLang = args[0], args[1]
			default:
				_ = cmd.Usage()
				return fmt.Errorf("expected <source> <target> or no arguments, got %d arguments", len(args))
			}
			if err := notify.ValidateSelection(opts.selection); err != nil {
				return err
			}
			if opts.timeout < 0 {
				return fmt.Errorf("timeout must not be negative")
			}
			if opts.targetLang == language.Auto {
				return language.ValidateTarget(opts.targetLang)
			}
			cfg, err := setup(&opts)
			if err != nil {
				return err
			}
			return run(cfg, opts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info("gt-notify")
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().StringVarP(&opts.selection, "selection", "S", "primary", "Selection to read: primary, secondary, or clipboard")
	cmd.Flags().Float64VarP(&opts.timeout, "timeout", "T", 0, "Seconds before the popup closes; 0 keeps it open")
	cmd.Flags().BoolVarP(&opts.translit, "translit", "t", false, "Include translation transliteration")
	cmd.Flags().VarP(&opts.seeAlso, "see-also", "a", `Map the "see also" list to buttons: no, yes, or the first <n> entries`)
	cmd.Flags().BoolVar(&opts.system, "system", false, "Send a system notification instead of opening a popup")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Path to a rotating JSONL log file")
	return cmd
}

func setup(opts *options) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level := logger.ParseLevel(cfg.Log.Level)
	if opts.debug {
		level = logger.LevelDebug
	}
	logPath := cfg.Log.File
	if opts.logFile != "" {
		logPath = opts.logFile
	}
	var logFileW io.Writer
	if logPath != "" {
		if err := files.RejectSymlinkPath(logPath); err != nil {
			return nil, err
		}
		w := logger.OpenFile(logPath)
		cleanup.Register("log file", w.Close)
		logFileW = w
	}
	logger.Init(level, logFileW)
	return cfg, nil
}

func newClient(cfg *config.Config) *gtclient.Client {
	client := gtclient.New(cfg.Endpoint, cfg.UserAgent)
	client.HTTPClient = httpclient.NewClient(cfg.Timeout)
	return client
}

func (o options) closeAfter() time.Duration {
	return time.Duration(o.timeout * float64(time.Second))
}
