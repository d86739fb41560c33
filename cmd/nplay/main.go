package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/nplay/internal/app"
	"github.com/kk-code-lab/nplay/internal/config"
	"github.com/kk-code-lab/nplay/internal/logging"
	"github.com/kk-code-lab/nplay/internal/media"
	"github.com/kk-code-lab/nplay/internal/playlist"
	"github.com/kk-code-lab/nplay/internal/textutil"
	"github.com/spf13/cobra"
)

var errNoPlaylists = errors.New("no playlist files given and none configured")

type cliFlags struct {
	configPath string
	filter     string
	logLevel   string
	logFile    string
	repeat     bool
	noAutoplay bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "nplay [FILE...]",
		Short: "nplay - terminal now-playing queue",
		Long: "nplay loads YouTube-style video playlists (JSON or YAML) into a queue you can\n" +
			"filter, reorder by selection and step through from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/nplay/config.yaml)")
	pf.StringVar(&flags.filter, "filter", "", "initial filter text")
	pf.BoolVar(&flags.repeat, "repeat", false, "wrap to the first video when the queue ends")
	pf.BoolVar(&flags.noAutoplay, "no-autoplay", false, "do not select the first video on start")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path")

	listCmd := &cobra.Command{
		Use:   "list [FILE...]",
		Short: "Print the filtered queue without starting the UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, args)
		},
	}
	rootCmd.AddCommand(listCmd)

	return rootCmd
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges config file, environment and explicitly set flags, in
// increasing order of precedence.
func loadSettings(cmd *cobra.Command, flags *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("filter") {
		cfg.Filter = flags.filter
	}
	if changed("repeat") {
		cfg.Repeat = flags.repeat
	}
	if changed("no-autoplay") {
		cfg.Autoplay = !flags.noAutoplay
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadVideos(cfg *config.Config, args []string) ([]media.Video, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Playlists
	}
	if len(paths) == 0 {
		return nil, errNoPlaylists
	}
	return media.LoadFiles(paths...)
}

func runUI(cmd *cobra.Command, flags *cliFlags, args []string) error {
	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	videos, err := loadVideos(cfg, args)
	if err != nil {
		logger.Error().Err(err).Msg("load playlists")
		return err
	}
	logger.Info().Str("config", cfg.Path()).Int("videos", len(videos)).Msg("nplay starting")

	app, err := apppkg.NewApplication(apppkg.Options{
		Videos:       videos,
		Filter:       cfg.Filter,
		Repeat:       cfg.Repeat,
		Autoplay:     cfg.Autoplay,
		TickInterval: cfg.TickInterval,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func runList(cmd *cobra.Command, flags *cliFlags, args []string) error {
	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}
	videos, err := loadVideos(cfg, args)
	if err != nil {
		return err
	}

	state := playlist.Reduce(nil, playlist.QueueVideosAction{Media: videos})
	state = playlist.Reduce(state, playlist.FilterChangeAction{Filter: cfg.Filter})
	view := playlist.FilterVideos(state.Videos, state.Filter)
	if cfg.Autoplay && len(view) > 0 {
		state = playlist.Reduce(state, playlist.SelectAction{Media: view[0]})
	}

	return printQueue(cmd.OutOrStdout(), state, view)
}

// printQueue writes one line per visible video: marker, queue position,
// title and duration.
func printQueue(out io.Writer, state *playlist.State, view []media.Video) error {
	titleWidth := 0
	for _, v := range view {
		if w := textutil.DisplayWidth(textutil.SanitizeTerminalText(v.Title())); w > titleWidth {
			titleWidth = w
		}
	}
	if titleWidth > 60 {
		titleWidth = 60
	}

	for _, v := range view {
		marker := " "
		if v.ID == state.SelectedID {
			marker = "▶"
		}
		duration := ""
		if d := v.Duration(); d > 0 {
			duration = media.FormatDuration(d)
		}
		title := textutil.PadRight(textutil.SanitizeTerminalText(v.Title()), titleWidth)
		if _, err := fmt.Fprintf(out, "%s %3d  %s  %s\n", marker, state.IndexOf(v.ID)+1, title, duration); err != nil {
			return err
		}
	}
	return nil
}
