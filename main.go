// saving-merica is a side-scrolling arcade shooter: fly the jet, dodge
// missiles, and bring down the boss that shows up after ten seconds.
//
// Usage:
//
//	saving-merica [flags]
//
// Flags:
//
//	--config <path>     - YAML config overriding the built-in defaults
//	--assets <dir>      - directory holding images and sounds
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
//	--lenient           - draw rectangles and beep when assets are missing
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"SavingMerica/internal/assets"
	"SavingMerica/internal/config"
	"SavingMerica/internal/game"
	"SavingMerica/internal/sound"
	"SavingMerica/internal/world"
)

var (
	flagConfig   string
	flagAssets   string
	flagSeed     int64
	flagLogLevel string
	flagLenient  bool
)

var rootCmd = &cobra.Command{
	Use:   "saving-merica",
	Short: "Saving 'Merica - shoot down the boss before the missiles get you",
	Long: `Saving 'Merica is a 2D arcade shooter.

Controls:
  Arrows  - Fly
  Space   - Start / Fire
  Esc     - Quit

The boss appears after ten seconds. Ten frames of hits bring it down.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagLenient, "lenient", false, "Use fallbacks for missing assets")
}

// stderr receives every log line and the final error report.
var stderr io.Writer = os.Stderr

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute runs the root command and reports a failure exactly once.
func execute(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		log.NewWithOptions(stderr, log.Options{Prefix: "merica"}).Error("exiting", "error", err)
		return 1
	}
	return 0
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "merica",
		Level:           level,
	})
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	logger.SetStyles(styles)
	return logger, nil
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets.Dir = flagAssets
	}
	if flagLenient {
		cfg.Assets.Lenient = true
	}

	art, err := assets.Load(cfg, logger)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	sfx, err := sound.Load(cfg, logger)
	if err != nil {
		return fmt.Errorf("load sounds: %w", err)
	}
	defer sfx.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "seed", seed, "tps", cfg.Screen.TPS, "assets", cfg.Assets.Dir)

	session := world.NewSession(cfg, art.Sizes(), rand.New(rand.NewSource(seed)))
	g := game.New(cfg, session, art, sfx, logger)

	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetTPS(cfg.Screen.TPS)
	ebiten.SetWindowClosingHandled(true)

	sfx.StartMusic()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}
