package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/valentine/audio"
	"github.com/lixenwraith/valentine/config"
	"github.com/lixenwraith/valentine/engine"
	"github.com/lixenwraith/valentine/media"
	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
	"github.com/lixenwraith/valentine/render"
	"github.com/lixenwraith/valentine/service"
	"github.com/lixenwraith/valentine/terminal"
)

var (
	configPath string
	audioPath  string
	seed       uint64
	fps        int
	colorMode  string
	noAudio    bool
	debugLog   bool
)

var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "Will you be my Valentine? Asked in the terminal",
	Long: `valentine asks the question and keeps asking.

Keys: y/Enter yes, n no, m music on/off, q/Esc quit. The mouse works too.
Settings come from defaults, then the config file, then VALENTINE_* variables, then flags.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         run,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the effective settings to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, false)
		if err != nil {
			return err
		}
		path := resolvedConfigPath()
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&audioPath, "audio", "", "music file, .mp3 or .wav (empty plays a built-in melody)")
	flags.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.IntVar(&fps, "fps", parameter.DefaultFPS, "frames per second")
	flags.StringVar(&colorMode, "color", config.ColorAuto, "color mode: auto, truecolor, 256")
	flags.BoolVar(&noAudio, "no-audio", false, "disable music")
	flags.BoolVar(&debugLog, "debug", false, "write a debug log to the log directory")

	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig layers flags the user set over the file and environment
// An explicit --config must exist unless mustExist is false
func loadConfig(cmd *cobra.Command, mustExist bool) (*config.Config, error) {
	if configPath != "" && mustExist {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("audio") {
		cfg.Audio.Path = audioPath
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = fps
	}
	if flags.Changed("color") {
		cfg.Render.Color = colorMode
	}
	if noAudio {
		cfg.Audio.Enabled = false
	}
	if debugLog {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("valentine needs an interactive terminal")
	}

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer closeLog()

	lib := media.Default().WithAudio(cfg.Audio.Path)
	rng := proposal.NewRandom(cfg.Seed)
	mailbox := engine.NewMailbox(64)

	screenSvc := terminal.NewScreenService(nil)
	audioSvc := audio.NewService(audio.Options{
		Enabled: cfg.Audio.Enabled,
		Path:    lib.Audio,
		Volume:  cfg.Audio.Volume,
		Loop:    cfg.Audio.Loop,
	}, func(fn func()) { mailbox.Post(fn) }, logger.Named("audio"))

	hub := service.NewHub(logger.Named("hub"))
	for _, svc := range []service.Service{screenSvc, audioSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	// Panic recovery: the terminal must be usable again whatever happens in the loop
	defer func() {
		if r := recover(); r != nil {
			screenSvc.EmergencyReset()
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVALENTINE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			logger.Error("panic", zap.Any("panic", r), zap.Stack("stack"))
			closeLog()
			os.Exit(1)
		}
	}()

	err = hub.InitAll(map[string][]any{
		screenSvc.Name(): {terminal.ParseColorMode(cfg.Render.Color), cfg.Render.Mouse},
		audioSvc.Name():  {!cfg.Audio.Enabled},
	})
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	toasts := notify.NewQueue(parameter.ToastMaxVisible, time.Now)
	machine, err := proposal.NewMachine(lib, rng,
		proposal.WithSink(toasts),
		proposal.WithLogger(logger.Named("proposal")),
	)
	if err != nil {
		return err
	}

	music := audio.NewController(audioSvc.Transport(), toasts, logger.Named("music"))
	music.Start(cfg.Audio.Volume, cfg.Audio.Loop)

	game := engine.NewGame(screenSvc.Screen(), machine, music, toasts, render.NewRenderer(rng), mailbox,
		engine.WithFPS(cfg.Render.FPS),
		engine.WithLogger(logger.Named("engine")),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("started",
		zap.Uint64("seed", cfg.Seed),
		zap.Bool("audio", !audioSvc.IsDisabled()),
		zap.Int("fps", cfg.Render.FPS),
	)
	return game.Run(ctx, screenSvc.Events())
}
