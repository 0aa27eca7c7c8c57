package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/audio"
	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/core"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/systems"
	"github.com/lixenwraith/rocket/terminal"
)

var (
	framesFlag = flag.String("frames", "", "Load frame art from this directory instead of the built-in set")
	logFlag    = flag.Bool("log", false, "Write a log to "+constants.LogDir+"/"+constants.LogFileName)
	debugFlag  = flag.Bool("debug", false, "Log at debug level, implies -log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	starsFlag  = flag.Int("stars", constants.StarsCount, "Number of stars")
)

// options are the per-run settings taken from flags
type options struct {
	framesDir string
	mute      bool
	seed      int64
	stars     int
}

func main() {
	flag.Parse()

	logger, logFile := setupLogging(constants.LogDir, *logFlag || *debugFlag, *debugFlag)

	err := run(context.Background(), logger, options{
		framesDir: *framesFlag,
		mute:      *muteFlag,
		seed:      *seedFlag,
		stars:     *starsFlag,
	})

	_ = logger.Sync()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rocket: %v\n", err)
		os.Exit(1)
	}
}

// run sets up the game and drives the frame loop until a quit key or signal.
// Startup faults are returned before the loop starts, with the terminal already restored
func run(parent context.Context, log *zap.Logger, opts options) error {
	frames, err := asset.LoadDir(opts.framesDir)
	if err != nil {
		return fmt.Errorf("load frames: %w", err)
	}

	screen, err := terminal.New()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: task faults end the process with the terminal reset
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	defer func() {
		if r := recover(); r != nil {
			log.Error("task panicked", zap.Any("panic", r))
			_ = log.Sync()
			core.HandleCrash(r)
		}
	}()

	rows, columns := screen.Size()
	if rows < constants.MinRows || columns < constants.MinColumns {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", columns, rows, constants.MinColumns, constants.MinRows)
	}

	cfg := engine.DefaultConfig()
	cfg.StarsCount = opts.stars

	game := engine.NewGameContext(cfg, screen, screen, frames)
	game.SetLogger(log)
	if opts.seed != 0 {
		game.Rand = rand.New(rand.NewSource(opts.seed))
	}

	audioCfg := audio.LoadAudioConfig()
	if opts.mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg, screen.Beep)
	if err := sound.Initialize(); err != nil {
		log.Warn("speaker unavailable, using terminal bell", zap.Error(err))
	}
	log.Info("audio ready", zap.Bool("enabled", audioCfg.Enabled), zap.Bool("speaker", sound.Initialized()))
	defer sound.Cleanup()
	game.Sound = sound

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	screen.OnQuit(cancel)
	// A panic in the pump or the quit callback must still restore the terminal
	screen.StartEventPump(core.Go)

	log.Info("game started",
		zap.Int("rows", rows),
		zap.Int("columns", columns),
		zap.Int("year", game.Year),
		zap.Int64("seed", opts.seed),
	)

	systems.SpawnAll(game)
	game.Scheduler.Run(ctx, screen, constants.TickInterval)

	log.Info("game ended", zap.Int("year", game.Year), zap.Bool("game_over", game.GameOver))
	return nil
}
