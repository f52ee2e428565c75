package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/leterax/go-starfield/internal/config"
	"github.com/leterax/go-starfield/pkg/audio"
	"github.com/leterax/go-starfield/pkg/game"
	"github.com/leterax/go-starfield/pkg/geometry"
	"github.com/leterax/go-starfield/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting Starfield...")

	// Parse command line flags
	configPath := flag.String("config", "", "TOML config file (empty for defaults)")
	envFile := flag.String("env", ".env", "Env file with STARFIELD_* overrides")
	headless := flag.Bool("headless", false, "Run the simulation without a window")
	ticks := flag.Uint64("ticks", 600, "Frames to run in headless mode (0 runs until interrupted)")
	writeConfig := flag.Bool("write-config", false, "Print the effective config as TOML and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *writeConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *headless, *ticks); err != nil {
		log.Fatalf("Starfield failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, headless bool, ticks uint64) error {
	star, err := geometry.Extrude(geometry.StarShape(), geometry.StarExtrudeSettings())
	if err != nil {
		return fmt.Errorf("failed to build star mesh: %w", err)
	}

	world := game.NewWorld(cfg.Game, cfg.Game.Rand())
	volumes := game.NewBoxVolumes(star.Bounds(), cfg.Game.CameraExtent)

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Start(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer player.Close()

	opts := game.Options{
		Volumes: volumes,
		Cues:    player,
	}

	var (
		scheduler game.Scheduler
		renderer  *render.Renderer
	)
	if headless {
		opts.Text = game.NewLogTextSink()
		scheduler = game.TickerScheduler{Hz: 60, Ticks: ticks}
	} else {
		renderer, err = render.NewRenderer(cfg.Window, star)
		if err != nil {
			return fmt.Errorf("failed to initialize renderer: %w", err)
		}
		defer renderer.Close()

		renderer.SetStarfield(world.Starfield)
		opts.Scene = renderer
		opts.Renderer = renderer
		opts.Text = renderer
		scheduler = renderer
	}

	driver := game.NewDriver(world, cfg.Game, opts)
	if renderer != nil {
		renderer.SetKeyHandler(driver)
	}

	log.Printf("Collect %d stars (seed %d)", world.Remaining(), cfg.Game.Seed)
	if err := driver.Start(ctx, scheduler); err != nil {
		return err
	}
	log.Printf("Finished after %d frames: score %d, %d stars left", driver.Frames(), world.Score, world.Remaining())
	return nil
}
