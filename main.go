package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/fernlight/go-pathtracer/internal/config"
	"github.com/fernlight/go-pathtracer/internal/logger"
	"github.com/fernlight/go-pathtracer/pkg/integrator"
	"github.com/fernlight/go-pathtracer/pkg/renderer"
	"github.com/fernlight/go-pathtracer/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	sceneType := flag.String("scene", "", "Scene: 'default', 'cornell' or 'cornell-smoke'")
	samples := flag.Int("samples", 0, "Samples per pixel (overrides config)")
	depth := flag.Int("depth", 0, "Maximum ray bounces (overrides config)")
	workers := flag.Int("workers", 0, "Worker count (overrides config, 0 = all CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Monte Carlo path tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Open scene with textured spheres and an area light")
		fmt.Println("  cornell       - Cornell box with rotated boxes and a ceiling light")
		fmt.Println("  cornell-smoke - Cornell box with participating media")
		fmt.Println()
		fmt.Println("Output is saved to <output dir>/<scene>_<timestamp>.png")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file
	if *sceneType != "" {
		cfg.Render.Scene = *sceneType
	}
	if *samples > 0 {
		cfg.Render.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		cfg.Render.MaxDepth = *depth
	}
	if *workers > 0 {
		cfg.Render.Workers = *workers
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Log.Fatal("render failed", zap.Error(err))
	}
}

// buildScene maps a scene name from config or flags to its constructor
func buildScene(name string) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene(), nil
	case "cornell-smoke":
		return scene.NewCornellSmokeScene(), nil
	case "default":
		return scene.NewDefaultScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

func run(cfg *config.Config) error {
	sc, err := buildScene(cfg.Render.Scene)
	if err != nil {
		return err
	}

	width, height := sc.Width, sc.Height
	if cfg.Render.Width > 0 {
		width = cfg.Render.Width
	}
	if cfg.Render.Height > 0 {
		height = cfg.Render.Height
	}

	logger.Log.Info("scene ready", zap.String("scene", cfg.Render.Scene))

	pt := integrator.NewPathTracer(sc.Background, cfg.Render.MaxDepth)
	r := renderer.NewRenderer(sc.World, sc.Lights, sc.Camera, pt)

	img := r.Render(renderer.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		Workers:         cfg.Render.Workers,
		Seed:            cfg.Render.Seed,
		Logger:          logger.Log,
	})

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.png", cfg.Render.Scene, time.Now().Format("20060102_150405"))
	path := filepath.Join(cfg.Output.Dir, name)
	if err := renderer.SavePNG(img, path); err != nil {
		return err
	}

	logger.Log.Info("image written", zap.String("path", path))
	return nil
}
