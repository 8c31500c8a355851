package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jbeda/geom"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/polygon-morph/internal/anim"
	"github.com/iburimskiy/polygon-morph/internal/config"
	"github.com/iburimskiy/polygon-morph/internal/export"
	"github.com/iburimskiy/polygon-morph/internal/game"
	"github.com/iburimskiy/polygon-morph/internal/geometry"
	"github.com/iburimskiy/polygon-morph/internal/logging"
	"github.com/iburimskiy/polygon-morph/internal/shape"
	"github.com/iburimskiy/polygon-morph/internal/sound"
	"github.com/iburimskiy/polygon-morph/internal/surface"
)

var (
	configFile   = flag.String("config", "", "YAML configuration file")
	sides        = flag.Int("sides", config.Sides, "number of polygon sides")
	subdivisions = flag.Int("subdivisions", config.Subdivisions, "sample points per polygon edge")
	headless     = flag.Bool("headless", false, "run the animation without a window")
	outFile      = flag.String("out", "", "write the last frame as SVG to this file")
	withSound    = flag.Bool("sound", false, "play a tone whenever the morph changes direction")
	logLevel     = flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFile      = flag.String("log-file", "", "also write logs to this file, rotated by size")
)

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}

	// Flags given explicitly win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sides":
			cfg.Sides = *sides
		case "subdivisions":
			cfg.Subdivisions = *subdivisions
		case "sound":
			cfg.Sound = *withSound
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	return cfg, cfg.Validate()
}

func fatal(lg *zap.Logger, err error) {
	if lg != nil {
		lg.Error("fatal", zap.Error(err))
		_ = lg.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	if !*headless {
		_ = zenity.Error(err.Error(), zenity.Title("Polygon to Circle Animation"), zenity.ErrorIcon)
	}
	os.Exit(1)
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fatal(nil, err)
	}

	lg, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fatal(nil, err)
	}
	defer lg.Sync()

	screen := geometry.Screen{
		Center: geom.Coord{X: cfg.Center.X, Y: cfg.Center.Y},
		Radius: cfg.Radius,
	}
	poly, err := shape.NewPolygon(cfg.Sides, cfg.Subdivisions, screen)
	if err != nil {
		fatal(lg, err)
	}

	canvas := surface.NewCanvas()
	canvas.CreateCircle(poly.Circumcircle(), true)
	driver := anim.NewDriver(poly, anim.NewState(cfg.Step, cfg.MaxFrames), canvas, lg)
	if cfg.Sound {
		driver.OnBounce = sound.NewCue(speakerOutput{}, lg).Bounce
	}

	lg.Info("starting animation",
		zap.Int("sides", cfg.Sides),
		zap.Int("subdivisions", cfg.Subdivisions),
		zap.Int("max_frames", cfg.MaxFrames),
		zap.Duration("tick", cfg.TickInterval),
		zap.Bool("headless", *headless))

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := anim.Run(ctx, driver, cfg.TickInterval); err != nil && !errors.Is(err, context.Canceled) {
			fatal(lg, err)
		}
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle("Polygon to Circle Animation")
		ebiten.SetTPS(cfg.TPS())

		g := game.New(cfg, driver, canvas, lg)
		if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
			fatal(lg, err)
		}
	}

	if *outFile != "" {
		if err := export.SaveSVG(*outFile, canvas, cfg.Window.Width, cfg.Window.Height); err != nil {
			fatal(lg, err)
		}
		lg.Info("frame exported", zap.String("path", *outFile))
	}
}
