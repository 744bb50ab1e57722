package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Resonant/internal/game"
	"github.com/Garsondee/Resonant/internal/logging"
)

func main() {
	var configPath string
	var logLevel string
	var dev bool

	flag.StringVar(&configPath, "config", "resonant.yaml", "path to the profile configuration")
	flag.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	flag.BoolVar(&dev, "dev", false, "human-readable console logging")
	flag.Parse()

	logger := logging.Must(logLevel, dev)
	defer func() { _ = logger.Sync() }()

	g, err := game.New(game.Options{ConfigPath: configPath, Logger: logger})
	if err != nil {
		logger.Fatal("load configuration", zap.String("path", configPath), zap.Error(err))
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Resonant")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
