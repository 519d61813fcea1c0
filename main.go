package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/higher/assets"
	"github.com/milk9111/higher/config"
	log "github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the TPS overlay")
	assetDir := flag.String("assets", "assets", "directory whose files override the embedded assets")
	configPath := flag.String("config", config.DefaultPath, "config file, relative to the asset directory")
	watch := flag.Bool("watch", false, "reload chunk files and config from the asset directory when they change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	fsys := assets.FS(*assetDir)
	cfg, err := assets.LoadConfig(fsys, *configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	var watcher *assets.Watcher
	if *watch {
		watcher, err = assets.NewWatcher(*assetDir)
		if err != nil {
			log.WithError(err).WithField("dir", *assetDir).Warn("asset watcher disabled")
			watcher = nil
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("higher")
	ebiten.SetTPS(cfg.FPS)

	game := NewGame(fsys, *configPath, cfg, *debug, watcher)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("run game")
	}
}
