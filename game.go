package main

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/higher/assets"
	"github.com/milk9111/higher/common"
	"github.com/milk9111/higher/config"
	"github.com/milk9111/higher/input"
	"github.com/milk9111/higher/render"
	"github.com/milk9111/higher/session"
	log "github.com/sirupsen/logrus"
)

type Game struct {
	cfg        config.Config
	configPath string
	fsys       fs.FS
	debug      bool

	app     session.App
	session *session.Session

	input    *Input
	music    *Music
	registry *render.Registry
	layout   render.Layout
	watcher  *assets.Watcher

	menu *ebitenui.UI
	over *ebitenui.UI
}

func NewGame(fsys fs.FS, configPath string, cfg config.Config, debug bool, watcher *assets.Watcher) *Game {
	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		fsys:       fsys,
		debug:      debug,
		input:      NewInput(),
		music:      NewMusic(fsys),
		registry:   render.NewRegistry(fsys),
		layout:     render.NewLayout(cfg.Tower.Width, cfg.Tower.Height),
		watcher:    watcher,
	}
	g.buildMenu()
	return g
}

func (g *Game) buildMenu() {
	var lines []string
	if g.app.Failure != "" {
		lines = append(lines, "Could not start:", g.app.Failure)
	}
	g.menu = NewMenuUI("Higher", lines,
		menuButton{label: "Start", onClick: func() { g.start(session.Start) }},
		menuButton{label: "Quit", onClick: func() { g.app.Fire(session.Quit) }},
	)
}

func (g *Game) buildGameOver() {
	lines := []string{fmt.Sprintf("Score: %d", g.session.Score())}
	if g.session.Outcome() == session.Finished {
		lines = append(lines, "You reached the end of the song")
	}
	g.over = NewMenuUI("Game Over", lines,
		menuButton{label: "Restart", onClick: func() { g.start(session.Restart) }},
		menuButton{label: "Back to Menu", onClick: func() { g.toMenu() }},
	)
}

func (g *Game) start(ev session.Event) {
	g.closeSession()
	s, err := session.New(g.cfg, session.Deps{FS: g.fsys})
	if err != nil {
		g.fail(err)
		return
	}
	g.session = s
	g.layout = render.NewLayout(g.cfg.Tower.Width, g.cfg.Tower.Height)
	g.app.Fire(ev)
	g.music.Play(g.cfg.Music)
}

func (g *Game) fail(err error) {
	g.closeSession()
	g.music.Stop()
	g.app.Failed(err)
	g.buildMenu()
}

func (g *Game) toMenu() {
	g.closeSession()
	g.music.Stop()
	g.app.Fire(session.ToMenu)
	g.buildMenu()
}

func (g *Game) closeSession() {
	if g.session == nil {
		return
	}
	if err := g.session.Close(); err != nil {
		log.WithError(err).Warn("close session")
	}
	g.session = nil
}

func (g *Game) Update() error {
	g.drainWatcher()

	switch g.app.State {
	case session.Menu:
		g.menu.Update()
	case session.Playing:
		g.updatePlaying()
	case session.GameOver:
		g.over.Update()
	case session.Exited:
		g.closeSession()
		return ebiten.Termination
	}
	return nil
}

// updatePlaying handles every event of the frame before advancing the
// session by one tick.
func (g *Game) updatePlaying() {
	for _, ev := range g.input.Poll() {
		if ev.Type == input.KeyDown && ev.Key == "Escape" {
			g.toMenu()
			return
		}
		g.session.Handle(ev)
	}
	if err := g.session.Update(); err != nil {
		g.fail(err)
		return
	}
	if g.session.Done() {
		g.music.Stop()
		g.app.Fire(session.Over)
		g.buildGameOver()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithField("file", name).Info("asset changed")
			if path.Base(name) == path.Base(g.configPath) {
				g.reloadConfig()
			}
			if g.session != nil {
				g.session.Reload()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.WithError(err).Warn("asset watcher")
			}
		default:
			return
		}
	}
}

// reloadConfig applies an edited config to the next session.
func (g *Game) reloadConfig() {
	next, err := assets.LoadConfig(g.fsys, g.configPath)
	if err == nil {
		next, err = g.cfg.Reload(next)
	}
	if err != nil {
		log.WithError(err).WithField("config", g.configPath).Warn("config reload rejected")
		return
	}
	g.cfg = next
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session != nil && g.app.State != session.Menu {
		g.drawSession(screen)
	}
	switch g.app.State {
	case session.Menu:
		g.menu.Draw(screen)
	case session.GameOver:
		g.over.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f  state: %s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.app.State))
	}
}

func (g *Game) drawSession(screen *ebiten.Image) {
	s := g.session
	g.registry.DrawTower(screen, g.layout, s.Tower())
	g.registry.DrawPlayer(screen, g.layout, s.Tower(), s.Player())
	g.registry.DrawBeatline(screen, g.layout, s.Line())
	g.registry.DrawAbilityBar(screen, g.layout, s.Bar())
	g.registry.DrawHUD(screen, g.layout, s.Score())
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	g.closeSession()
	g.music.Stop()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
