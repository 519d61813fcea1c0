package session

import log "github.com/sirupsen/logrus"

// State is the screen the application is on.
type State int

const (
	Menu State = iota
	Playing
	GameOver
	Exited
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

type Event int

const (
	Start Event = iota
	Over
	Fail
	Restart
	ToMenu
	Quit
)

// Next is the application's transition table. Events that do not apply to
// the current state leave it unchanged.
func Next(s State, ev Event) State {
	switch s {
	case Menu:
		switch ev {
		case Start:
			return Playing
		case Quit:
			return Exited
		}
	case Playing:
		switch ev {
		case Over:
			return GameOver
		case Fail, ToMenu:
			return Menu
		case Quit:
			return Exited
		}
	case GameOver:
		switch ev {
		case Restart:
			return Playing
		case ToMenu, Fail:
			return Menu
		case Quit:
			return Exited
		}
	}
	return s
}

// App tracks the current state and the last load failure shown on the menu.
type App struct {
	State   State
	Failure string
}

func (a *App) Fire(ev Event) State {
	next := Next(a.State, ev)
	if next != a.State {
		log.WithFields(log.Fields{"from": a.State, "to": next}).Debug("state change")
	}
	if next == Playing {
		a.Failure = ""
	}
	a.State = next
	return next
}

// Failed records err and returns to the menu.
func (a *App) Failed(err error) State {
	log.WithError(err).Error("game failed")
	if a.State == Menu {
		a.Failure = err.Error()
		return a.State
	}
	next := a.Fire(Fail)
	a.Failure = err.Error()
	return next
}
