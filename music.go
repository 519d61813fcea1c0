package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/higher/assets"
	log "github.com/sirupsen/logrus"
)

const sampleRate = 44100

// Music plays the session track. A missing or broken track is logged and
// the game runs silent.
type Music struct {
	ctx    *audio.Context
	fsys   fs.FS
	player *audio.Player
}

func NewMusic(fsys fs.FS) *Music {
	return &Music{ctx: audio.NewContext(sampleRate), fsys: fsys}
}

func (m *Music) Play(track string) {
	m.Stop()
	if track == "" {
		return
	}
	p, err := m.load(track)
	if err != nil {
		log.WithError(err).WithField("track", track).Warn("music disabled")
		return
	}
	m.player = p
	m.player.Play()
}

func (m *Music) Stop() {
	if m.player == nil {
		return
	}
	m.player.Pause()
	if err := m.player.Close(); err != nil {
		log.WithError(err).Debug("close music player")
	}
	m.player = nil
}

func (m *Music) load(track string) (*audio.Player, error) {
	b, err := assets.LoadFile(m.fsys, track)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	switch strings.ToLower(path.Ext(track)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", track, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", track, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported track format %q", track)
	}
	return m.ctx.NewPlayer(stream)
}
