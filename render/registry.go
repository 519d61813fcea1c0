// Package render draws a session onto ebiten images.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/higher/assets"
	"github.com/milk9111/higher/tile"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Sheet paths looked up in the asset filesystem. Both are optional.
const (
	TowerSheet   = "sheets/tower.png"
	AbilitySheet = "sheets/abilities.png"
)

var palette = map[tile.Kind]color.RGBA{
	tile.Empty: colornames.Darkslategray,
	tile.Wall:  colornames.Sienna,
	tile.Hole:  colornames.Black,
}

// Registry holds every image the renderers use. Without sprite sheets it
// falls back to flat colored tiles.
type Registry struct {
	images map[string]*ebiten.Image
	face   ebtext.Face
}

func NewRegistry(fsys fs.FS) *Registry {
	r := &Registry{
		images: make(map[string]*ebiten.Image),
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
	}
	for kind, c := range palette {
		r.Register(kind.String(), solid(c))
	}
	r.Register("player", solid(colornames.Magenta))
	r.Register("pixel", solid(colornames.White))

	for _, path := range []string{TowerSheet, AbilitySheet} {
		img, err := loadImage(fsys, path)
		if err != nil {
			log.WithField("sheet", path).Debug("sprite sheet not found, using flat colors")
			continue
		}
		r.Register(path, img)
	}
	return r
}

func (r *Registry) Register(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	r.images[key] = img
}

func (r *Registry) Get(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return r.images[key]
}

func (r *Registry) Face() ebtext.Face {
	return r.face
}

// Tile returns the image for a cell: its sprite when the tower sheet is
// loaded, its kind's color otherwise.
func (r *Registry) Tile(c tile.Cell) *ebiten.Image {
	if sheet := r.Get(TowerSheet); sheet != nil && !c.Image.Empty() {
		return sheet.SubImage(c.Image.Image()).(*ebiten.Image)
	}
	return r.Get(c.Kind.String())
}

func solid(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return img
}

func loadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("render: no filesystem for %s", path)
	}
	b, err := assets.LoadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
