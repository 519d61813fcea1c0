package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/higher/ability"
	"github.com/milk9111/higher/beat"
	"github.com/milk9111/higher/tile"
	"github.com/milk9111/higher/tower"
	"golang.org/x/image/colornames"
)

func (r *Registry) drawScaled(screen, img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// DrawTower draws the visible rows. The floor's fractional part scrolls the
// view smoothly while the floor animates.
func (r *Registry) DrawTower(screen *ebiten.Image, l Layout, t *tower.Tower) {
	a := l.Cell()
	floor := t.Floor()
	from, to := t.VisibleRows()
	for y := from; y < to; y++ {
		for x, c := range t.Row(y) {
			sx, sy := l.CellOrigin(x, y, floor)
			if sy+a <= 0 {
				continue
			}
			r.drawScaled(screen, r.Tile(c), sx, sy, a, a)
		}
	}
}

func (r *Registry) DrawPlayer(screen *ebiten.Image, l Layout, t *tower.Tower, p tile.Pos) {
	a := l.Cell()
	x, y := l.CellOrigin(p.X, p.Y, t.Floor())
	inset := a * 0.15
	r.drawScaled(screen, r.Get("player"), x+inset, y+inset, a-2*inset, a-2*inset)
}

// DrawBeatline draws the line with a center pointer and every queued beat
// mirrored on both sides, moving towards the center.
func (r *Registry) DrawBeatline(screen *ebiten.Image, l Layout, line *beat.Line) {
	cx, cy, half := l.BeatLine()
	vector.StrokeLine(screen, float32(cx-half), float32(cy), float32(cx+half), float32(cy), 2, colornames.White, false)
	vector.FillRect(screen, float32(cx-3), float32(cy-20), 6, 40, colornames.Lightgray, false)

	now := line.Now()
	for _, b := range line.Beats() {
		off, ok := l.BeatOffset(b.Target, now, line.Loop())
		if !ok {
			continue
		}
		c := beatColor(b.State(now))
		for _, x := range []float64{cx - off, cx + off} {
			vector.FillRect(screen, float32(x-4), float32(cy-12), 8, 24, c, false)
		}
	}
}

func beatColor(s beat.State) color.Color {
	switch s {
	case beat.Active:
		return colornames.Gold
	case beat.Consumed:
		return colornames.Limegreen
	case beat.Expired:
		return colornames.Firebrick
	default:
		return colornames.White
	}
}

// DrawAbilityBar draws one slot per ability with its key, its name and a
// shade that shrinks as the cooldown runs out.
func (r *Registry) DrawAbilityBar(screen *ebiten.Image, l Layout, bar *ability.Bar) {
	size := l.SlotSize()
	sheet := r.Get(AbilitySheet)
	for i, a := range bar.Slots() {
		if a == nil {
			continue
		}
		x, y := l.SlotOrigin(i)
		if sheet != nil && !a.Sprite.Empty() {
			rect := a.Sprite
			rect.X += a.Frame() * rect.Width
			r.drawScaled(screen, sheet.SubImage(rect.Image()).(*ebiten.Image), x, y, size, size)
		} else {
			vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), colornames.Steelblue, false)
		}
		if !a.IsReady() && a.Cooldown > 0 {
			shade := size * float64(a.Remaining()) / float64(a.Cooldown)
			vector.FillRect(screen, float32(x), float32(y+size-shade), float32(size), float32(shade), color.RGBA{A: 160}, false)
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, colornames.White, false)
		r.Text(screen, fmt.Sprintf("[%s] %s", a.Key, a.Name), x, y+size+2, colornames.White)
	}
}

// DrawHUD draws the score in the top right corner.
func (r *Registry) DrawHUD(screen *ebiten.Image, l Layout, score int) {
	r.Text(screen, fmt.Sprintf("Score: %d", score), float64(l.Width)-140, 20, colornames.White)
}

func (r *Registry) Text(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, r.face, op)
}
