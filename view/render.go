package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quantboard/graphview/graph"
)

// Options carries the per-frame render inputs that do not live on the model.
type Options struct {
	Dark       bool
	SelectedID string
	HoveredID  string
	NodeSize   float64 // display diameter for nodes without their own radius
	Time       float64 // seconds, drives the selection ring pulse
	Labels     bool
}

type palette struct {
	background color.RGBA
	edge       color.RGBA
	hoverRing  color.RGBA
	selectRing color.RGBA
}

var darkPalette = palette{
	background: color.RGBA{R: 0x16, G: 0x18, B: 0x21, A: 0xff},
	edge:       color.RGBA{R: 0x3d, G: 0x43, B: 0x55, A: 0xff},
	hoverRing:  color.RGBA{R: 0x9a, G: 0xa3, B: 0xb8, A: 0xff},
	selectRing: color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff},
}

var lightPalette = palette{
	background: color.RGBA{R: 0xf4, G: 0xf4, B: 0xf6, A: 0xff},
	edge:       color.RGBA{R: 0xb9, G: 0xbe, B: 0xc9, A: 0xff},
	hoverRing:  color.RGBA{R: 0x5a, G: 0x61, B: 0x72, A: 0xff},
	selectRing: color.RGBA{R: 0x20, G: 0x22, B: 0x2a, A: 0xff},
}

// Render draws the whole graph onto dst: edges first, then nodes in model
// order so later nodes sit on top, matching hit-testing. It never mutates
// the model and allocates nothing per frame beyond what the surface API
// needs.
func Render(dst *ebiten.Image, m *graph.Model, cam Camera, width, height float64, opts Options) {
	pal := lightPalette
	if opts.Dark {
		pal = darkPalette
	}
	dst.Fill(pal.background)
	if m == nil {
		return
	}

	for _, e := range m.Edges {
		src := m.NodeByID(e.SourceID)
		tgt := m.NodeByID(e.TargetID)
		if src == nil || tgt == nil {
			continue
		}
		x0, y0 := cam.WorldToScreen(src.X, src.Y, width, height)
		x1, y1 := cam.WorldToScreen(tgt.X, tgt.Y, width, height)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, pal.edge, true)
	}

	for _, n := range m.Nodes {
		sx, sy := cam.WorldToScreen(n.X, n.Y, width, height)
		r := n.Radius
		if r <= 0 {
			r = opts.NodeSize / 2
		}
		sr := float32(r * cam.Zoom)

		vector.DrawFilledCircle(dst, float32(sx), float32(sy), sr, n.Color, true)

		if n.ID == opts.HoveredID && n.ID != opts.SelectedID {
			vector.StrokeCircle(dst, float32(sx), float32(sy), sr+2, 1.5, pal.hoverRing, true)
		}
		if n.ID == opts.SelectedID {
			pulse := float32(2 + 1.5*math.Sin(opts.Time*4))
			vector.StrokeCircle(dst, float32(sx), float32(sy), sr+2+pulse, 2, pal.selectRing, true)
		}
		if opts.Labels {
			ebitenutil.DebugPrintAt(dst, n.Name, int(sx)+int(sr)+4, int(sy)-8)
		}
	}
}
