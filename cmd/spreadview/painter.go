package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// compartmentPalette maps an SI²R compartment index to its display color,
// one cell per person's position, background everywhere else.
var compartmentPalette = [...]color.RGBA{
	{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}, // susceptible: blue
	{R: 0xf5, G: 0xa6, B: 0x23, A: 0xff}, // infected (incubating): amber
	{R: 0xd9, G: 0x4a, B: 0x4a, A: 0xff}, // infectious: red
	{R: 0x6a, G: 0xa8, B: 0x4a, A: 0xff}, // recovered: green
}

var backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

// GridPainter rasterizes a tick's population onto a w*h RGBA buffer, one
// pixel per grid cell, and blits it scaled onto the destination image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

func (gp *GridPainter) fill(positions []cellState) {
	for i := 0; i < gp.w*gp.h; i++ {
		base := i * 4
		gp.buf[base+0] = backgroundColor.R
		gp.buf[base+1] = backgroundColor.G
		gp.buf[base+2] = backgroundColor.B
		gp.buf[base+3] = backgroundColor.A
	}
	for _, p := range positions {
		if p.x < 0 || p.x >= gp.w || p.y < 0 || p.y >= gp.h {
			continue
		}
		idx := p.y*gp.w + p.x
		col := compartmentPalette[p.compartment]
		base := idx * 4
		gp.buf[base+0] = col.R
		gp.buf[base+1] = col.G
		gp.buf[base+2] = col.B
		gp.buf[base+3] = col.A
	}
}

// Blit uploads the current tick's positions and draws the scaled image onto
// dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, positions []cellState, scale int) {
	gp.fill(positions)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

type cellState struct {
	x, y        int
	compartment int
}
