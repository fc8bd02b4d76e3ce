// Command spreadview plays back a completed run's Output trace as a 2D
// grid, one cell per pixel, colored by each person's SI²R compartment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spreadsim/internal/model"
)

// Game adapts a completed Output's trace to the ebiten.Game interface,
// stepping one tick per "play" frame or one tick per keypress when paused.
type Game struct {
	output  model.Output
	painter *GridPainter
	scale   int
	tick    int
	paused  bool
}

func NewGame(output model.Output, scale int) *Game {
	size := output.Scenario.GridSize
	return &Game{
		output:  output,
		painter: NewGridPainter(size.X, size.Y),
		scale:   scale,
		paused:  true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && g.tick > 0 {
		g.tick--
	}
	if !g.paused {
		g.advance()
	}
	return nil
}

func (g *Game) advance() {
	if g.tick < len(g.output.Trace)-1 {
		g.tick++
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	entry := g.output.Trace[g.tick]
	cells := make([]cellState, len(entry.Population))
	for i, p := range entry.Population {
		cells[i] = cellState{x: p.Position.X, y: p.Position.Y, compartment: int(p.InfectionState)}
	}
	g.painter.Blit(screen, cells, g.scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	outputPath := flag.String("output", "output.json", "path to a completed run's Output JSON file")
	scale := flag.Int("scale", 6, "pixel scale multiplier")
	flag.Parse()

	data, err := os.ReadFile(*outputPath)
	if err != nil {
		slog.Error("failed to read output", "path", *outputPath, "error", err)
		os.Exit(1)
	}
	var output model.Output
	if err := json.Unmarshal(data, &output); err != nil {
		slog.Error("failed to parse output", "path", *outputPath, "error", err)
		os.Exit(1)
	}
	if len(output.Trace) == 0 || output.Trace[0].Population == nil {
		slog.Error("output has no trace data; rerun with the scenario's trace flag set")
		os.Exit(1)
	}

	game := NewGame(output, *scale)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("spreadview: %s", output.Scenario.Name))

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("playback failed", "error", err)
		os.Exit(1)
	}
}
