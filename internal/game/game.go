package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/polygon-morph/internal/anim"
	"github.com/iburimskiy/polygon-morph/internal/config"
	"github.com/iburimskiy/polygon-morph/internal/export"
	"github.com/iburimskiy/polygon-morph/internal/geometry"
	"github.com/iburimskiy/polygon-morph/internal/surface"
)

var (
	backgroundColor = color.White
	outlineColor    = color.RGBA{B: 255, A: 255}
	markerColor     = color.RGBA{R: 255, A: 255}
	textColor       = color.Black

	labelFace = text.NewGoXFace(basicfont.Face7x13)
)

type Game struct {
	cfg    config.Config
	canvas *surface.Canvas
	driver *anim.Driver
	log    *zap.Logger

	elapsed time.Duration

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	// state
	paused  bool
	lastErr error
	notice  string
}

func New(cfg config.Config, d *anim.Driver, c *surface.Canvas, lg *zap.Logger) *Game {
	return &Game{
		cfg:     cfg,
		canvas:  c,
		driver:  d,
		log:     lg,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inRect(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.restart()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeyR) {
		g.restart()
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.changeSides(+1)
	}
	if justPressed(ebiten.KeyArrowDown) {
		g.changeSides(-1)
	}
	if justPressed(ebiten.KeyE) {
		if err := g.exportDialog(); err != nil {
			g.lastErr = err
			g.log.Error("export failed", zap.Error(err))
		}
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if !g.paused && g.driver.Tick() {
		g.elapsed += g.cfg.TickInterval
	}
	return nil
}

func (g *Game) restart() {
	g.driver.Restart()
	g.elapsed = 0
	g.lastErr = nil
	g.notice = ""
}

func (g *Game) changeSides(delta int) {
	n := g.driver.Polygon().Sides() + delta
	if n < 3 || n > config.MaxSides {
		return
	}
	if err := g.driver.SetSides(n); err != nil {
		g.lastErr = err
	}
}

func (g *Game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Frame"),
		zenity.Filename("frame.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := export.SaveSVG(filename, g.canvas, g.cfg.Window.Width, g.cfg.Window.Height); err != nil {
		return err
	}
	g.log.Info("frame exported", zap.String("path", filename), zap.Int("frame", g.driver.State().Frame))
	g.notice = "Exported " + filename
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, it := range g.canvas.Items() {
		switch it.Kind {
		case surface.KindCircle:
			drawCircle(screen, it)
		case surface.KindPolygon:
			drawOutline(screen, it)
		case surface.KindMarker:
			drawMarker(screen, it)
		case surface.KindText:
			drawLabel(screen, it.Text, it.At.X, it.At.Y, text.AlignCenter)
		}
	}

	g.drawButton(screen)
	g.drawStatus(screen)
}

func drawCircle(screen *ebiten.Image, it surface.Item) {
	b := it.Bounds
	c := b.Min.Plus(b.Max).Times(0.5)
	r := b.Width() / 2
	if !it.Dashed {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(r), 1, markerColor, true)
		return
	}
	for _, d := range geometry.Dashes(c, r, 5) {
		vector.StrokeLine(screen, float32(d[0].X), float32(d[0].Y), float32(d[1].X), float32(d[1].Y), 1, markerColor, true)
	}
}

func drawOutline(screen *ebiten.Image, it surface.Item) {
	pts := it.Points()
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, outlineColor, true)
	}
}

func drawMarker(screen *ebiten.Image, it surface.Item) {
	b := it.Bounds
	c := b.Min.Plus(b.Max).Times(0.5)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(b.Width()/2), markerColor, true)
}

func drawLabel(screen *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, labelFace, op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	label := "Restart"
	textWidth := len(label) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, label, config.ButtonX+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch {
	case g.paused:
		status = "Paused - Space to resume"
	case !g.driver.Running():
		status = "Finished - R to restart"
	default:
		status = fmt.Sprintf("Frame %d/%d  %s", g.driver.State().Frame, g.driver.State().MaxFrames, formatDuration(g.elapsed))
	}
	if g.notice != "" {
		status += " | " + g.notice
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	drawLabel(screen, status, 8, 368, text.AlignStart)
	drawLabel(screen, "Up/Down: sides  E: export  Esc: quit", 8, 384, text.AlignStart)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
