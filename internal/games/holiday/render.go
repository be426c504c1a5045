package holiday

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Projection constants
const (
	fieldOfView  = 60.0 // Vertical field of view in degrees
	cellAspect   = 2.0  // Terminal cells are roughly twice as tall as wide
	nearPlane    = 0.1  // Points closer than this are not drawn
	groundExtent = 50.0 // Half the side of the square ground plane
	groundTile   = 2.0  // Side of one checker tile on the ground
	nearSnow     = 8.0  // Flakes closer than this use the large glyph
)

// Visual characters for rendering
const (
	GroundChar  = '·'
	TreeChar    = '▲'
	TrunkChar   = '█'
	GiftChar    = '■'
	FlakeNear   = '*'
	FlakeFar    = '.'
	EffectSpark = '*'
	EffectRing  = 'o'
	EffectBurst = 'O'
	EffectDust  = '·'
)

// projector maps world positions to screen cells through a pinhole camera.
type projector struct {
	eye, fwd, right, up core.Vec3
	cx, cy, focal       float64
}

func newProjector(cam Camera, w, h int) projector {
	fwd := cam.Target.Sub(cam.Position).Normalize()
	if fwd.Len() == 0 {
		fwd = core.V3(0, 0, -1)
	}
	right := fwd.Cross(core.V3(0, 1, 0)).Normalize()
	if right.Len() == 0 {
		// Looking straight up or down
		right = core.V3(1, 0, 0)
	}
	up := right.Cross(fwd)

	return projector{
		eye:   cam.Position,
		fwd:   fwd,
		right: right,
		up:    up,
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		focal: (float64(h) / 2) / math.Tan(fieldOfView/2*math.Pi/180),
	}
}

// project returns the cell a world point falls in and its depth along the
// view direction. ok is false for points behind the near plane.
func (p projector) project(pt core.Vec3) (x, y int, depth float64, ok bool) {
	d := pt.Sub(p.eye)
	depth = d.Dot(p.fwd)
	if depth < nearPlane {
		return 0, 0, 0, false
	}
	sx := p.cx + d.Dot(p.right)/depth*p.focal*cellAspect
	sy := p.cy - d.Dot(p.up)/depth*p.focal
	return int(math.Floor(sx)), int(math.Floor(sy)), depth, true
}

// ray returns the world direction through the center of a cell.
func (p projector) ray(x, y int) core.Vec3 {
	dx := (float64(x) + 0.5 - p.cx) / (p.focal * cellAspect)
	dy := (p.cy - float64(y) - 0.5) / p.focal
	return p.fwd.Add(p.right.Scale(dx)).Add(p.up.Scale(dy))
}

// sprite is one glyph placed in the world.
type sprite struct {
	pos   core.Vec3
	glyph rune
	color core.Color
}

// Render draws the current world state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	s := g.session
	proj := newProjector(s.Camera(), dst.Width(), dst.Height())

	drawGround(dst, proj)
	drawSprites(dst, proj, g.sprites())

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s.Won():
		drawCenteredMessage(dst, "You Win!",
			fmt.Sprintf("%s collected: %d  |  Enter to play again", s.Config().HUD.ScoreLabel, s.Score()))
	case !s.Active():
		prompt := "Press Enter to start"
		if s.Score() > 0 {
			prompt = "Press Enter to continue"
		}
		drawCenteredMessage(dst, g.preset.Title, prompt)
	}
}

// sprites collects every world glyph for this frame.
func (g *Game) sprites() []sprite {
	s := g.session
	out := make([]sprite, 0, len(s.Collectibles())+len(s.Snow())+len(s.Effects())*5+len(s.Trees())*4+1)

	for _, t := range s.Trees() {
		out = append(out, sprite{pos: t.Add(core.V3(0, 0.3, 0)), glyph: TrunkChar, color: core.ColorBrown})
		for i := 0; i < 3; i++ {
			layer := t.Add(core.V3(0, 0.9+float64(i)*0.6, 0))
			out = append(out, sprite{pos: layer, glyph: TreeChar, color: core.ColorGreen})
		}
	}

	for _, c := range s.Collectibles() {
		out = append(out, sprite{pos: c.Position, glyph: GiftChar, color: g.preset.Variants[c.Variant%2]})
	}

	out = append(out, sprite{pos: s.Player(), glyph: g.preset.PlayerGlyph, color: g.preset.PlayerColor})

	for _, e := range s.Effects() {
		out = append(out, effectSprites(e)...)
	}

	eye := s.Camera().Position
	for _, f := range s.Snow() {
		glyph, color := FlakeFar, core.ColorGray
		if f.Position.DistanceTo(eye) < nearSnow {
			glyph, color = FlakeNear, core.ColorBrightWhite
		}
		out = append(out, sprite{pos: f.Position, glyph: glyph, color: color})
	}

	return out
}

// effectSprites draws a pickup pulse that grows and fades.
func effectSprites(e Effect) []sprite {
	p := e.Progress()

	glyph := EffectSpark
	switch {
	case p >= 2.0/3:
		glyph = EffectBurst
	case p >= 1.0/3:
		glyph = EffectRing
	}

	color := core.ColorBrightYellow
	switch {
	case e.Opacity() < 0.3:
		color = core.ColorGray
	case e.Opacity() < 0.6:
		color = core.ColorOrange
	}

	out := []sprite{{pos: e.Position, glyph: glyph, color: color}}

	// Dust ring at the current radius once the pulse has grown
	if r := (e.Scale() - 1) * 0.5; r >= 0.25 {
		for _, d := range []core.Vec3{core.V3(r, 0, 0), core.V3(-r, 0, 0), core.V3(0, r, 0), core.V3(0, -r, 0)} {
			out = append(out, sprite{pos: e.Position.Add(d), glyph: EffectDust, color: color})
		}
	}
	return out
}

// drawGround ray-casts each cell onto the ground plane.
func drawGround(dst *core.Screen, proj projector) {
	if proj.eye.Y <= 0 {
		return
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			r := proj.ray(x, y)
			if r.Y >= 0 {
				continue
			}
			t := -proj.eye.Y / r.Y
			hit := proj.eye.Add(r.Scale(t))
			if math.Abs(hit.X) > groundExtent || math.Abs(hit.Z) > groundExtent {
				continue
			}
			tx := int(math.Floor(hit.X / groundTile))
			tz := int(math.Floor(hit.Z / groundTile))
			if (tx+tz)%2 == 0 {
				dst.SetColored(x, y, GroundChar, core.ColorDarkGray)
			}
		}
	}
}

// drawSprites projects sprites and paints them far to near.
func drawSprites(dst *core.Screen, proj projector, sprites []sprite) {
	type placed struct {
		x, y  int
		depth float64
		sprite
	}

	visible := make([]placed, 0, len(sprites))
	for _, sp := range sprites {
		x, y, depth, ok := proj.project(sp.pos)
		if !ok || x < 0 || y < 0 || x >= dst.Width() || y >= dst.Height() {
			continue
		}
		visible = append(visible, placed{x: x, y: y, depth: depth, sprite: sp})
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for _, v := range visible {
		dst.SetColored(v.x, v.y, v.glyph, v.color)
	}
}

// drawHUD draws the score line and controls hint.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	cfg := s.Config()

	score := fmt.Sprintf(" %s: %d ", cfg.HUD.ScoreLabel, s.Score())
	dst.DrawTextColored(2, 0, score, core.ColorBrightYellow)

	title := " " + g.preset.Title + " "
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(title)-2, 0, title, core.ColorBrightWhite)

	hint := "←/→ move  Enter start  P pause  Q quit"
	if cfg.Player.Movement == config.MovementPlanar {
		hint = "Arrows move  Enter start  P pause  Q quit"
	}
	dst.DrawTextColored(2, dst.Height()-1, hint, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := dst.Bounds().Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle)
}
