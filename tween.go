package ssengine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 sprite properties at once. Create one with
// TweenRotation, TweenPosition or TweenHeight and call Update(dt) each frame,
// typically from an update hook with Engine.DeltaTime.
//
// There is no global animation manager; callers drive their own groups.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  [2]func(float32)
	count  int
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// sprite.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start value.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenRotation animates s.Rotation to the given angle in degrees.
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.apply[0] = func(v float32) { s.Rotation = float64(v) }
	return g
}

// TweenPosition animates s.Position to (toX, toY).
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Position.Y), float32(toY), duration, fn)
	g.apply[0] = func(v float32) { s.Position.X = float64(v) }
	g.apply[1] = func(v float32) { s.Position.Y = float64(v) }
	return g
}

// TweenHeight animates s.Height, rounding to whole pixels.
func TweenHeight(s *Sprite, to int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Height), float32(to), duration, fn)
	g.apply[0] = func(v float32) { s.Height = int(math.Round(float64(v))) }
	return g
}
