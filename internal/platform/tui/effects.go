package tui

import (
	"fmt"

	"github.com/vovakirdan/gridlock/internal/core"
)

// Effect lifetimes in simulation ticks.
const (
	explosionTTL = 24
	popupTTL     = 48
	popupRiseDiv = 8 // popup rises one row per this many ticks
)

// explosionFrames is the burst animation, oldest frame last.
var explosionFrames = []rune{'✺', '✸', '✶', '✦', '·'}

type effectKind int

const (
	effectExplosion effectKind = iota
	effectPopup
)

// effect is one transient overlay: a crash burst at the collision point or a
// score popup drifting upward from it.
type effect struct {
	kind effectKind
	x, y int
	ttl  int
	max  int
	text string
}

// EffectSet owns the active visual effects. The platform feeds it collision
// events, ticks it alongside the game, and draws it over the rendered frame.
type EffectSet struct {
	effects []effect
}

// NewEffectSet creates an empty effect set.
func NewEffectSet() *EffectSet {
	return &EffectSet{}
}

// SpawnCollision adds a crash burst and a score popup at the given screen
// position.
func (s *EffectSet) SpawnCollision(x, y, points int) {
	s.effects = append(s.effects,
		effect{kind: effectExplosion, x: x, y: y, ttl: explosionTTL, max: explosionTTL},
		effect{kind: effectPopup, x: x, y: y, ttl: popupTTL, max: popupTTL,
			text: fmt.Sprintf("+%d", points)},
	)
}

// Tick ages every effect and drops the expired ones.
func (s *EffectSet) Tick() {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.ttl--
		if e.ttl > 0 {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// Clear removes all effects. Called on restart so nothing carries across
// sessions.
func (s *EffectSet) Clear() {
	s.effects = s.effects[:0]
}

// Count returns the number of live effects.
func (s *EffectSet) Count() int {
	return len(s.effects)
}

// Draw overlays the active effects onto a rendered frame.
func (s *EffectSet) Draw(dst *core.Screen) {
	for _, e := range s.effects {
		age := e.max - e.ttl
		switch e.kind {
		case effectExplosion:
			frame := age * len(explosionFrames) / e.max
			if frame >= len(explosionFrames) {
				frame = len(explosionFrames) - 1
			}
			dst.SetCell(e.x, e.y, explosionFrames[frame], core.ColorBrightRed)
		case effectPopup:
			y := e.y - age/popupRiseDiv
			dst.DrawTextColored(e.x-len(e.text)/2, y, e.text, core.ColorBrightYellow)
		}
	}
}
