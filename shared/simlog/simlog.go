// Package simlog defines the logging capability the simulation core
// emits events through. The core never holds a global logger; a sink
// is injected at construction and the no-op default keeps every
// component usable without one.
package simlog

import (
	"go.uber.org/zap"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

// Logger receives simulation events.
type Logger interface {
	Message(text string)
	SnowballThrow(position, velocity gamemath.Vec)
	SnowballHit(position gamemath.Vec, hitTarget bool)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Message(string)                     {}
func (Nop) SnowballThrow(_, _ gamemath.Vec)    {}
func (Nop) SnowballHit(_ gamemath.Vec, _ bool) {}

// OrNop substitutes the no-op sink for a nil logger so call sites never
// need a nil check.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}

// Zap adapts a zap logger to the simulation event sink.
type Zap struct {
	log *zap.Logger
}

func NewZap(log *zap.Logger) *Zap {
	return &Zap{log: log}
}

func (z *Zap) Message(text string) {
	z.log.Info(text)
}

func (z *Zap) SnowballThrow(position, velocity gamemath.Vec) {
	z.log.Info("snowball thrown",
		zap.Float64("x", position.X),
		zap.Float64("y", position.Y),
		zap.Float64("vx", velocity.X),
		zap.Float64("vy", velocity.Y),
	)
}

func (z *Zap) SnowballHit(position gamemath.Vec, hitTarget bool) {
	z.log.Info("snowball landed",
		zap.Float64("x", position.X),
		zap.Float64("y", position.Y),
		zap.Bool("hit_target", hitTarget),
	)
}
