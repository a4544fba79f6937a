// internal/app/sink.go
package app

import (
	"go-price-particles/internal/component"
	"go-price-particles/internal/types"
)

// Sink — слой отрисовки хоста.
// Движок только просит создать и убрать визуальный объект; владеет им хост.
type Sink interface {
	// Attach вызывается при создании частицы. Указатель действителен
	// только на время вызова.
	Attach(p *component.Particle)
	// Detach просит убрать визуальный объект. false означает, что хост
	// уже удалил его сам; движок считает частицу уже снятой.
	Detach(id types.ParticleID) bool
}

// NopSink — пустой слой отрисовки для хостов, читающих только Sprites.
type NopSink struct{}

func (NopSink) Attach(*component.Particle) {}

func (NopSink) Detach(types.ParticleID) bool { return true }
