// internal/app/runtime.go
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/event"
	"go-price-particles/internal/feed"
	"go-price-particles/internal/logger"
)

const (
	quoteBuffer   = 256
	intensityStep = 0.25
	maxIntensity  = 5.0
)

// LoadSettings собирает конфигурацию: YAML, затем .env и переменные FX_*.
func LoadSettings(path string, envFiles ...string) (config.Settings, error) {
	s, err := config.Load(path)
	if err != nil {
		return s, err
	}
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return s, err
	}
	if err := s.ApplyEnv(); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Runtime связывает источник котировок, диспетчер и движок для окна хоста.
// Pump и остальные методы вызываются из кадра хоста; источник работает в своей горутине.
type Runtime struct {
	Settings   config.Settings
	Dispatcher *event.Dispatcher
	Engine     *Engine
	Tracker    *feed.Tracker

	source   feed.Source
	quotes   chan feed.Quote
	cancel   context.CancelFunc
	done     chan error
	last     event.PricePair
	hasPrice bool
	log      *logrus.Entry
}

// NewRuntime создаёт окружение. src == nil — источник из s.Feed.
func NewRuntime(s config.Settings, sink Sink, src feed.Source) (*Runtime, error) {
	if src == nil {
		var err error
		src, err = feed.New(s.Feed, s.Engine.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "create feed")
		}
	}
	d := event.NewDispatcher()
	engine := NewEngine(Options{
		Settings:   s.Engine,
		Viewport:   component.Vec2{X: float64(s.Viewport.Width), Y: float64(s.Viewport.Height)},
		Sink:       sink,
		Dispatcher: d,
	})
	return &Runtime{
		Settings:   s,
		Dispatcher: d,
		Engine:     engine,
		Tracker:    feed.NewTracker(),
		source:     src,
		quotes:     make(chan feed.Quote, quoteBuffer),
		log:        logger.WithComponent("runtime"),
	}, nil
}

// Start запускает источник котировок и включает движок.
func (r *Runtime) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan error, 1)
	go func() {
		err := r.source.Run(ctx, r.quotes)
		if err != nil && !errors.Is(err, context.Canceled) {
			r.log.WithError(err).Error("price feed stopped")
		}
		r.done <- err
	}()
	r.SetActive(true)
	r.log.WithFields(logrus.Fields{
		"provider": r.Settings.Feed.Provider,
		"symbol":   r.Settings.Feed.Symbol,
		"mode":     r.Engine.Settings().Mode.String(),
	}).Info("runtime started")
}

// Pump передаёт движку накопленные котировки и возвращает число пар.
func (r *Runtime) Pump() int {
	return r.Tracker.Drain(r.quotes, func(pair event.PricePair) {
		r.last, r.hasPrice = pair, true
		r.Dispatcher.Dispatch(event.Event{Type: event.PriceUpdated, Data: pair})
	})
}

// LastPair возвращает последнюю переданную пару цен.
func (r *Runtime) LastPair() (event.PricePair, bool) {
	if !r.hasPrice {
		return event.PricePair{Symbol: r.Settings.Feed.Symbol}, false
	}
	return r.last, true
}

// SetActive переключает движок через диспетчер.
func (r *Runtime) SetActive(on bool) {
	r.Dispatcher.Dispatch(event.Event{Type: event.ActiveChanged, Data: on})
}

// Toggle инвертирует состояние движка.
func (r *Runtime) Toggle() {
	r.SetActive(!r.Engine.IsActive())
}

// CycleMode переключает режим эмиссии на следующий.
func (r *Runtime) CycleMode() component.EmissionMode {
	m := r.Engine.Settings().Mode.Next()
	r.Engine.SetMode(m)
	r.log.WithField("mode", m.String()).Info("emission mode changed")
	return m
}

// AdjustIntensity меняет интенсивность на delta шагов в пределах [0, maxIntensity].
func (r *Runtime) AdjustIntensity(delta int) float64 {
	v := r.Engine.Settings().Intensity + float64(delta)*intensityStep
	if v < 0 {
		v = 0
	}
	if v > maxIntensity {
		v = maxIntensity
	}
	r.Engine.SetIntensity(v)
	return v
}

// Resize сообщает движку новый размер окна.
func (r *Runtime) Resize(width, height int) {
	vp := r.Engine.Viewport()
	if float64(width) == vp.X && float64(height) == vp.Y {
		return
	}
	r.Dispatcher.Dispatch(event.Event{
		Type: event.ViewportResized,
		Data: event.Viewport{Width: float64(width), Height: float64(height)},
	})
}

// StatusLines возвращает строки панели статуса.
func (r *Runtime) StatusLines() []string {
	pair, ok := r.LastPair()
	s := r.Engine.Settings()
	return StatusLines(pair, ok, s.Mode, s.Intensity, r.Engine.Stats())
}

// Close останавливает источник и разбирает движок.
func (r *Runtime) Close() error {
	r.Engine.Teardown()
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	r.cancel = nil
	err := <-r.done
	r.log.WithField("stats", r.Engine.Stats()).Info("runtime closed")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
