// internal/app/engine.go
package app

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/entity"
	"go-price-particles/internal/event"
	"go-price-particles/internal/logger"
	"go-price-particles/internal/signal"
	"go-price-particles/internal/state"
	"go-price-particles/internal/system"
	"go-price-particles/internal/utils"
)

// ErrTornDown возвращается после Teardown.
var ErrTornDown = errors.New("engine torn down")

// Options — параметры создания движка.
type Options struct {
	Settings   config.EngineSettings
	Viewport   component.Vec2
	Random     utils.Random      // nil — PRNGService с Settings.Seed
	Sink       Sink              // nil — NopSink
	Dispatcher *event.Dispatcher // nil — без событий
}

// Engine — ядро симуляции частиц. Все методы вызываются из одного потока хоста.
type Engine struct {
	store      *entity.Store
	emission   *system.EmissionSystem
	physics    *system.PhysicsSystem
	lifecycle  *system.LifecycleSystem
	sink       Sink
	dispatcher *event.Dispatcher
	log        *logrus.Entry

	sm       *state.StateMachine
	active   *activeState
	inactive *inactiveState
	tornDown bool

	settings  system.EmissionSettings
	viewport  component.Vec2
	timeStep  float64
	fixedStep bool

	elapsed float64 // секунды активной симуляции
	stats   Stats

	// Параметры текущего тика для integrate
	stepDt    float64
	elapsedMs float64
	integrate func(p *component.Particle)
}

// NewEngine создаёт движок в состоянии Inactive.
// Нулевые Settings заменяются на config.Default().Engine.
func NewEngine(opts Options) *Engine {
	s := opts.Settings
	if s == (config.EngineSettings{}) {
		s = config.Default().Engine
	}
	if s.TimeStep <= 0 {
		s.TimeStep = config.TimeStep
	}
	if s.MaxBaseEmission <= 0 {
		s.MaxBaseEmission = config.MaxBaseEmission
	}
	if s.BaseLifetime <= 0 {
		s.BaseLifetime = config.DefaultBaseLifetime
	}
	rng := opts.Random
	if rng == nil {
		rng = utils.NewPRNGService(s.Seed)
	}
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	viewport := opts.Viewport
	if viewport.X <= 0 || viewport.Y <= 0 {
		viewport = component.Vec2{X: config.ScreenWidth, Y: config.ScreenHeight}
	}

	e := &Engine{
		store:      entity.NewStore(config.MaxBaseEmission * 4),
		physics:    system.NewPhysicsSystem(),
		sink:       sink,
		dispatcher: opts.Dispatcher,
		log:        logger.WithComponent("engine"),
		sm:         state.NewStateMachine(),
		settings: system.EmissionSettings{
			Intensity:    s.Intensity,
			EmissionRate: s.EmissionRate,
			BaseLifetime: s.BaseLifetime,
			Mode:         s.EmissionMode(),
			MaxBase:      s.MaxBaseEmission,
		},
		viewport:  viewport,
		timeStep:  s.TimeStep,
		fixedStep: s.FixedStep,
	}
	e.emission = system.NewEmissionSystem(e.store, rng, e.attach)
	e.lifecycle = system.NewLifecycleSystem(e.store, s.OutOfBoundsMargin, e.retire)
	e.lifecycle.SetViewport(viewport.X, viewport.Y)
	e.integrate = func(p *component.Particle) {
		e.physics.Step(p, e.stepDt, e.elapsedMs)
	}
	e.active = &activeState{engine: e}
	e.inactive = &inactiveState{engine: e}
	e.sm.SetState(e.inactive)

	if e.dispatcher != nil {
		e.dispatcher.Subscribe(event.PriceUpdated, e)
		e.dispatcher.Subscribe(event.ActiveChanged, e)
		e.dispatcher.Subscribe(event.ViewportResized, e)
	}
	return e
}

// OnEvent принимает события хоста.
func (e *Engine) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.PriceUpdated:
		if pair, ok := ev.Data.(event.PricePair); ok {
			e.OnPriceUpdate(pair.Previous, pair.Current)
		}
	case event.ActiveChanged:
		if on, ok := ev.Data.(bool); ok {
			if err := e.SetActive(on); err != nil {
				e.log.WithError(err).Warn("active toggle ignored")
			}
		}
	case event.ViewportResized:
		if vp, ok := ev.Data.(event.Viewport); ok {
			e.SetViewport(vp.Width, vp.Height)
		}
	}
}

// OnPriceUpdate создаёт частицы для изменения цены.
// Вне состояния Active и для пустого сигнала ничего не делает.
func (e *Engine) OnPriceUpdate(previous, current decimal.Decimal) (system.EmissionReport, bool) {
	if e.tornDown || !e.IsActive() {
		return system.EmissionReport{}, false
	}
	sig, ok := signal.Interpret(previous, current)
	if !ok {
		return system.EmissionReport{}, false
	}
	report := e.emission.Emit(sig, e.settings, e.viewport)
	e.stats.Emitted += report.Spawned
	e.stats.WarningsEmitted += report.Warnings
	e.stats.Live = e.store.Len()

	e.log.WithFields(logrus.Fields{
		"change":   sig.PercentChange,
		"mode":     report.Mode.String(),
		"spawned":  report.Spawned,
		"warnings": report.Warnings,
		"live":     e.stats.Live,
	}).Debug("particles emitted")
	e.dispatch(event.ParticlesEmitted, report)
	return report, true
}

// SetActive переключает движок. Выключение немедленно удаляет все частицы.
func (e *Engine) SetActive(on bool) error {
	if e.tornDown {
		return ErrTornDown
	}
	if on == e.IsActive() {
		return nil
	}
	if on {
		e.sm.SetState(e.active)
	} else {
		e.sm.SetState(e.inactive)
	}
	return nil
}

// IsActive сообщает, выполняются ли тики.
func (e *Engine) IsActive() bool {
	return e.sm.Is(stateActive)
}

// Tick выполняет один шаг симуляции длиной dt с явным временем elapsedMillis.
// Новые частицы, созданные до вызова, впервые двигаются в этом вызове.
func (e *Engine) Tick(dt, elapsedMillis float64) {
	if e.tornDown || !e.IsActive() || dt <= 0 {
		return
	}
	e.stepDt, e.elapsedMs = dt, elapsedMillis
	e.lifecycle.Update(dt, e.integrate)
	e.stats.Ticks++
	e.stats.Live = e.store.Len()
}

// Update продвигает симуляцию на время кадра хоста.
func (e *Engine) Update(deltaTime float64) {
	if e.tornDown {
		return
	}
	e.sm.Update(deltaTime)
}

// Teardown останавливает тики, удаляет все частицы и освобождает дескрипторы.
func (e *Engine) Teardown() {
	if e.tornDown {
		return
	}
	e.sm.SetState(nil)
	e.clear()
	e.tornDown = true
	if e.dispatcher != nil {
		e.dispatcher.Unsubscribe(event.PriceUpdated, e)
		e.dispatcher.Unsubscribe(event.ActiveChanged, e)
		e.dispatcher.Unsubscribe(event.ViewportResized, e)
	}
	e.log.Info("engine torn down")
}

// SetIntensity задаёт множитель эмиссии; отрицательные значения заменяются нулём.
func (e *Engine) SetIntensity(v float64) {
	if v < 0 {
		e.log.WithField("intensity", v).Warn("negative intensity clamped to 0")
		v = 0
	}
	e.settings.Intensity = v
}

// SetEmissionRate задаёт частоту эмиссии; отрицательные значения заменяются нулём.
func (e *Engine) SetEmissionRate(v float64) {
	if v < 0 {
		e.log.WithField("emission_rate", v).Warn("negative emission rate clamped to 0")
		v = 0
	}
	e.settings.EmissionRate = v
}

// SetMode задаёт режим эмиссии.
func (e *Engine) SetMode(m component.EmissionMode) {
	e.settings.Mode = m
}

// SetBaseLifetime задаёт базовое время жизни; неположительные значения игнорируются.
func (e *Engine) SetBaseLifetime(v float64) {
	if v <= 0 {
		e.log.WithField("base_lifetime", v).Warn("non-positive base lifetime ignored")
		return
	}
	e.settings.BaseLifetime = v
}

// SetViewport задаёт размер окна. Изменение размера удаляет все частицы.
func (e *Engine) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == e.viewport.X && height == e.viewport.Y {
		return
	}
	e.viewport = component.Vec2{X: width, Y: height}
	e.lifecycle.SetViewport(width, height)
	e.clear()
	e.log.WithFields(logrus.Fields{"width": width, "height": height}).Info("viewport resized")
}

// Settings возвращает текущие параметры эмиссии.
func (e *Engine) Settings() system.EmissionSettings {
	return e.settings
}

// Viewport возвращает текущий размер окна.
func (e *Engine) Viewport() component.Vec2 {
	return e.viewport
}

// Elapsed возвращает время активной симуляции в секундах.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Stats возвращает счётчики движка.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Live = e.store.Len()
	return s
}

// Len возвращает число живых частиц.
func (e *Engine) Len() int {
	return e.store.Len()
}

// Each вызывает fn для каждой живой частицы.
func (e *Engine) Each(fn func(p *component.Particle)) {
	e.store.Each(fn)
}

// Sprites добавляет в dst кадр отрисовки каждой живой частицы.
// Shape и Glow указывают внутрь хранилища и действительны до следующего
// тика или эмиссии.
func (e *Engine) Sprites(dst []component.Sprite) []component.Sprite {
	dst = dst[:0]
	for i := 0; i < e.store.Len(); i++ {
		p := e.store.At(i)
		dst = append(dst, component.Sprite{
			ID:       p.ID,
			Category: p.Category,
			Shape:    &p.Look.Shape,
			X:        p.Position.X,
			Y:        p.Position.Y,
			Rotation: utils.NormalizeDegrees(p.Rotation),
			Scale:    p.Scale,
			Size:     p.Look.Size,
			Opacity:  p.Opacity,
			Fill:     p.Look.Fill,
			Glow:     p.Look.Glow,
		})
	}
	return dst
}

// advance — шаг состояния Active с переменным временем кадра.
func (e *Engine) advance(st *activeState, deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime <= 0 {
		return
	}
	if !e.fixedStep {
		e.elapsed += deltaTime
		e.Tick(deltaTime, e.elapsed*1000)
		return
	}
	st.accumulator += deltaTime
	steps := 0
	for st.accumulator >= e.timeStep && steps < config.MaxStepsPerUpdate {
		e.elapsed += e.timeStep
		e.Tick(e.timeStep, e.elapsed*1000)
		st.accumulator -= e.timeStep
		steps++
	}
	if steps == config.MaxStepsPerUpdate {
		// Отстаём слишком сильно: остаток отбрасываем
		st.accumulator = 0
	}
}

func (e *Engine) attach(p *component.Particle) {
	e.sink.Attach(p)
}

func (e *Engine) retire(p *component.Particle, reason system.RetireReason) {
	if !e.sink.Detach(p.ID) {
		e.stats.StaleHandles++
		e.log.WithField("id", p.ID).Debug("visual already removed by host")
	}
	switch reason {
	case system.RetireExpired:
		e.stats.Expired++
	case system.RetireOutOfBounds:
		e.stats.Culled++
	case system.RetireCleared:
		e.stats.Cleared++
	}
}

// clear немедленно снимает все частицы.
func (e *Engine) clear() {
	n := e.lifecycle.Clear()
	e.stats.Live = 0
	if n > 0 {
		e.dispatch(event.ParticlesCleared, n)
	}
}

func (e *Engine) dispatch(t event.EventType, data interface{}) {
	if e.dispatcher != nil {
		e.dispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
