// cmd/viewer/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-price-particles/internal/app"
	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/logger"
	"go-price-particles/internal/ui"
	"go-price-particles/pkg/render/ebitensink"
)

// Viewer — окно ebiten поверх Runtime
type Viewer struct {
	rt             *app.Runtime
	renderer       *ebitensink.EbitenRenderer
	indicator      *ui.StatusIndicator
	sprites        []component.Sprite
	lastUpdateTime time.Time
	quit           <-chan struct{}
}

func (v *Viewer) Update() error {
	select {
	case <-v.quit:
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.rt.Toggle()
		v.indicator.HandleClick()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if v.indicator.IsClicked(x, y) {
			v.rt.Toggle()
			v.indicator.HandleClick()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		v.rt.CycleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		// Сброс на стороне хоста: движок снимет частицы как устаревшие
		v.renderer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.rt.AdjustIntensity(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.rt.AdjustIntensity(-1)
	}

	v.rt.Pump()

	now := time.Now()
	deltaTime := now.Sub(v.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	v.lastUpdateTime = now
	v.rt.Engine.Update(deltaTime)
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	v.sprites = v.rt.Engine.Sprites(v.sprites)
	v.renderer.Draw(screen, v.sprites)
	v.indicator.Draw(screen, v.rt.Engine.IsActive(), v.rt.StatusLines())
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.rt.Resize(outsideWidth, outsideHeight)
	v.indicator.X = float32(outsideWidth - config.IndicatorOffsetX)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "assets/config/particles.yaml", "path to YAML config")
	symbol := flag.String("symbol", "", "instrument symbol (overrides config)")
	provider := flag.String("feed", "", "price feed provider: random | binance")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 uses current time")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	settings, err := app.LoadSettings(*configPath, ".env")
	if err != nil {
		logger.Logger.SetOutput(os.Stderr)
		logger.Logger.WithError(err).Fatal("load config")
	}
	settings.ApplyOverrides(*symbol, *provider, *seed)

	if err := logger.Init(logger.Config{
		Level:      settings.Log.Level,
		OutputFile: settings.Log.File,
		MaxSize:    settings.Log.MaxSize,
		MaxBackups: settings.Log.MaxBackups,
		MaxAge:     settings.Log.MaxAge,
		Compress:   settings.Log.Compress,
	}); err != nil {
		logger.Logger.WithError(err).Warn("unknown log level, using info")
	}
	defer logger.Close()
	log := logger.WithComponent("viewer")

	if *pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	renderer := ebitensink.NewEbitenRenderer()
	rt, err := app.NewRuntime(settings, renderer, nil)
	if err != nil {
		log.WithError(err).Fatal("create runtime")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rt.Start(ctx)

	viewer := &Viewer{
		rt:             rt,
		renderer:       renderer,
		indicator:      ui.NewStatusIndicator(float32(settings.Viewport.Width-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius),
		lastUpdateTime: time.Now(),
		quit:           ctx.Done(),
	}
	ebiten.SetWindowSize(settings.Viewport.Width, settings.Viewport.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Price Particles: " + settings.Feed.Symbol)
	if err := ebiten.RunGame(viewer); err != nil {
		log.WithError(err).Error("viewer stopped")
	}
	if err := rt.Close(); err != nil {
		log.WithError(err).Warn("runtime close")
	}
}
