// cmd/viewer_raylib/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-price-particles/internal/app"
	"go-price-particles/internal/component"
	"go-price-particles/internal/config"
	"go-price-particles/internal/logger"
	"go-price-particles/pkg/render/raylibsink"
)

func main() {
	configPath := flag.String("config", "assets/config/particles.yaml", "path to YAML config")
	symbol := flag.String("symbol", "", "instrument symbol (overrides config)")
	provider := flag.String("feed", "", "price feed provider: random | binance")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 uses current time")
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
	log := logger.WithComponent("viewer.raylib")

	renderer := raylibsink.NewRaylibRenderer()
	rt, err := app.NewRuntime(settings, renderer, nil)
	if err != nil {
		log.WithError(err).Fatal("create runtime")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Инициализация окна ---
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.Viewport.Width), int32(settings.Viewport.Height), "Price Particles: "+settings.Feed.Symbol)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rt.Start(ctx)
	var sprites []component.Sprite

	// --- Главный цикл ---
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		// --- Обновление (логика) ---
		if rl.IsWindowResized() {
			rt.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			rt.Toggle()
		case rl.IsKeyPressed(rl.KeyM):
			rt.CycleMode()
		case rl.IsKeyPressed(rl.KeyC):
			renderer.Reset()
		case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
			rt.AdjustIntensity(1)
		case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
			rt.AdjustIntensity(-1)
		}

		rt.Pump()
		rt.Engine.Update(float64(rl.GetFrameTime()))
		sprites = rt.Engine.Sprites(sprites)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		renderer.Draw(sprites)

		state := config.InactiveColor
		if rt.Engine.IsActive() {
			state = config.ActiveColor
		}
		rl.DrawCircle(int32(rl.GetScreenWidth()-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius, state)
		for n, line := range rt.StatusLines() {
			rl.DrawText(line, config.IndicatorOffsetX/2, int32(config.IndicatorOffsetX/2+n*config.HUDLineHeight), 14, config.TextLightColor)
		}
		rl.EndDrawing()
	}

	if err := rt.Close(); err != nil {
		log.WithError(err).Warn("runtime close")
	}
}
