// internal/config/settings.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-price-particles/internal/component"
)

// ErrInvalidConfig возвращается Validate для недопустимых значений.
var ErrInvalidConfig = errors.New("invalid config")

// EngineSettings — параметры эмиссии и симуляции.
type EngineSettings struct {
	Intensity         float64 `yaml:"intensity"`
	EmissionRate      float64 `yaml:"emission_rate"`
	Mode              string  `yaml:"mode"`
	BaseLifetime      float64 `yaml:"base_lifetime"`
	TimeStep          float64 `yaml:"time_step"`
	FixedStep         bool    `yaml:"fixed_step"`
	MaxBaseEmission   int     `yaml:"max_base_emission"`
	OutOfBoundsMargin float64 `yaml:"out_of_bounds_margin"`
	Seed              int64   `yaml:"seed"`
}

// ViewportSettings — начальный размер окна хоста.
type ViewportSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FeedSettings — источник котировок.
type FeedSettings struct {
	Provider    string        `yaml:"provider"` // random | binance
	Symbol      string        `yaml:"symbol"`
	URL         string        `yaml:"url"`
	StartPrice  string        `yaml:"start_price"`
	Volatility  float64       `yaml:"volatility"`   // стандартный шаг random walk, проценты
	SpikeChance float64       `yaml:"spike_chance"` // вероятность резкого скачка
	Interval    time.Duration `yaml:"interval"`
}

// LogSettings — настройки logrus и ротации файла.
type LogSettings struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Settings — полная конфигурация приложения.
type Settings struct {
	Engine   EngineSettings   `yaml:"engine"`
	Viewport ViewportSettings `yaml:"viewport"`
	Feed     FeedSettings     `yaml:"feed"`
	Log      LogSettings      `yaml:"log"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Settings {
	return Settings{
		Engine: EngineSettings{
			Intensity:         DefaultIntensity,
			EmissionRate:      DefaultEmissionRate,
			Mode:              component.ModeMixed.String(),
			BaseLifetime:      DefaultBaseLifetime,
			TimeStep:          TimeStep,
			FixedStep:         true,
			MaxBaseEmission:   MaxBaseEmission,
			OutOfBoundsMargin: OutOfBoundsMargin,
		},
		Viewport: ViewportSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Feed: FeedSettings{
			Provider:    "random",
			Symbol:      "BTCUSDT",
			URL:         "wss://stream.binance.com:9443/stream",
			StartPrice:  "100.00",
			Volatility:  0.8,
			SpikeChance: 0.05,
			Interval:    500 * time.Millisecond,
		},
		Log: LogSettings{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// Load читает YAML-файл поверх значений по умолчанию.
// Отсутствующий файл не является ошибкой.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse config %s", path)
	}
	return s, nil
}

// LoadEnvFiles подгружает .env файлы в окружение процесса.
// Отсутствующие файлы пропускаются.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load env file %s", f)
		}
	}
	return nil
}

// ApplyEnv переопределяет настройки переменными окружения FX_*.
func (s *Settings) ApplyEnv() error {
	floats := map[string]*float64{
		"FX_INTENSITY":     &s.Engine.Intensity,
		"FX_EMISSION_RATE": &s.Engine.EmissionRate,
		"FX_BASE_LIFETIME": &s.Engine.BaseLifetime,
		"FX_VOLATILITY":    &s.Feed.Volatility,
	}
	for key, dst := range floats {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", key)
		}
		*dst = f
	}

	strs := map[string]*string{
		"FX_MODE":          &s.Engine.Mode,
		"FX_FEED_PROVIDER": &s.Feed.Provider,
		"FX_SYMBOL":        &s.Feed.Symbol,
		"FX_FEED_URL":      &s.Feed.URL,
		"FX_LOG_LEVEL":     &s.Log.Level,
		"FX_LOG_FILE":      &s.Log.File,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("FX_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parse FX_SEED")
		}
		s.Engine.Seed = seed
	}
	return nil
}

// ApplyOverrides применяет флаги командной строки; пустые и нулевые значения пропускаются.
func (s *Settings) ApplyOverrides(symbol, provider string, seed int64) {
	if symbol != "" {
		s.Feed.Symbol = symbol
	}
	if provider != "" {
		s.Feed.Provider = provider
	}
	if seed != 0 {
		s.Engine.Seed = seed
	}
}

// Validate проверяет настройки на допустимость.
func (s Settings) Validate() error {
	e := s.Engine
	switch {
	case e.Intensity < 0:
		return errors.Wrapf(ErrInvalidConfig, "intensity %v is negative", e.Intensity)
	case e.EmissionRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "emission rate %v is negative", e.EmissionRate)
	case e.BaseLifetime <= 0:
		return errors.Wrapf(ErrInvalidConfig, "base lifetime %v must be positive", e.BaseLifetime)
	case e.TimeStep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "time step %v must be positive", e.TimeStep)
	case e.MaxBaseEmission <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max base emission %d must be positive", e.MaxBaseEmission)
	case e.OutOfBoundsMargin < 0:
		return errors.Wrapf(ErrInvalidConfig, "out of bounds margin %v is negative", e.OutOfBoundsMargin)
	case s.Viewport.Width <= 0 || s.Viewport.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "viewport %dx%d", s.Viewport.Width, s.Viewport.Height)
	}
	if _, err := component.ParseEmissionMode(e.Mode); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// EmissionMode возвращает разобранный режим эмиссии.
func (e EngineSettings) EmissionMode() component.EmissionMode {
	m, _ := component.ParseEmissionMode(e.Mode)
	return m
}
