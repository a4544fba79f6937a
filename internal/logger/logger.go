// internal/logger/logger.go
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger — глобальный логгер. До Init пишет в никуда.
	Logger = newDiscard()
	mu     sync.Mutex
	rotor  *lumberjack.Logger
)

// Config — настройки логирования.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // пусто — только консоль
	MaxSize    int    // мегабайты
	MaxBackups int
	MaxAge     int // дни
	Compress   bool
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init настраивает глобальный логгер.
// Неизвестный уровень заменяется на info, ошибка разбора возвращается.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	l := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	if rotor != nil {
		rotor.Close()
		rotor = nil
	}
	writers := []io.Writer{os.Stdout}
	if cfg.OutputFile != "" {
		rotor = &lumberjack.Logger{
			Filename:   cfg.OutputFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, rotor)
	}
	l.SetOutput(io.MultiWriter(writers...))

	Logger = l
	return err
}

// WithComponent возвращает запись с полем component.
func WithComponent(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}

// Close закрывает файл ротации, если он открыт.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotor == nil {
		return nil
	}
	err := rotor.Close()
	rotor = nil
	return err
}
