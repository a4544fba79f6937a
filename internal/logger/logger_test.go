// internal/logger/logger_test.go
package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.log")
	require.NoError(t, Init(Config{Level: "debug", OutputFile: path, MaxSize: 1}))
	t.Cleanup(func() { Close() })

	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	WithComponent("engine").WithField("live", 33).Info("particles emitted")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=engine")
	assert.Contains(t, string(data), "live=33")
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	err := Init(Config{Level: "chatty"})
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
	assert.NoError(t, Close())
}
