// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"code.hybscloud.com/either/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zap.InfoLevel, ParseLevel("whatever"))
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stress.log")
	logger, err := SetupLogger(config.LogConfig{
		Level:   "info",
		Format:  "json",
		Outputs: []string{path},
	})
	require.NoError(t, err)

	logger.Info("trial batch done", zap.Int("trials", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"trial batch done"`)
	assert.Contains(t, string(data), `"trials":3`)
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.log")
	logger, err := SetupLogger(config.LogConfig{
		Level:   "warn",
		Format:  "console",
		Outputs: []string{path},
	})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSetupLogger_Rotation(t *testing.T) {
	dir := t.TempDir()
	rotated := filepath.Join(dir, "rotated.log")
	logger, err := SetupLogger(config.LogConfig{
		Level:   "info",
		Format:  "json",
		Outputs: []string{filepath.Join(dir, "ignored.log")},
		Rotation: config.RotationConfig{
			Enable:   true,
			Filename: rotated,
		},
	})
	require.NoError(t, err)

	logger.Info("rotating")
	_ = logger.Sync()

	_, err = os.Stat(rotated)
	assert.NoError(t, err)
}

func TestChooseFilename(t *testing.T) {
	c := config.LogConfig{Rotation: config.RotationConfig{Enable: true, Filename: "r.log"}}
	assert.Equal(t, "r.log", chooseFilename("o.log", c))
	c.Rotation.Enable = false
	assert.Equal(t, "o.log", chooseFilename("o.log", c))
}
