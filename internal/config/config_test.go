// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eitherstress.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Stress, cfg.Stress)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
stress:
  trials: 500
  workers: 2
  queue_capacity: 8
  seed: 42
  rate: 250.5
  mix:
    send_send: 1
    send_discard: 0
    discard_send: 0
    discard_discard: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 500, cfg.Stress.Trials)
	assert.Equal(t, 2, cfg.Stress.Workers)
	assert.Equal(t, 8, cfg.Stress.QueueCapacity)
	assert.Equal(t, uint64(42), cfg.Stress.Seed)
	assert.Equal(t, MixConfig{SendSend: 1}, cfg.Stress.Mix)
	assert.Equal(t, 250.5, cfg.Stress.Rate)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "stress:\n  trials: 500\n")
	t.Setenv("EITHERSTRESS_STRESS_TRIALS", "77")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Stress.Trials)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeConfig(t, "stress:\n  workers: 9\n")
	t.Setenv("EITHERSTRESS_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Stress.Workers)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfig(t, "log:\n  level: loud\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoad_InvalidStress(t *testing.T) {
	cases := map[string]string{
		"workers":  "stress:\n  workers: 0\n",
		"queue":    "stress:\n  queue_capacity: -1\n",
		"trials":   "stress:\n  trials: -5\n",
		"zero mix": "stress:\n  mix:\n    send_send: 0\n    send_discard: 0\n    discard_send: 0\n    discard_discard: 0\n",
		"negative": "stress:\n  mix:\n    send_send: -1\n",
		"rate":     "stress:\n  rate: -3\n",
		"tiny q":   "stress:\n  queue_capacity: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
