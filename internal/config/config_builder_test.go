package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstLayerWins verifies that a field set by an earlier layer is
// not replaced by a later one, while unset fields are filled.
func TestBuild_FirstLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0"}, Relay: Relay{Address: ":9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":9000", cfg.Relay.Address)
}

// TestBuild_ExplicitFalseSurvivesDefaults verifies that pointer switches keep
// an explicit false from a higher-priority layer.
func TestBuild_ExplicitFalseSurvivesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Device: Device{SyncFiles: ptr(false), MaxFileSizeMB: ptr(int64(0))},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Device.SyncFiles)
	assert.False(t, *cfg.Device.SyncFiles)
	assert.Equal(t, int64(0), *cfg.Device.MaxFileSizeMB)
	assert.True(t, *cfg.Device.SoundEnabled, "unset switches take the default")
}

func TestBuild_ValidatesNegativeCeiling(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Device: Device{MaxFileSizeMB: ptr(int64(-1))}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidDeviceConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierLayer(t *testing.T) {
	var body StructuredJSONConfig
	body.Device.PollInterval = Duration(3 * time.Second)
	path := writeTempJSONConfig(t, body)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 3*time.Second, b.configs[1].Device.PollInterval)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	var body StructuredJSONConfig
	body.Device.Name = "from-json"
	body.Device.WatchInterval = Duration(250 * time.Millisecond)
	body.Relay.Address = ":7000"
	path := writeTempJSONConfig(t, body)

	t.Setenv("CONFIG", path)
	t.Setenv("DEVICE_NAME", "from-env")

	cfg, err := GetStructuredConfig([]string{"-n", "from-flag", "-a", ":7500"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Device.Name, "env beats flags and json")
	assert.Equal(t, ":7500", cfg.Relay.Address, "flags beat json")
	assert.Equal(t, 250*time.Millisecond, cfg.Device.WatchInterval, "json beats defaults")
	assert.Equal(t, defaultPollInterval, cfg.Device.PollInterval)
}
