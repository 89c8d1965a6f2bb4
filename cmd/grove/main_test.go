package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grove.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// run executes the command line with a config file that does not exist
// unless args name one.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
debug: true
assets: ./art
placeholders: true
frames: 30
frame_rate: 30
scene: pulse
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:     "debug",
		Debug:        true,
		Assets:       "./art",
		Placeholders: true,
		Frames:       30,
		FrameRate:    30,
		Scene:        "pulse",
	}, cfg)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "frames: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Frames)
	assert.Equal(t, 60.0, cfg.FrameRate)
	assert.Equal(t, "showcase", cfg.Scene)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "frames: [1\n"},
		{"negative frames", "frames: -1\n"},
		{"zero frame rate", "frame_rate: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestNewLoggerRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, slog.LevelInfo).Info("x", "error", "boom")
	assert.Contains(t, buf.String(), "err=boom")
}

func TestScenesCommand(t *testing.T) {
	out, _, err := run(t, "scenes")
	require.NoError(t, err)
	assert.Equal(t, "pulse\nshared\nshowcase\n", out)
}

func TestMaterializeShared(t *testing.T) {
	out, _, err := run(t, "materialize", "shared")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "ContainerVisual#"), lines[0])
	assert.Contains(t, out, `"left" offset=(0,0) size=(64,64)`)
	assert.Contains(t, out, `"right" offset=(80,0) size=(64,64)`)
	assert.Equal(t, 2, strings.Count(out, `"fill"`), "shared brush is printed under both sprites")
	assert.Contains(t, out, "objects=4 ")
}

func TestMaterializeNoStats(t *testing.T) {
	out, _, err := run(t, "materialize", "shared", "--no-stats")
	require.NoError(t, err)
	assert.NotContains(t, out, "objects=")
}

func TestMaterializeDefaultSceneFromConfig(t *testing.T) {
	path := writeConfig(t, "scene: shared\n")
	out, _, err := run(t, "materialize", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"left"`)
}

func TestMaterializeUnknownScene(t *testing.T) {
	_, _, err := run(t, "materialize", "nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown scene "nowhere"`)
}

func TestMaterializeTooManyArgs(t *testing.T) {
	_, _, err := run(t, "materialize", "shared", "pulse")
	assert.Error(t, err)
}

func TestMaterializeBadLogLevel(t *testing.T) {
	_, _, err := run(t, "materialize", "shared", "--log-level", "loud")
	assert.Error(t, err)
}

func TestMaterializeUnresolvedImage(t *testing.T) {
	path := writeConfig(t, "assets: "+t.TempDir()+"\n")
	out, stderr, err := run(t, "materialize", "showcase", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unresolved=1")
	assert.Contains(t, stderr, "logo.png")
}

func TestMaterializePlaceholders(t *testing.T) {
	path := writeConfig(t, "placeholders: true\nassets: "+t.TempDir()+"\n")
	out, _, err := run(t, "materialize", "showcase", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unresolved=0")
}

func TestMaterializeDebugStats(t *testing.T) {
	path := writeConfig(t, "debug: true\nlog_level: debug\n")
	_, stderr, err := run(t, "materialize", "shared", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "materialized")
}

func TestMaterializeFrames(t *testing.T) {
	out, _, err := run(t, "materialize", "pulse", "--frames", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "animating=")
}

func TestMaterializeFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "assets: /nowhere\nplaceholders: false\nframe_rate: 30\nscene: shared\n")
	out, stderr, err := run(t, "materialize", "showcase", "--config", path,
		"--assets", t.TempDir(), "--placeholders", "--frame-rate", "120",
		"--debug", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, `"showcase"`, "positional scene overrides the config scene")
	assert.Contains(t, out, "unresolved=0")
	assert.Contains(t, stderr, "materialized")
}

func TestMaterializeFlagValidation(t *testing.T) {
	_, _, err := run(t, "materialize", "shared", "--frame-rate", "0")
	assert.Error(t, err)

	_, _, err = run(t, "materialize", "shared", "--frames=-2")
	assert.Error(t, err)
}
