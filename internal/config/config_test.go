package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := writeFile(t, "tvremote.yaml", `
log:
  level: warn
  format: json
channels:
  extra:
    - name: Skjár einn
      id: 555
      aliases: [skjárinn]
priorities:
  remote.playback: 10
inflections:
  extra:
    - base: ófærð
      forms: [ófærðar]
`)
	t.Setenv("TVREMOTE_LOG_LEVEL", "debug")
	t.Setenv("TVREMOTE_PRIORITIES", "timetravel.startover:0")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Len(t, cfg.Channels.Extra, 1)

	prio := cfg.PriorityTable()
	require.Equal(t, 0, prio.Of(parser.AltStartOver))
	require.Equal(t, 720, prio.Of(parser.AltRemoteProgram))

	dir, err := cfg.Directory()
	require.NoError(t, err)
	e, ok := dir.Lookup(strings.Fields("skjár 1"))
	require.True(t, ok)
	require.EqualValues(t, 555, e.ID)
	_, ok = dir.Lookup([]string{"rúv"})
	require.True(t, ok, "defaults are kept unless replaced")

	inf, err := cfg.Inflector()
	require.NoError(t, err)
	f, err := inf.Inflect("ófærðar")
	require.NoError(t, err)
	require.Equal(t, "ófærð", f.Base)
}

func TestConfiguredAssembler(t *testing.T) {
	path := writeFile(t, "tvremote.yaml", `
channels:
  extra:
    - name: Skjár einn
      id: 555
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	a, err := cfg.Assembler()
	require.NoError(t, err)

	c, _, err := a.Assemble(parser.New().Parse("skiptu yfir á skjá einn"))
	require.NoError(t, err)
	require.Equal(t, "CHANNEL;skjá einn", command.Encode(c))

	c, _, err = a.Assemble(parser.New().Parse("skiptu á skjár einn"))
	require.NoError(t, err)
	require.Equal(t, "CHANNEL;555", command.Encode(c))
}

func TestReplaceChannels(t *testing.T) {
	chans := writeFile(t, "channels.yaml", `
- name: Eina stöðin
  id: 7
`)
	t.Setenv("TVREMOTE_CHANNELS_FILE", chans)
	t.Setenv("TVREMOTE_CHANNELS_REPLACE", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	dir, err := cfg.Directory()
	require.NoError(t, err)
	require.Len(t, dir.Entries(), 1)
	_, ok := dir.Lookup([]string{"rúv"})
	require.False(t, ok)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("TVREMOTE_LOG_LEVEL", "loud")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("TVREMOTE_LOG_LEVEL", "info")
	t.Setenv("TVREMOTE_LOG_FORMAT", "xml")
	_, err = Load("")
	require.Error(t, err)

	bad := writeFile(t, "bad.yaml", "log: [")
	t.Setenv("TVREMOTE_LOG_FORMAT", "json")
	_, err = Load(bad)
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Format = "json"
	l, err := cfg.Logger()
	require.NoError(t, err)
	require.NotNil(t, l)
}
