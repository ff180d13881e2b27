package main

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-inspect/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModel writes a glTF file with two triangle nodes, "beam" and "rail", the second marked
// as scaffolding.
func writeModel(t *testing.T, dir string) string {
	t.Helper()
	buf := make([]byte, 36)
	for i, v := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf)
	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scenes": [{"name": "tower", "nodes": [0, 1]}],
  "nodes": [
    {"name": "beam", "mesh": 0},
    {"name": "rail", "mesh": 0, "translation": [0, 2, 0], "extras": {"pickable": false}}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
  "bufferViews": [{"buffer": 0, "byteLength": 36}],
  "buffers": [{"byteLength": 36, "uri": %q}]
}`, uri)
	path := filepath.Join(dir, "tower.gltf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveConfigAppliesFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "viewer.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[scene]
model = "site.gltf"
records = "site.yaml"

[picking]
policy = "double"
`), 0o644))

	cfg, err := resolveConfig(&options{configPath: cfgPath}, "")
	require.NoError(t, err)
	assert.Equal(t, "site.gltf", cfg.Scene.Model)
	assert.Equal(t, "site.yaml", cfg.Scene.Records)

	cfg, err = resolveConfig(&options{
		configPath: cfgPath,
		records:    "other.yaml",
		logLevel:   "debug",
		logFile:    "viewer.log",
		policy:     "single",
	}, "tower.glb")
	require.NoError(t, err)
	assert.Equal(t, "tower.glb", cfg.Scene.Model)
	assert.Equal(t, "other.yaml", cfg.Scene.Records)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "viewer.log", cfg.Log.File)
	assert.Equal(t, "single", cfg.PickPolicy().String())
}

func TestResolveConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")

	_, err := resolveConfig(&options{configPath: missing}, "")
	assert.ErrorContains(t, err, "no model given")

	_, err = resolveConfig(&options{configPath: missing, policy: "triple"}, "site.gltf")
	assert.ErrorContains(t, err, "picking.policy")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "viewer.toml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[picking]")
	assert.Contains(t, out, "double")
}

func TestInfoListsObjects(t *testing.T) {
	dir := t.TempDir()
	model := writeModel(t, dir)
	records := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(records, []byte("beam:\n  vendor: Acme\n  workers: 3\n"), 0o644))

	out, err := execute(t, "info", model, "--records", records, "--config", filepath.Join(dir, "none.toml"))
	require.NoError(t, err)

	assert.Contains(t, out, "scene tower: 2 objects, 1 selectable")
	assert.Regexp(t, `beam\s+selectable\s+1\s+default\s+yes`, out)
	assert.Regexp(t, `rail\s+scaffolding\s+1\s+default\s+no`, out)
}
