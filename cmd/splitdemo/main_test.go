package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splitpane "github.com/grindlemire/go-splitpane"
)

const layoutTOML = `
direction = "horizontal"

[[panes]]
id = "left"
size = 50.0

[[panes]]
id = "right"
size = 50.0

[[panes.children]]
id = "top"
size = 50.0

[[panes.children]]
id = "bottom"
size = 50.0
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "splitdemo version "+version+"\n", out)
}

func TestSolve_Text(t *testing.T) {
	path := writeFile(t, "layout.toml", layoutTOML)

	out, err := execute(t, "solve", "--layout", path, "--width", "81", "--height", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "leaf left 50.00% at (0,0) 40x10")
	assert.Contains(t, out, "split right 50.00% at (41,0) 40x10")
	assert.Contains(t, out, "  leaf top")
	assert.Contains(t, out, "separator root/0 horizontal at (40,0) 1x10")
	assert.Contains(t, out, "separator right/0 vertical")
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "layout.toml", layoutTOML)

	out, err := execute(t, "solve", "--layout", path, "--width", "81", "--height", "10", "--json")
	require.NoError(t, err)

	var frame solvedFrame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Len(t, frame.Panes, 4)
	assert.Len(t, frame.Separators, 2)
}

func TestSolve_RequiresLayout(t *testing.T) {
	_, err := execute(t, "solve")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		path := writeFile(t, "layout.toml", layoutTOML)
		out, err := execute(t, "validate", "--layout", path)
		require.NoError(t, err)
		assert.Contains(t, out, ": ok")
	})

	t.Run("repairs reported", func(t *testing.T) {
		path := writeFile(t, "layout.json", `{"panes": [{"id": "a", "size": 10}, {"id": "b", "size": 30}]}`)
		out, err := execute(t, "validate", "--layout", path)
		require.NoError(t, err)
		assert.Contains(t, out, "repaired")
		assert.Contains(t, out, "--fix")
	})

	t.Run("fix writes the file", func(t *testing.T) {
		path := writeFile(t, "layout.yaml", "panes:\n  - id: a\n    size: 10\n  - id: b\n    size: 30\n")
		_, err := execute(t, "validate", "--layout", path, "--fix")
		require.NoError(t, err)

		cfg, err := splitpane.LoadConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg.Panes, 2)
		assert.InDelta(t, 25, cfg.Panes[0].Size, splitpane.Epsilon)
		assert.InDelta(t, 75, cfg.Panes[1].Size, splitpane.Epsilon)

		out, err := execute(t, "validate", "--layout", path)
		require.NoError(t, err)
		assert.Contains(t, out, ": ok")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := writeFile(t, "layout.json", `{"panes": [{"id": "a", "size": 50}, {"id": "a", "size": 50}]}`)
		_, err := execute(t, "validate", "--layout", path)
		assert.ErrorIs(t, err, splitpane.ErrDuplicateID)
	})
}

func TestRun_RequiresTerminal(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestDemoConfig(t *testing.T) {
	layout, err := splitpane.New(demoConfig(), nil)
	require.NoError(t, err)
	assert.Empty(t, layout.Repairs())
}
