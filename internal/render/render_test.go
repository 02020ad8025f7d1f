package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"regextree/internal/regexlib"
	"regextree/internal/testutil"
)

func parse(t *testing.T, src string) *regexlib.Tree {
	t.Helper()
	tree, err := regexlib.Parse(src)
	require.NoError(t, err)
	return tree
}

func TestDocument(t *testing.T) {
	tree := parse(t, "a")
	var buf bytes.Buffer
	require.NoError(t, Document(&buf, tree))
	assert.Equal(t, "digraph {\n"+tree.DOT()+"}\n", buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "digraph {\n0 [label=\"E\"]\n0 -> 1\n"))
}

func TestDocumentEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Document(&buf, regexlib.NewTree()))
	assert.Equal(t, "digraph {\n}\n", buf.String())
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, parse(t, "a")))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 10)
	for _, want := range []string{"E #0", "M #1", "N #2", "a #3", "N' #4", "eps #9"} {
		assert.Contains(t, out, want)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, parse(t, "a|b")))

	var root Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	assert.Equal(t, 0, root.ID)
	assert.Equal(t, "E", root.Label)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "M", root.Children[0].Label)
	assert.Equal(t, "E'", root.Children[1].Label)
	assert.Equal(t, "|", root.Children[1].Children[0].Label)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, parse(t, "a")))

	var root Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &root))
	assert.Equal(t, "E", root.Label)
	assert.Equal(t, "a", root.Children[0].Children[0].Children[0].Label)
	assert.Equal(t, 3, root.Children[0].Children[0].Children[0].ID)
}

func TestIsImageFormat(t *testing.T) {
	assert.True(t, IsImageFormat("svg"))
	assert.True(t, IsImageFormat("png"))
	assert.False(t, IsImageFormat("dot"))
	assert.False(t, IsImageFormat("tree"))
}

// helperCommand re-runs the test binary as a stand-in for Graphviz.
func helperCommand(mode string) CommandFunc {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_MODE="+mode)
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	args = args[1:] // dot -Tsvg -o out in
	switch os.Getenv("HELPER_MODE") {
	case "fail":
		fmt.Fprintln(os.Stderr, "Error: syntax error in line 1")
		os.Exit(2)
	case "hang":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	}
	if err := os.WriteFile(args[3], []byte(args[1]+" "+args[4]), 0o644); err != nil {
		os.Exit(3)
	}
	os.Exit(0)
}

func TestRendererRender(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "graph.svg")
	r := NewRenderer("dot", time.Minute, testutil.NewTestLogger(t, slog.LevelDebug))
	r.Command = helperCommand("ok")

	require.NoError(t, r.Render(context.Background(), "graph.dot", "svg", out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "-Tsvg graph.dot", string(data))
}

func TestRendererFailure(t *testing.T) {
	r := NewRenderer("dot", time.Minute, testutil.NewTestLogger(t, slog.LevelDebug))
	r.Command = helperCommand("fail")

	err := r.Render(context.Background(), "graph.dot", "png", filepath.Join(t.TempDir(), "graph.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dot failed")
	assert.Contains(t, err.Error(), "syntax error in line 1")
}

func TestRendererTimeout(t *testing.T) {
	r := NewRenderer("dot", 50*time.Millisecond, testutil.NewTestLogger(t, slog.LevelDebug))
	r.Command = helperCommand("hang")

	err := r.Render(context.Background(), "graph.dot", "svg", filepath.Join(t.TempDir(), "graph.svg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRendererCancelled(t *testing.T) {
	r := NewRenderer("dot", time.Minute, testutil.NewTestLogger(t, slog.LevelDebug))
	r.Command = helperCommand("hang")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	err := r.Render(ctx, "graph.dot", "svg", filepath.Join(t.TempDir(), "graph.svg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "dot cancelled")
	assert.NotContains(t, err.Error(), "timed out")
}

func TestRendererRejectsTextFormat(t *testing.T) {
	r := NewRenderer("dot", time.Minute, nil)
	err := r.Render(context.Background(), "graph.dot", "dot", "graph.out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}
