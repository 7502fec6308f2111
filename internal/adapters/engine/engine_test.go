package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/sema/internal/adapters/engine"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
)

const mainSource = `import os
from typing import List


def greet(name):
    """Say hello."""
    return "Hello " + name


class Greeter:
    """Greets people."""

    def greet_all(self, names):
        for n in names:
            greet(n)


value = greet("world")
`

// writeWorkspace lays out a temp workspace and returns its root.
func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func buildArtifact(t *testing.T, eng *engine.Engine, root, file string) ports.Artifact {
	t.Helper()
	art, err := eng.Build(context.Background(), filepath.Join(root, file))
	require.NoError(t, err)
	t.Cleanup(art.Close)
	return art
}

func TestEngine_BuildRejectsBinaryContent(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"bad.py": "x = 1\n\xff\xfe"})
	eng := engine.New(root)

	_, err := eng.Build(context.Background(), filepath.Join(root, "bad.py"))
	require.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestEngine_BuildMissingFile(t *testing.T) {
	root := writeWorkspace(t, nil)
	eng := engine.New(root)

	_, err := eng.Build(context.Background(), filepath.Join(root, "gone.py"))
	require.Error(t, err)
}

func TestEngine_DefinitionsLocal(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	// The call inside Greeter.greet_all.
	locs, err := eng.Definitions(art, ports.Position{Line: 15, Col: 13})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "main.py", locs[0].File)
	assert.Equal(t, 5, locs[0].Line)
}

func TestEngine_DefinitionsPrefersLocalOverImport(t *testing.T) {
	source := `from os.path import join


def join(a, b):
    return a + b


x = join(1, 2)
`
	root := writeWorkspace(t, map[string]string{"mod.py": source})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "mod.py")

	locs, err := eng.Definitions(art, ports.Position{Line: 8, Col: 5})
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, 4, locs[0].Line, "the local definition wins")
	assert.Equal(t, 1, locs[1].Line)
}

func TestEngine_DefinitionsFallsBackToWorkspaceScan(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"main.py":  mainSource,
		"other.py": "x = greet(\"y\")\n",
	})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "other.py")

	locs, err := eng.Definitions(art, ports.Position{Line: 1, Col: 5})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "main.py", locs[0].File)
	assert.Equal(t, 5, locs[0].Line)
}

func TestEngine_DefinitionsUnknownName(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"lone.py": "x = mystery()\n"})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "lone.py")

	_, err := eng.Definitions(art, ports.Position{Line: 1, Col: 5})
	require.ErrorIs(t, err, domain.ErrNoSymbolAtPosition)
}

func TestEngine_NoSymbolAtPosition(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	_, err := eng.Definitions(art, ports.Position{Line: 3, Col: 1})
	require.ErrorIs(t, err, domain.ErrNoSymbolAtPosition)
}

func TestEngine_Occurrences(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	locs, err := eng.Occurrences(art, ports.Position{Line: 5, Col: 5})
	require.NoError(t, err)

	lines := make([]int, 0, len(locs))
	for _, l := range locs {
		assert.Equal(t, "main.py", l.File)
		lines = append(lines, l.Line)
	}
	assert.ElementsMatch(t, []int{5, 15, 18}, lines)
}

func TestEngine_ReferencesAcrossWorkspace(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"main.py": "def greet(name):\n    return name\n\ngreet(\"a\")\n",
		"util.py": "result = greet(\"b\")\n",
	})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	locs, err := eng.References(context.Background(), art, ports.Position{Line: 1, Col: 5})
	require.NoError(t, err)
	require.Len(t, locs, 3)

	files := map[string]int{}
	for _, l := range locs {
		files[l.File]++
	}
	assert.Equal(t, 2, files["main.py"])
	assert.Equal(t, 1, files["util.py"])
}

func TestEngine_ReferencesSkipIgnoredDirs(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"main.py":              "def greet(name):\n    return name\n",
		".venv/lib/copy.py":    "greet(\"x\")\n",
		"__pycache__/cache.py": "greet(\"y\")\n",
	})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	locs, err := eng.References(context.Background(), art, ports.Position{Line: 1, Col: 5})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "main.py", locs[0].File)
}

func TestEngine_HoverClass(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	hover, err := eng.Hover(art, ports.Position{Line: 10, Col: 7})
	require.NoError(t, err)
	assert.Equal(t, "Greeter", hover.Name)
	assert.Equal(t, "class", hover.Type)
	assert.Equal(t, "class Greeter", hover.Signature)
	assert.Equal(t, "Greets people.", hover.Docstring)
}

func TestEngine_HoverFunctionSignatureAndDocstring(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	hover, err := eng.Hover(art, ports.Position{Line: 5, Col: 5})
	require.NoError(t, err)
	assert.Equal(t, "greet", hover.Name)
	assert.Equal(t, "function", hover.Type)
	assert.Equal(t, "def greet(name)", hover.Signature)
	assert.Equal(t, "Say hello.", hover.Docstring)
}

func TestEngine_HoverMethod(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"main.py": mainSource})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "main.py")

	hover, err := eng.Hover(art, ports.Position{Line: 13, Col: 9})
	require.NoError(t, err)
	assert.Equal(t, "greet_all", hover.Name)
	assert.Equal(t, "method", hover.Type)
	assert.Equal(t, "def greet_all(self, names)", hover.Signature)
}

func TestEngine_HoverUndefinedName(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"lone.py": "x = mystery()\n"})
	eng := engine.New(root)
	art := buildArtifact(t, eng, root, "lone.py")

	hover, err := eng.Hover(art, ports.Position{Line: 1, Col: 5})
	require.NoError(t, err)
	assert.Equal(t, "mystery", hover.Name)
	assert.Empty(t, hover.Type)
	assert.Empty(t, hover.Signature)
}
