package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/adapters/ignore"
)

func TestRuleset_IgnoreDir(t *testing.T) {
	rs := ignore.NewRuleset(t.TempDir())

	for _, name := range []string{".git", "__pycache__", ".venv", "venv", "node_modules", ".mypy_cache", "sema.egg-info"} {
		assert.True(t, rs.IgnoreDir(name), name)
	}
	for _, name := range []string{"src", "tests", "mypackage"} {
		assert.False(t, rs.IgnoreDir(name), name)
	}
}

func TestRuleset_IgnoreHardcodedPatterns(t *testing.T) {
	root := t.TempDir()
	rs := ignore.NewRuleset(root)

	assert.True(t, rs.Ignore(filepath.Join(root, "pkg", "__pycache__", "mod.py")))
	assert.True(t, rs.Ignore(filepath.Join(root, ".venv", "lib", "site.py")))
	assert.True(t, rs.Ignore(filepath.Join(root, "pkg", "mod.pyc")))
	assert.True(t, rs.Ignore(filepath.Join(root, "pkg", ".mod.py.swp")))

	assert.False(t, rs.Ignore(filepath.Join(root, "pkg", "mod.py")))
	assert.False(t, rs.Ignore(filepath.Join(root, "main.py")))
}

func TestRuleset_IgnoreOutsideRoot(t *testing.T) {
	rs := ignore.NewRuleset(filepath.Join(t.TempDir(), "ws"))

	assert.True(t, rs.Ignore("/elsewhere/mod.py"))
}

func TestRuleset_GitignorePatterns(t *testing.T) {
	root := t.TempDir()
	gitignore := "generated/\n*.gen.py\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte(gitignore), 0o644))

	rs := ignore.NewRuleset(root)

	assert.True(t, rs.Ignore(filepath.Join(root, "generated", "api.py")))
	assert.True(t, rs.Ignore(filepath.Join(root, "pkg", "schema.gen.py")))
	assert.False(t, rs.Ignore(filepath.Join(root, "pkg", "schema.py")))
}

func TestRuleset_MissingGitignoreKeepsHardcodedRules(t *testing.T) {
	root := t.TempDir()
	rs := ignore.NewRuleset(root)

	assert.True(t, rs.Ignore(filepath.Join(root, "__pycache__", "mod.py")))
	assert.False(t, rs.Ignore(filepath.Join(root, "mod.py")))
}
