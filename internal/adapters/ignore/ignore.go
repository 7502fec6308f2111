// Package ignore compiles hardcoded artifact patterns and the workspace's
// version-control ignore file into a fast path-membership test.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// hardcodedIgnoreDirs are directory names whose subtrees are never watched
// or scanned: build caches, virtual environments, version-control internals.
var hardcodedIgnoreDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".jj":           true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	"env":           true,
	"node_modules":  true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	".ropeproject":  true,
	".sema":         true,
	"build":         true,
	"dist":          true,
}

// hardcodedIgnoreSuffixes are file suffixes that are never analyzed.
var hardcodedIgnoreSuffixes = []string{
	".pyc", ".pyo", ".pyd", ".swp", ".tmp",
}

// Ruleset is the compiled path-membership test: hardcoded artifact patterns
// unioned with the workspace's .gitignore, when one exists.
type Ruleset struct {
	root      string
	gitignore *gitignore.GitIgnore
}

// NewRuleset compiles the ignore rules for a workspace root. A missing or
// unreadable .gitignore simply leaves the hardcoded rules in effect.
func NewRuleset(root string) *Ruleset {
	rs := &Ruleset{root: root}

	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		if compiled, err := gitignore.CompileIgnoreFile(gitignorePath); err == nil {
			rs.gitignore = compiled
		}
	}
	return rs
}

// IgnoreDir reports whether a directory with the given base name should be
// skipped entirely.
func (rs *Ruleset) IgnoreDir(name string) bool {
	if hardcodedIgnoreDirs[name] {
		return true
	}
	return strings.HasSuffix(name, ".egg-info")
}

// Ignore reports whether the absolute path should be excluded from watching
// and analysis.
func (rs *Ruleset) Ignore(absPath string) bool {
	rel, err := filepath.Rel(rs.root, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return true
	}

	for part := range strings.SplitSeq(filepath.ToSlash(rel), "/") {
		if rs.IgnoreDir(part) {
			return true
		}
	}

	for _, suffix := range hardcodedIgnoreSuffixes {
		if strings.HasSuffix(rel, suffix) {
			return true
		}
	}

	if rs.gitignore != nil && rs.gitignore.MatchesPath(rel) {
		return true
	}
	return false
}
