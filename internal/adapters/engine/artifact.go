package engine

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

// symbolKind classifies a definition site.
type symbolKind string

const (
	kindFunction  symbolKind = "function"
	kindClass     symbolKind = "class"
	kindMethod    symbolKind = "method"
	kindParameter symbolKind = "parameter"
	kindVariable  symbolKind = "variable"
	kindImport    symbolKind = "import"
)

// definition is one defining occurrence inside a file.
type definition struct {
	name      string
	kind      symbolKind
	line      int // 1-based
	col       int // 1-based
	endLine   int
	signature string
	docstring string
}

// identifier is one occurrence of a name, defining or not.
type identifier struct {
	name      string
	line      int // 1-based
	col       int // 1-based
	startByte uint32
	endByte   uint32
}

// artifact is the parsed view of a single file. The syntax tree owns cgo
// memory, so Close must run exactly once before the artifact is dropped.
type artifact struct {
	absPath string
	src     []byte
	tree    *sitter.Tree

	defs   []definition
	idents []identifier
	byName map[string][]int // name -> indexes into defs
}

func (a *artifact) Close() {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
}

// identifierAt returns the identifier covering the given position.
func (a *artifact) identifierAt(pos ports.Position) (identifier, error) {
	for _, id := range a.idents {
		if id.line != pos.Line {
			continue
		}
		if pos.Col >= id.col && pos.Col < id.col+len(id.name) {
			return id, nil
		}
		// A position on the closing boundary still selects the name.
		if pos.Col == id.col+len(id.name) {
			return id, nil
		}
	}
	return identifier{}, errors.Join(domain.ErrNoSymbolAtPosition,
		zerr.New(fmt.Sprintf("no identifier at %d:%d", pos.Line, pos.Col)))
}

func asArtifact(art ports.Artifact) (*artifact, error) {
	a, ok := art.(*artifact)
	if !ok || a == nil {
		return nil, zerr.Wrap(domain.ErrAnalysisFailed, "unexpected artifact type")
	}
	return a, nil
}
