package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

// Definitions resolves the defining occurrences of the symbol at pos. Defs
// in the same file win; imports of the name come last so a local shadow is
// preferred.
func (e *Engine) Definitions(art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	id, err := a.identifierAt(pos)
	if err != nil {
		return nil, err
	}

	rel := e.relPath(a.absPath)
	var locs []ports.Location
	var imports []ports.Location
	for _, i := range a.byName[id.name] {
		def := a.defs[i]
		loc := ports.Location{File: rel, Line: def.line, Column: def.col}
		if def.kind == kindImport {
			imports = append(imports, loc)
			continue
		}
		locs = append(locs, loc)
	}
	locs = append(locs, imports...)

	if len(locs) == 0 {
		// Not defined here: chase the name through the rest of the workspace.
		found, err := e.scanDefinitions(context.Background(), a.absPath, id.name)
		if err != nil {
			return nil, err
		}
		locs = found
	}
	if len(locs) == 0 {
		return nil, errors.Join(domain.ErrNoSymbolAtPosition, zerr.New(fmt.Sprintf("no definition of %q", id.name)))
	}
	return locs, nil
}

// References finds workspace-wide occurrences of the symbol at pos,
// including its definitions.
func (e *Engine) References(ctx context.Context, art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	id, err := a.identifierAt(pos)
	if err != nil {
		return nil, err
	}

	files, err := e.workspaceFiles(ctx)
	if err != nil {
		return nil, err
	}

	var locs []ports.Location
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		other := a
		if path != a.absPath {
			other, err = e.scanFile(ctx, path)
			if err != nil {
				continue // unparseable neighbors don't fail the query
			}
		}
		rel := e.relPath(path)
		for _, occ := range other.idents {
			if occ.name == id.name {
				locs = append(locs, ports.Location{File: rel, Line: occ.line, Column: occ.col})
			}
		}
		if other != a {
			other.Close()
		}
	}
	return locs, nil
}

// Occurrences finds same-file occurrences of the symbol at pos.
func (e *Engine) Occurrences(art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	id, err := a.identifierAt(pos)
	if err != nil {
		return nil, err
	}

	rel := e.relPath(a.absPath)
	var locs []ports.Location
	for _, occ := range a.idents {
		if occ.name == id.name {
			locs = append(locs, ports.Location{File: rel, Line: occ.line, Column: occ.col})
		}
	}
	return locs, nil
}

// Hover describes the symbol at pos using its nearest definition.
func (e *Engine) Hover(art ports.Artifact, pos ports.Position) (*ports.Hover, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	id, err := a.identifierAt(pos)
	if err != nil {
		return nil, err
	}

	indexes := a.byName[id.name]
	if len(indexes) == 0 {
		return &ports.Hover{Name: id.name}, nil
	}

	// Prefer a definition that is not a bare import.
	best := a.defs[indexes[0]]
	for _, i := range indexes {
		if a.defs[i].kind != kindImport {
			best = a.defs[i]
			break
		}
	}
	return &ports.Hover{
		Name:      best.name,
		Type:      string(best.kind),
		Signature: best.signature,
		Docstring: best.docstring,
	}, nil
}

// scanDefinitions looks for definitions of name in every workspace file
// except skip.
func (e *Engine) scanDefinitions(ctx context.Context, skip, name string) ([]ports.Location, error) {
	files, err := e.workspaceFiles(ctx)
	if err != nil {
		return nil, err
	}

	var locs []ports.Location
	for _, path := range files {
		if path == skip {
			continue
		}
		other, err := e.scanFile(ctx, path)
		if err != nil {
			continue
		}
		rel := e.relPath(path)
		for _, i := range other.byName[name] {
			def := other.defs[i]
			if def.kind == kindImport {
				continue
			}
			locs = append(locs, ports.Location{File: rel, Line: def.line, Column: def.col})
		}
		other.Close()
	}
	return locs, nil
}

// scanFile builds a short-lived artifact outside the cache. Callers own the
// returned artifact and must Close it.
func (e *Engine) scanFile(ctx context.Context, path string) (*artifact, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}
	return e.build(ctx, path, src)
}
