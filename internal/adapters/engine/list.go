package engine

import (
	"context"
	"sort"

	"go.trai.ch/sema/internal/core/ports"
)

// Symbols lists the file's top-level functions and classes in source order.
func (e *Engine) Symbols(art ports.Artifact) ([]ports.Symbol, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	return topLevelSymbols(a, e.relPath(a.absPath)), nil
}

// SymbolsInDir lists top-level functions and classes across every analyzable
// file under absDir. Unparseable files are skipped, matching the tolerance of
// workspace-wide queries.
func (e *Engine) SymbolsInDir(ctx context.Context, absDir string) ([]ports.Symbol, error) {
	files, err := e.filesUnder(ctx, absDir)
	if err != nil {
		return nil, err
	}

	var out []ports.Symbol
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, scanErr := e.scanFile(ctx, path)
		if scanErr != nil {
			continue
		}
		out = append(out, topLevelSymbols(a, e.relPath(path))...)
		a.Close()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out, nil
}

// topLevelSymbols filters the definition index down to module-level functions
// and classes. Column 1 is what separates them from methods and nested defs.
func topLevelSymbols(a *artifact, rel string) []ports.Symbol {
	var out []ports.Symbol
	for _, def := range a.defs {
		if def.col != 1 {
			continue
		}
		switch def.kind {
		case kindFunction, kindClass:
			out = append(out, ports.Symbol{
				File: rel,
				Kind: string(def.kind),
				Name: def.name,
				Line: def.line,
			})
		}
	}
	return out
}
