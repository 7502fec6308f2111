package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	sitter "github.com/smacker/go-tree-sitter"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

// Rename produces patches renaming the symbol at pos across the workspace.
// Only whole-identifier occurrences are touched; strings and comments are
// left alone because the index never records them.
func (e *Engine) Rename(ctx context.Context, art ports.Artifact, pos ports.Position, newName string, format ports.PatchFormat) (*ports.PatchSet, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	if !isValidIdentifier(newName) {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New(fmt.Sprintf("invalid new name %q", newName)))
	}
	id, err := a.identifierAt(pos)
	if err != nil {
		return nil, err
	}

	files, err := e.workspaceFiles(ctx)
	if err != nil {
		return nil, err
	}

	set := &ports.PatchSet{Patches: make(map[string]string), Format: format}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		other := a
		if path != a.absPath {
			other, err = e.scanFile(ctx, path)
			if err != nil {
				continue
			}
		}
		renamed, changed := renameInSource(other, id.name, newName)
		if changed {
			rel := e.relPath(path)
			set.Patches[rel] = renderPatch(rel, string(other.src), renamed, format)
		}
		if other != a {
			other.Close()
		}
	}
	return set, nil
}

// renameInSource splices newName over every occurrence of name, back to
// front so earlier byte offsets stay valid.
func renameInSource(a *artifact, name, newName string) (string, bool) {
	var spans []identifier
	for _, id := range a.idents {
		if id.name == name {
			spans = append(spans, id)
		}
	}
	if len(spans) == 0 {
		return "", false
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].startByte > spans[j].startByte })

	out := append([]byte(nil), a.src...)
	for _, s := range spans {
		out = append(out[:s.startByte], append([]byte(newName), out[s.endByte:]...)...)
	}
	return string(out), true
}

// ExtractMethod lifts lines [startLine, endLine] into a new module-level
// function and replaces them with a call. The extracted body keeps its
// relative indentation.
func (e *Engine) ExtractMethod(art ports.Artifact, startLine, endLine int, name string, format ports.PatchFormat) (*ports.PatchSet, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	if !isValidIdentifier(name) {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New(fmt.Sprintf("invalid method name %q", name)))
	}

	lines := splitLines(string(a.src))
	if startLine < 1 || endLine < startLine || endLine > len(lines) {
		return nil, errors.Join(domain.ErrInvalidPosition,
			zerr.New(fmt.Sprintf("line range %d-%d out of bounds", startLine, endLine)))
	}

	selected := lines[startLine-1 : endLine]
	indent := commonIndent(selected)

	var body []string
	for _, l := range selected {
		if strings.TrimSpace(l) == "" {
			body = append(body, "")
			continue
		}
		body = append(body, "    "+strings.TrimPrefix(l, indent))
	}

	var out []string
	out = append(out, lines[:startLine-1]...)
	out = append(out, indent+name+"()")
	out = append(out, lines[endLine:]...)

	// The new function goes after the top-level statement that held the
	// selection, or at the end of the file for module-level code.
	insertAt := len(out)
	if after := e.topLevelEnd(a, endLine); after > 0 {
		removed := endLine - startLine + 1
		insertAt = after - removed + 1
		if insertAt > len(out) {
			insertAt = len(out)
		}
	}

	var fn []string
	fn = append(fn, "", "", "def "+name+"():")
	fn = append(fn, body...)

	result := make([]string, 0, len(out)+len(fn))
	result = append(result, out[:insertAt]...)
	result = append(result, fn...)
	result = append(result, out[insertAt:]...)

	rel := e.relPath(a.absPath)
	newSrc := strings.Join(result, "\n")
	return &ports.PatchSet{
		Patches: map[string]string{rel: renderPatch(rel, string(a.src), newSrc, format)},
		Format:  format,
	}, nil
}

// ExtractVariable binds the selected expression to a new variable introduced
// on the line above it.
func (e *Engine) ExtractVariable(art ports.Artifact, sel ports.Selection, name string, format ports.PatchFormat) (*ports.PatchSet, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}
	if !isValidIdentifier(name) {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New(fmt.Sprintf("invalid variable name %q", name)))
	}

	lines := splitLines(string(a.src))
	if sel.StartLine < 1 || sel.StartLine > len(lines) {
		return nil, errors.Join(domain.ErrInvalidPosition, zerr.New(fmt.Sprintf("line %d out of bounds", sel.StartLine)))
	}
	line := lines[sel.StartLine-1]

	var expr string
	switch {
	case sel.StartCol > 0 && sel.EndCol > sel.StartCol:
		if sel.EndCol-1 > len(line) {
			return nil, errors.Join(domain.ErrInvalidPosition, zerr.New(fmt.Sprintf("column %d out of bounds", sel.EndCol)))
		}
		expr = line[sel.StartCol-1 : sel.EndCol-1]
	default:
		expr = strings.TrimSpace(line)
	}
	if strings.TrimSpace(expr) == "" {
		return nil, errors.Join(domain.ErrInvalidPosition, zerr.New("empty selection"))
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	binding := indent + name + " = " + expr
	replaced := strings.Replace(line, expr, name, 1)

	var out []string
	out = append(out, lines[:sel.StartLine-1]...)
	out = append(out, binding, replaced)
	out = append(out, lines[sel.StartLine:]...)

	rel := e.relPath(a.absPath)
	newSrc := strings.Join(out, "\n")
	return &ports.PatchSet{
		Patches: map[string]string{rel: renderPatch(rel, string(a.src), newSrc, format)},
		Format:  format,
	}, nil
}

// OrganizeImports deduplicates and sorts the file's top-level imports,
// plain imports before from-imports.
func (e *Engine) OrganizeImports(art ports.Artifact, format ports.PatchFormat) (*ports.PatchSet, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(a.src))
	root := a.tree.RootNode()

	type span struct{ start, end int } // 1-based inclusive line range
	var spans []span
	var stmts []string
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Type() {
		case "import_statement", "import_from_statement":
			spans = append(spans, span{
				start: int(child.StartPoint().Row + 1),
				end:   int(child.EndPoint().Row + 1),
			})
			stmts = append(stmts, strings.TrimSpace(text(child, a.src)))
		}
	}

	rel := e.relPath(a.absPath)
	if len(spans) == 0 {
		return &ports.PatchSet{
			Patches: map[string]string{rel: renderPatch(rel, string(a.src), string(a.src), format)},
			Format:  format,
		}, nil
	}

	var plain, from []string
	seen := make(map[string]bool)
	for _, s := range stmts {
		if seen[s] {
			continue
		}
		seen[s] = true
		if strings.HasPrefix(s, "from ") {
			from = append(from, s)
		} else {
			plain = append(plain, s)
		}
	}
	sort.Strings(plain)
	sort.Strings(from)

	block := append(append([]string{}, plain...), from...)

	drop := make(map[int]bool)
	for _, sp := range spans {
		for l := sp.start; l <= sp.end; l++ {
			drop[l] = true
		}
	}

	insertLine := spans[0].start
	var out []string
	for i, l := range lines {
		lineNo := i + 1
		if lineNo == insertLine {
			out = append(out, block...)
		}
		if drop[lineNo] {
			continue
		}
		out = append(out, l)
	}

	newSrc := strings.Join(out, "\n")
	return &ports.PatchSet{
		Patches: map[string]string{rel: renderPatch(rel, string(a.src), newSrc, format)},
		Format:  format,
	}, nil
}

// Move relocates the top-level definition at pos into destFile, which is
// workspace-relative and may not exist yet.
func (e *Engine) Move(art ports.Artifact, pos ports.Position, destFile string, format ports.PatchFormat) (*ports.PatchSet, error) {
	a, err := asArtifact(art)
	if err != nil {
		return nil, err
	}

	root := a.tree.RootNode()
	defNode := findTopLevelDefinition(root, pos.Line)
	if defNode == nil {
		return nil, errors.Join(domain.ErrNoSymbolAtPosition, zerr.New(fmt.Sprintf("no top-level definition at line %d", pos.Line)))
	}

	start := int(defNode.StartPoint().Row + 1)
	end := int(defNode.EndPoint().Row + 1)
	lines := splitLines(string(a.src))
	moved := strings.Join(lines[start-1:end], "\n")

	var rest []string
	rest = append(rest, lines[:start-1]...)
	rest = append(rest, lines[end:]...)
	rest = trimTrailingBlank(rest)

	destAbs := filepath.Join(e.root, filepath.FromSlash(destFile))
	destOld := ""
	if b, readErr := os.ReadFile(destAbs); readErr == nil {
		destOld = string(b)
	}
	destNew := destOld
	if strings.TrimSpace(destNew) != "" {
		destNew = strings.TrimRight(destNew, "\n") + "\n\n\n"
	}
	destNew += moved + "\n"

	srcRel := e.relPath(a.absPath)
	destRel := filepath.ToSlash(destFile)
	return &ports.PatchSet{
		Patches: map[string]string{
			srcRel:  renderPatch(srcRel, string(a.src), strings.Join(rest, "\n"), format),
			destRel: renderPatch(destRel, destOld, destNew, format),
		},
		Format: format,
	}, nil
}

// topLevelEnd returns the last line of the top-level statement containing
// line, or 0 when line sits directly at module level.
func (e *Engine) topLevelEnd(a *artifact, line int) int {
	root := a.tree.RootNode()
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		start := int(child.StartPoint().Row + 1)
		end := int(child.EndPoint().Row + 1)
		if line >= start && line <= end {
			switch child.Type() {
			case "function_definition", "class_definition", "decorated_definition":
				return end
			}
			return 0
		}
	}
	return 0
}

// findTopLevelDefinition returns the module-level def or class whose span
// covers line.
func findTopLevelDefinition(root *sitter.Node, line int) *sitter.Node {
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		start := int(child.StartPoint().Row + 1)
		end := int(child.EndPoint().Row + 1)
		if line < start || line > end {
			continue
		}
		switch child.Type() {
		case "function_definition", "class_definition", "decorated_definition":
			return child
		}
		return nil
	}
	return nil
}

// renderPatch renders a proposed file change either as the full new content
// or as a unified diff against the old one.
func renderPatch(rel, oldSrc, newSrc string, format ports.PatchFormat) string {
	if format != ports.PatchFormatDiff {
		return newSrc
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldSrc),
		B:        difflib.SplitLines(newSrc),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  3,
	})
	if err != nil {
		return newSrc
	}
	return diff
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// commonIndent returns the leading whitespace shared by the non-blank lines.
func commonIndent(lines []string) string {
	indent := ""
	first := true
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lead := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			indent = lead
			first = false
			continue
		}
		for !strings.HasPrefix(lead, indent) {
			indent = indent[:len(indent)-1]
		}
	}
	return indent
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" &&
		strings.TrimSpace(lines[len(lines)-2]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
