// Package engine implements semantic analysis for Python sources on top of
// tree-sitter. Artifacts carry the parsed tree plus a flat symbol index;
// workspace-wide operations rescan sibling files on demand.
package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"go.trai.ch/sema/internal/adapters/ignore"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Engine = (*Engine)(nil)

const maxFileSize = 10 << 20

// Engine analyzes files under a single workspace root. It is stateless
// between calls and safe for concurrent use; each Build creates its own
// tree-sitter parser.
type Engine struct {
	root  string
	rules *ignore.Ruleset
}

// New creates an engine for the workspace rooted at root.
func New(root string) *Engine {
	return &Engine{
		root:  root,
		rules: ignore.NewRuleset(root),
	}
}

// Build parses the file at absPath and indexes its symbols.
func (e *Engine) Build(ctx context.Context, absPath string) (ports.Artifact, error) {
	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}
	return e.build(ctx, absPath, src)
}

func (e *Engine) build(ctx context.Context, absPath string, src []byte) (*artifact, error) {
	if int64(len(src)) > maxFileSize {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New("file too large"))
	}
	if !utf8.Valid(src) {
		return nil, errors.Join(domain.ErrAnalysisFailed, zerr.New("not valid UTF-8"))
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}

	art := &artifact{
		absPath: absPath,
		src:     src,
		tree:    tree,
		byName:  make(map[string][]int),
	}
	indexNode(tree.RootNode(), src, art, "")

	for i, def := range art.defs {
		art.byName[def.name] = append(art.byName[def.name], i)
	}
	return art, nil
}

// relPath maps an absolute path inside the workspace to a root-relative one.
// Paths outside the root come back unchanged.
func (e *Engine) relPath(absPath string) string {
	rel, err := filepath.Rel(e.root, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return filepath.ToSlash(rel)
}

// workspaceFiles yields every analyzable file under the root, honoring the
// ignore rules.
func (e *Engine) workspaceFiles(ctx context.Context) ([]string, error) {
	return e.filesUnder(ctx, e.root)
}

// filesUnder yields every analyzable file under dir, honoring the ignore
// rules. The walk tolerates unreadable directories.
func (e *Engine) filesUnder(ctx context.Context, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil //nolint:nilerr // skip unreadable entries
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && e.rules.IgnoreDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".py" || e.rules.Ignore(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalysisFailed.Error())
	}
	return files, nil
}

// indexNode walks the syntax tree collecting definitions and identifier
// occurrences. enclosing carries the name of the surrounding class, which
// turns function definitions into methods.
func indexNode(node *sitter.Node, src []byte, art *artifact, enclosing string) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "function_definition":
		indexFunction(node, src, art, enclosing)
		return
	case "class_definition":
		indexClass(node, src, art)
		return
	case "import_statement", "import_from_statement":
		indexImport(node, src, art)
		return
	case "assignment":
		indexAssignment(node, src, art)
		return
	case "identifier":
		recordIdentifier(node, src, art)
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		indexNode(node.Child(i), src, art, enclosing)
	}
}

func indexFunction(node *sitter.Node, src []byte, art *artifact, enclosing string) {
	var name string
	var params *sitter.Node
	var returnType string
	var body *sitter.Node
	isAsync := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "async":
			isAsync = true
		case "identifier":
			if name == "" {
				name = text(child, src)
				recordIdentifier(child, src, art)
			}
		case "parameters":
			params = child
		case "type":
			returnType = text(child, src)
		case "block":
			body = child
		}
	}
	if name == "" {
		return
	}

	kind := kindFunction
	if enclosing != "" {
		kind = kindMethod
	}
	sig := "def " + name + text(params, src)
	if isAsync {
		sig = "async " + sig
	}
	if returnType != "" {
		sig += " -> " + returnType
	}

	art.defs = append(art.defs, definition{
		name:      name,
		kind:      kind,
		line:      int(node.StartPoint().Row + 1),
		col:       int(node.StartPoint().Column + 1),
		endLine:   int(node.EndPoint().Row + 1),
		signature: sig,
		docstring: docstring(body, src),
	})

	if params != nil {
		indexParameters(params, src, art)
	}
	if body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			indexNode(body.Child(i), src, art, "")
		}
	}
}

func indexParameters(params *sitter.Node, src []byte, art *artifact) {
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "identifier" {
			name := text(n, src)
			recordIdentifier(n, src, art)
			if name != "self" && name != "cls" {
				art.defs = append(art.defs, definition{
					name:    name,
					kind:    kindParameter,
					line:    int(n.StartPoint().Row + 1),
					col:     int(n.StartPoint().Column + 1),
					endLine: int(n.EndPoint().Row + 1),
				})
			}
			return
		}
		// Default values and annotations contain references, not parameters.
		switch n.Type() {
		case "default_parameter", "typed_default_parameter":
			if nameNode := n.Child(0); nameNode != nil && nameNode.Type() == "identifier" {
				walk(nameNode)
			}
			for i := 1; i < int(n.ChildCount()); i++ {
				indexNode(n.Child(i), src, art, "")
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	for i := 0; i < int(params.ChildCount()); i++ {
		walk(params.Child(i))
	}
}

func indexClass(node *sitter.Node, src []byte, art *artifact) {
	var name string
	var body *sitter.Node
	var bases []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			if name == "" {
				name = text(child, src)
				recordIdentifier(child, src, art)
			}
		case "argument_list":
			for j := 0; j < int(child.ChildCount()); j++ {
				arg := child.Child(j)
				if arg.Type() == "identifier" || arg.Type() == "attribute" {
					bases = append(bases, text(arg, src))
				}
				indexNode(arg, src, art, "")
			}
		case "block":
			body = child
		}
	}
	if name == "" {
		return
	}

	sig := "class " + name
	if len(bases) > 0 {
		sig += "(" + strings.Join(bases, ", ") + ")"
	}
	art.defs = append(art.defs, definition{
		name:      name,
		kind:      kindClass,
		line:      int(node.StartPoint().Row + 1),
		col:       int(node.StartPoint().Column + 1),
		endLine:   int(node.EndPoint().Row + 1),
		signature: sig,
		docstring: docstring(body, src),
	})

	if body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			indexNode(body.Child(i), src, art, name)
		}
	}
}

func indexImport(node *sitter.Node, src []byte, art *artifact) {
	var record func(n *sitter.Node)
	record = func(n *sitter.Node) {
		switch n.Type() {
		case "dotted_name":
			// The last segment is the name bound in this module.
			last := n.Child(int(n.ChildCount()) - 1)
			for i := 0; i < int(n.ChildCount()); i++ {
				if c := n.Child(i); c.Type() == "identifier" {
					recordIdentifier(c, src, art)
				}
			}
			if last != nil && last.Type() == "identifier" {
				art.defs = append(art.defs, definition{
					name:      text(last, src),
					kind:      kindImport,
					line:      int(last.StartPoint().Row + 1),
					col:       int(last.StartPoint().Column + 1),
					endLine:   int(last.EndPoint().Row + 1),
					signature: strings.TrimSpace(text(node, src)),
				})
			}
		case "aliased_import":
			// Only the alias is bound; the path is a reference.
			if alias := n.ChildByFieldName("alias"); alias != nil {
				recordIdentifier(alias, src, art)
				art.defs = append(art.defs, definition{
					name:      text(alias, src),
					kind:      kindImport,
					line:      int(alias.StartPoint().Row + 1),
					col:       int(alias.StartPoint().Column + 1),
					endLine:   int(alias.EndPoint().Row + 1),
					signature: strings.TrimSpace(text(node, src)),
				})
			}
		case "identifier":
			recordIdentifier(n, src, art)
			art.defs = append(art.defs, definition{
				name:      text(n, src),
				kind:      kindImport,
				line:      int(n.StartPoint().Row + 1),
				col:       int(n.StartPoint().Column + 1),
				endLine:   int(n.EndPoint().Row + 1),
				signature: strings.TrimSpace(text(node, src)),
			})
		default:
			for i := 0; i < int(n.ChildCount()); i++ {
				record(n.Child(i))
			}
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "import", "from", ",":
		default:
			record(child)
		}
	}
}

func indexAssignment(node *sitter.Node, src []byte, art *artifact) {
	left := node.ChildByFieldName("left")
	if left != nil && left.Type() == "identifier" {
		recordIdentifier(left, src, art)
		art.defs = append(art.defs, definition{
			name:      text(left, src),
			kind:      kindVariable,
			line:      int(left.StartPoint().Row + 1),
			col:       int(left.StartPoint().Column + 1),
			endLine:   int(left.EndPoint().Row + 1),
			signature: strings.TrimSpace(firstLine(text(node, src))),
		})
	} else if left != nil {
		indexNode(left, src, art, "")
	}
	if right := node.ChildByFieldName("right"); right != nil {
		indexNode(right, src, art, "")
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		indexNode(typeNode, src, art, "")
	}
}

func recordIdentifier(node *sitter.Node, src []byte, art *artifact) {
	art.idents = append(art.idents, identifier{
		name:      text(node, src),
		line:      int(node.StartPoint().Row + 1),
		col:       int(node.StartPoint().Column + 1),
		startByte: node.StartByte(),
		endByte:   node.EndByte(),
	})
}

func text(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return string(src[node.StartByte():node.EndByte()])
}

// docstring returns the leading string literal of a block, unquoted.
func docstring(body *sitter.Node, src []byte) string {
	if body == nil || body.ChildCount() == 0 {
		return ""
	}
	first := body.Child(0)
	if first.Type() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	strNode := first.Child(0)
	if strNode.Type() != "string" {
		return ""
	}
	raw := text(strNode, src)
	return strings.TrimSpace(strings.Trim(raw, `"'`))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
