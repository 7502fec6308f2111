package ports

import "context"

//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

// Position is a 1-based line/column pair, matching what editors send.
type Position struct {
	Line int
	Col  int
}

// Location is one resolved code position.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Hover is the descriptive metadata for a symbol.
type Hover struct {
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	Signature string `json:"signature,omitempty"`
	Docstring string `json:"docstring,omitempty"`
}

// Symbol is one top-level function or class definition.
type Symbol struct {
	File string `json:"file"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Line int    `json:"line"`
}

// PatchFormat selects how refactoring results are rendered.
type PatchFormat string

const (
	// PatchFormatDiff renders patches as unified diffs.
	PatchFormatDiff PatchFormat = "diff"
	// PatchFormatFull renders patches as complete new file contents.
	PatchFormatFull PatchFormat = "full"
)

// PatchSet maps workspace-relative file paths to proposed contents. Patches
// are never applied to disk by the server; disk mutation is the caller's
// responsibility.
type PatchSet struct {
	Patches map[string]string `json:"patches"`
	Format  PatchFormat       `json:"format"`
}

// Artifact is an opaque analysis result with a single owner (the cache).
// Close releases engine-side resources and must be called exactly once,
// on eviction or shutdown.
type Artifact interface {
	Close()
}

// Engine is the semantic-analysis capability. Build is the only expensive
// call; query methods operate on a previously built artifact. Implementations
// must be safe for concurrent use across distinct artifacts.
type Engine interface {
	// Build parses the file at absPath and returns its analysis artifact.
	Build(ctx context.Context, absPath string) (Artifact, error)

	// Definitions resolves the defining occurrence of the symbol at pos.
	Definitions(art Artifact, pos Position) ([]Location, error)

	// References finds workspace-wide references to the symbol at pos.
	References(ctx context.Context, art Artifact, pos Position) ([]Location, error)

	// Occurrences finds same-file occurrences of the symbol at pos.
	Occurrences(art Artifact, pos Position) ([]Location, error)

	// Hover describes the symbol at pos.
	Hover(art Artifact, pos Position) (*Hover, error)

	// Rename produces patches renaming the symbol at pos across the workspace.
	Rename(ctx context.Context, art Artifact, pos Position, newName string, format PatchFormat) (*PatchSet, error)

	// ExtractMethod lifts lines [startLine, endLine] into a new function.
	ExtractMethod(art Artifact, startLine, endLine int, name string, format PatchFormat) (*PatchSet, error)

	// ExtractVariable binds the selected expression to a new variable.
	ExtractVariable(art Artifact, sel Selection, name string, format PatchFormat) (*PatchSet, error)

	// OrganizeImports normalizes the import block of the file.
	OrganizeImports(art Artifact, format PatchFormat) (*PatchSet, error)

	// Move relocates the top-level definition at pos into destFile.
	Move(art Artifact, pos Position, destFile string, format PatchFormat) (*PatchSet, error)

	// Symbols lists the top-level functions and classes of the file.
	Symbols(art Artifact) ([]Symbol, error)

	// SymbolsInDir lists top-level functions and classes across every
	// analyzable file under absDir, honoring the workspace ignore rules.
	SymbolsInDir(ctx context.Context, absDir string) ([]Symbol, error)
}

// Selection is a possibly column-bounded line range. Zero columns mean
// whole-line selection; a zero EndLine means StartLine.
type Selection struct {
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}
