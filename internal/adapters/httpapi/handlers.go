package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports"
	"go.trai.ch/zerr"
)

// errorResponse is the JSON error shape all endpoints share.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, ports.HealthInfo{
		Status:             "ok",
		Workspace:          s.root,
		Uptime:             s.lifecycle.Uptime().Seconds(),
		Requests:           s.requests.Load(),
		CacheSize:          s.cache.Len(),
		CacheInvalidations: s.cache.Invalidations(),
	})
}

func (s *Server) handleShutdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "shutting down"})
	s.lifecycle.Shutdown("shutdown requested")
}

func (s *Server) handleDefinitions(c *gin.Context) {
	s.locationQuery(c, "defs", func(_ context.Context, art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
		return s.engine.Definitions(art, pos)
	})
}

func (s *Server) handleReferences(c *gin.Context) {
	s.locationQuery(c, "refs", func(ctx context.Context, art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
		return s.engine.References(ctx, art, pos)
	})
}

func (s *Server) handleOccurrences(c *gin.Context) {
	s.locationQuery(c, "occurrences", func(_ context.Context, art ports.Artifact, pos ports.Position) ([]ports.Location, error) {
		return s.engine.Occurrences(art, pos)
	})
}

func (s *Server) locationQuery(
	c *gin.Context,
	spanName string,
	query func(context.Context, ports.Artifact, ports.Position) ([]ports.Location, error),
) {
	var req ports.QueryRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), spanName)
	defer span.End()
	span.SetAttr("file", req.File)

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		locs, err := query(ctx, art, ports.Position{Line: req.Line, Col: req.Col})
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if locs == nil {
			locs = []ports.Location{}
		}
		return ports.LocationsResult{Locations: locs}, nil
	})
}

func (s *Server) handleHover(c *gin.Context) {
	var req ports.QueryRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "hover")
	defer span.End()
	span.SetAttr("file", req.File)

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		hover, err := s.engine.Hover(art, ports.Position{Line: req.Line, Col: req.Col})
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return hover, nil
	})
}

func (s *Server) handleRename(c *gin.Context) {
	var req ports.RenameRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "rename")
	defer span.End()
	span.SetAttr("file", req.File)

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		set, err := s.engine.Rename(ctx, art,
			ports.Position{Line: req.Line, Col: req.Col},
			req.NewName, normalizeFormat(req.OutputFormat))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return set, nil
	})
}

func (s *Server) handleExtractMethod(c *gin.Context) {
	var req ports.ExtractMethodRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "extract-method")
	defer span.End()

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		set, err := s.engine.ExtractMethod(art, req.StartLine, req.EndLine,
			req.MethodName, normalizeFormat(req.OutputFormat))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return set, nil
	})
}

func (s *Server) handleExtractVariable(c *gin.Context) {
	var req ports.ExtractVarRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "extract-var")
	defer span.End()

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		sel := ports.Selection{
			StartLine: req.StartLine,
			EndLine:   req.EndLine,
			StartCol:  req.StartCol,
			EndCol:    req.EndCol,
		}
		set, err := s.engine.ExtractVariable(art, sel, req.VarName, normalizeFormat(req.OutputFormat))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return set, nil
	})
}

func (s *Server) handleOrganizeImports(c *gin.Context) {
	var req ports.OrganizeImportsRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "organize-imports")
	defer span.End()

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		set, err := s.engine.OrganizeImports(art, normalizeFormat(req.OutputFormat))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return set, nil
	})
}

func (s *Server) handleMove(c *gin.Context) {
	var req ports.MoveRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "move")
	defer span.End()

	s.withArtifact(c, ctx, req.File, func(art ports.Artifact) (any, error) {
		set, err := s.engine.Move(art,
			ports.Position{Line: req.Line, Col: req.Col},
			req.DestFile, normalizeFormat(req.OutputFormat))
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return set, nil
	})
}

// handleList reports top-level symbols for a file or, recursively, for a
// directory. Directory scans bypass the artifact cache; their artifacts are
// short-lived by construction.
func (s *Server) handleList(c *gin.Context) {
	var req ports.ListRequest
	if !s.bind(c, &req) {
		return
	}
	ctx, span := s.tracer.Start(c.Request.Context(), "list")
	defer span.End()
	span.SetAttr("path", req.Path)

	abs, err := s.resolveFile(req.Path)
	if err != nil {
		s.fail(c, err)
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		s.fail(c, errors.Join(domain.ErrWorkspaceNotFound, zerr.New(fmt.Sprintf("%s does not exist", req.Path))))
		return
	}

	if info.IsDir() {
		symbols, listErr := s.engine.SymbolsInDir(ctx, abs)
		if listErr != nil {
			span.RecordError(listErr)
			s.fail(c, listErr)
			return
		}
		if symbols == nil {
			symbols = []ports.Symbol{}
		}
		c.JSON(http.StatusOK, ports.SymbolsResult{Symbols: symbols})
		return
	}

	s.withArtifact(c, ctx, req.Path, func(art ports.Artifact) (any, error) {
		symbols, listErr := s.engine.Symbols(art)
		if listErr != nil {
			span.RecordError(listErr)
			return nil, listErr
		}
		if symbols == nil {
			symbols = []ports.Symbol{}
		}
		return ports.SymbolsResult{Symbols: symbols}, nil
	})
}

func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// withArtifact resolves the request file inside the workspace, leases its
// artifact from the cache and runs fn over it. The lease pins the artifact
// against eviction for the duration of the query.
func (s *Server) withArtifact(
	c *gin.Context,
	ctx context.Context,
	file string,
	fn func(ports.Artifact) (any, error),
) {
	abs, err := s.resolveFile(file)
	if err != nil {
		s.fail(c, err)
		return
	}

	lease, err := s.cache.Acquire(ctx, abs)
	if err != nil {
		s.fail(c, err)
		return
	}
	defer lease.Release()

	result, err := fn(lease.Artifact())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error(err)
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

// normalizeFormat defaults an absent output format to unified diffs.
func normalizeFormat(f ports.PatchFormat) ports.PatchFormat {
	if f == ports.PatchFormatFull {
		return ports.PatchFormatFull
	}
	return ports.PatchFormatDiff
}

// resolveFile maps a request path onto the workspace, rejecting anything
// that escapes the root.
func (s *Server) resolveFile(file string) (string, error) {
	if file == "" {
		return "", domain.ErrInvalidPosition
	}
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.root, filepath.FromSlash(file))
	}
	abs = filepath.Clean(abs)
	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.ErrWorkspaceNotFound
	}
	return abs, nil
}

// statusFor maps analysis errors onto HTTP statuses. Anything unmapped is a
// server fault and feeds the failure streak.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoSymbolAtPosition):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidPosition):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrWorkspaceNotFound), errors.Is(err, domain.ErrWorkspaceNotDir):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCacheClosed), errors.Is(err, domain.ErrShuttingDown):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
