package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/generator"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
)

// Search modes
const (
	searchSubstring = "substring"
	searchExact     = "exact"
)

// searchHit is a search result with its rendered path
type searchHit struct {
	Entry       *types.Entry `json:"entry"`
	Path        []string     `json:"path"`
	DisplayPath string       `json:"display_path"`
}

// FileSystemHandler handles simulated file-system endpoints
type FileSystemHandler struct {
	BaseHandler
	desktop *sdk.Desktop
}

// NewFileSystemHandler creates a new file-system handler
func NewFileSystemHandler(desktop *sdk.Desktop) *FileSystemHandler {
	return &FileSystemHandler{
		desktop: desktop,
	}
}

// GetNavigation handles the navigation tree endpoint
func (h *FileSystemHandler) GetNavigation(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Navigation tree retrieved successfully", h.desktop.FileSystem().NavigationSnapshot())
}

// ToggleNavigation handles the expand/collapse endpoint
func (h *FileSystemHandler) ToggleNavigation(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	expanded, err := h.desktop.FileSystem().ToggleNavigation(id)
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Navigation link toggled", map[string]any{
		"id":          id,
		"is_expanded": expanded,
	})
}

// ListChildren handles the folder children endpoint.
// The optional "sort" query parameter is "name" or "type".
func (h *FileSystemHandler) ListChildren(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	sortKey, err := desktopfs.ParseSortKey(req.URL.Query().Get("sort"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	children := desktopfs.SortEntries(h.desktop.FileSystem().GetFolderChildren(id), sortKey)
	h.sendSuccess(w, "Children retrieved successfully", children)
}

// ListRecycleBin handles the recycle bin endpoint
func (h *FileSystemHandler) ListRecycleBin(w http.ResponseWriter, req *http.Request) {
	h.sendSuccess(w, "Recycle bin retrieved successfully", h.desktop.FileSystem().RecycleBin())
}

// GetEntry handles the get entry endpoint
func (h *FileSystemHandler) GetEntry(w http.ResponseWriter, req *http.Request) {
	entry, err := h.desktop.FileSystem().GetEntry(chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Entry retrieved successfully", entry)
}

// GetMetadata handles the metadata endpoint
func (h *FileSystemHandler) GetMetadata(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	metadata, ok := h.desktop.FileSystem().GetMetadata(id)
	if !ok {
		h.sendError(w, http.StatusNotFound, fmt.Sprintf("%v: %s", desktopfs.ErrNotFound, id))
		return
	}

	h.sendSuccess(w, "Metadata retrieved successfully", metadata)
}

// GetFileContent handles the file content endpoint
func (h *FileSystemHandler) GetFileContent(w http.ResponseWriter, req *http.Request) {
	content, err := h.desktop.FileSystem().GetFileContent(chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	response := map[string]any{
		"content":  content,
		"checksum": generator.ComputeChecksum([]byte(content)),
		"size":     len(content),
	}

	h.sendSuccess(w, "File content retrieved successfully", response)
}

// OpenEntry handles the endpoint that runs an entry's action
func (h *FileSystemHandler) OpenEntry(w http.ResponseWriter, req *http.Request) {
	win, err := h.desktop.OpenEntry(chi.URLParam(req, "id"))
	if err != nil {
		h.sendFailure(w, req, err)
		return
	}

	h.sendSuccess(w, "Entry opened successfully", win)
}

// Search handles the search endpoint.
// Query parameters: q (required), mode (substring or exact), case_sensitive.
func (h *FileSystemHandler) Search(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	q := query.Get("q")
	if q == "" {
		h.sendError(w, http.StatusBadRequest, "q is required")
		return
	}

	caseSensitive := false
	if value := query.Get("case_sensitive"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			h.sendError(w, http.StatusBadRequest, "case_sensitive must be a boolean")
			return
		}
		caseSensitive = parsed
	}

	fsys := h.desktop.FileSystem()
	var results []types.SearchResult
	switch mode := query.Get("mode"); mode {
	case "", searchSubstring:
		results = fsys.SearchBySubstring(q, caseSensitive)
	case searchExact:
		if result := fsys.SearchExact(q, caseSensitive); result.Found() {
			results = append(results, result)
		}
	default:
		h.sendError(w, http.StatusBadRequest, fmt.Sprintf("unknown search mode %q", mode))
		return
	}

	hits := make([]searchHit, len(results))
	for i, result := range results {
		hits[i] = searchHit{
			Entry:       result.Entry,
			Path:        result.Path,
			DisplayPath: fsys.DisplayPath(result),
		}
	}

	h.sendSuccess(w, fmt.Sprintf("Found %d entries", len(hits)), hits)
}
