package handler

import (
	"net/http"
)

// Static serves files below a root directory with the standard library's
// file server semantics: index.html resolution, directory listings,
// content-type detection and 404/403 responses for missing or unreadable
// paths.
type Static struct {
	root  string
	files http.Handler
}

// NewStatic creates a Static handler rooted at root.
func NewStatic(root string) *Static {
	return &Static{
		root:  root,
		files: http.FileServer(http.Dir(root)),
	}
}

// Root returns the served directory.
func (h *Static) Root() string {
	return h.root
}

func (h *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}
