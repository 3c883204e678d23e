// Package site serves the public calculator page and its static assets.
package site

import (
	"io/fs"
	"net/http"
)

// Handler serves the embedded site.
type Handler struct {
	fileServer http.Handler
}

// NewHandler creates the site handler over the embedded assets.
func NewHandler() (*Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return &Handler{fileServer: http.FileServer(http.FS(sub))}, nil
}

// Register attaches the site routes to mux. The root path serves the
// calculator page; everything else under / falls through to the asset
// file server.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("/", h)
}

// ServeHTTP serves index.html for the root path and static assets for
// the rest. Unknown paths get the file server's 404.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.fileServer.ServeHTTP(w, r)
}
