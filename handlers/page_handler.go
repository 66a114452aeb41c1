package handlers

import (
	"bytes"
	"net/http"

	"github.com/Dosada05/sports-calendar/pages"
)

type PageHandler struct {
	registry *pages.Registry
}

func NewPageHandler(registry *pages.Registry) *PageHandler {
	return &PageHandler{registry: registry}
}

// Page returns a handler serving the static page with the given slug as HTML.
func (h *PageHandler) Page(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.registry.Get(slug)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}

		var buf bytes.Buffer
		if err := page.WriteHTML(&buf); err != nil {
			serverErrorResponse(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}
