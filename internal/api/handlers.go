package api

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/engage/internal/app"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------------------------------------------------------------------------
// GET /api/work-packages/{id}/hydrated?view=internal|client
// ---------------------------------------------------------------------------

func (s *Server) handleHydrated(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")
	if view == "" {
		view = string(s.defaultView)
	}

	out, err := s.hydrate.Hydrate(r.Context(), app.HydrateRequest{
		WorkPackageID: r.PathValue("id"),
		ViewMode:      view,
	})
	if err != nil {
		var herr *app.HydrateError
		if errors.As(err, &herr) {
			switch herr.Code {
			case app.HydrateErrNotFound:
				writeError(w, http.StatusNotFound, string(herr.Code), herr.Message)
				return
			case app.HydrateErrInvalidViewMode:
				writeError(w, http.StatusBadRequest, string(herr.Code), herr.Message)
				return
			}
		}
		s.logger.ErrorContext(r.Context(), "hydrate_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to hydrate work package")
		return
	}

	writeJSON(w, http.StatusOK, out)
}
