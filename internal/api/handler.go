package api

import (
	"encoding/json"
	"net/http"

	"resume-extractor/internal/auth"
	"resume-extractor/internal/classify"
	"resume-extractor/internal/logger"
	"resume-extractor/internal/resume"
	"resume-extractor/internal/storage"
)

// API bundles the processing pipeline and the result store behind
// HTTP handlers. Handlers contain no extraction or scoring logic.
type API struct {
	processor  *resume.Processor
	store      *storage.Store
	classifier *classify.Classifier
	verifier   auth.Verifier
	uploadsDir string
}

func NewAPI(
	processor *resume.Processor,
	store *storage.Store,
	classifier *classify.Classifier,
	verifier auth.Verifier,
	uploadsDir string,
) *API {
	return &API{
		processor:  processor,
		store:      store,
		classifier: classifier,
		verifier:   verifier,
		uploadsDir: uploadsDir,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// requireAuth wraps a handler with basic-auth when a verifier is
// configured; without one the handler is open.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	if a.verifier == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || !a.verifier.Verify(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="resume-extractor"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
