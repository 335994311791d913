package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Upload & processing
	mux.HandleFunc("POST /api/resumes/upload", a.requireAuth(a.UploadHandler))

	// Stored results
	mux.HandleFunc("GET /api/results", a.requireAuth(a.SearchHandler))
	mux.HandleFunc("GET /api/results/{id}", a.requireAuth(a.GetResultHandler))
	mux.HandleFunc("DELETE /api/results/{id}", a.requireAuth(a.DeleteResultHandler))
	mux.HandleFunc("PUT /api/results/{id}/category", a.requireAuth(a.UpdateCategoryHandler))
	mux.HandleFunc("PUT /api/results/{id}/remarks", a.requireAuth(a.UpdateRemarksHandler))
	mux.HandleFunc("PUT /api/results/{id}/summary", a.requireAuth(a.UpdateSummaryHandler))

	// Classification
	mux.HandleFunc("GET /api/roles", a.requireAuth(a.RolesHandler))
	mux.HandleFunc("POST /api/classify", a.requireAuth(a.ClassifyHandler))

	return mux
}
