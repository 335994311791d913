package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-extractor/internal/logger"
	"resume-extractor/internal/resume"
	"resume-extractor/internal/storage"
)

type uploadResponse struct {
	ID             string         `json:"id"`
	Filename       string         `json:"filename"`
	Outcome        resume.Outcome `json:"outcome"`
	ProcessingTime string         `json:"processing_time"`
}

// UploadHandler handles resume uploads and runs the full pipeline.
// @Summary Upload and process a resume
// @Description Upload a PDF resume, extract fields and skills, classify and summarize it, and store the result
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF)"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resumes/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".pdf" {
		http.Error(w, "invalid file type (only PDF is supported)", http.StatusBadRequest)
		return
	}

	path, err := a.saveUpload(file, header.Filename)
	if err != nil {
		logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to save upload")
		http.Error(w, "failed to save uploaded file", http.StatusInternalServerError)
		return
	}

	id, outcome, err := a.processor.ProcessAndStore(r.Context(), path, header.Filename)
	if err != nil {
		if errors.Is(err, resume.ErrExtractionFailed) {
			http.Error(w, "could not extract any data from the resume", http.StatusUnprocessableEntity)
			return
		}
		logger.Error().Err(err).Str("filename", header.Filename).Msg("resume processing failed")
		http.Error(w, "failed to process resume", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Str("id", id).
		Str("filename", header.Filename).
		Dur("took", time.Since(startTime)).
		Msg("resume uploaded and processed")

	writeJSON(w, http.StatusOK, uploadResponse{
		ID:             id,
		Filename:       header.Filename,
		Outcome:        outcome,
		ProcessingTime: time.Since(startTime).String(),
	})
}

// saveUpload writes the uploaded file into the uploads directory under
// a timestamped name so repeated uploads of the same file never clash.
func (a *API) saveUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(a.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(filename))
	path := filepath.Join(a.uploadsDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

// SearchHandler lists stored results with optional filtering and sorting.
// @Summary Search stored results
// @Description Filter stored results by free-text query and exact category, sorted by the requested key
// @Tags results
// @Produce json
// @Param q query string false "Substring matched against filename, name, email, phone and skills"
// @Param category query string false "Exact category filter"
// @Param sort query string false "Sort key: date, name, filename or skills" default(date)
// @Param reverse query bool false "Reverse the sort order"
// @Success 200 {array} storage.StoredResult
// @Failure 500 {object} map[string]string
// @Router /results [get]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	results, err := a.store.Search(q.Get("q"), q.Get("category"))
	if err != nil {
		http.Error(w, "failed to read results", http.StatusInternalServerError)
		return
	}

	storage.SortResults(results, q.Get("sort"), q.Get("reverse") == "true")
	writeJSON(w, http.StatusOK, results)
}

// GetResultHandler returns one stored result.
// @Summary Get a stored result
// @Tags results
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} storage.StoredResult
// @Failure 404 {object} map[string]string
// @Router /results/{id} [get]
func (a *API) GetResultHandler(w http.ResponseWriter, r *http.Request) {
	result, err := a.store.Get(r.PathValue("id"))
	if err != nil {
		a.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DeleteResultHandler removes one stored result.
// @Summary Delete a stored result
// @Tags results
// @Produce json
// @Param id path string true "Result id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id} [delete]
func (a *API) DeleteResultHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := a.store.Delete(id); err != nil {
		a.storeError(w, err)
		return
	}
	logger.Info().Str("id", id).Msg("result deleted")
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// UpdateCategoryHandler merges a category label into a stored result.
// @Summary Add a category label to a result
// @Description Merges the label into the result's category; existing labels are kept
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result id"
// @Param body body object true "JSON object with a category field"
// @Success 200 {object} storage.StoredResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id}/category [put]
func (a *API) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Category == "" {
		http.Error(w, "body must be a JSON object with a non-empty category", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := a.store.UpdateCategory(id, body.Category); err != nil {
		a.storeError(w, err)
		return
	}
	a.respondWithResult(w, id)
}

// UpdateRemarksHandler overwrites the remarks of a stored result.
// @Summary Set the remarks of a result
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result id"
// @Param body body object true "JSON object with a remarks field"
// @Success 200 {object} storage.StoredResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id}/remarks [put]
func (a *API) UpdateRemarksHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Remarks string `json:"remarks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body must be a JSON object with a remarks field", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := a.store.UpdateRemarks(id, body.Remarks); err != nil {
		a.storeError(w, err)
		return
	}
	a.respondWithResult(w, id)
}

// UpdateSummaryHandler overwrites the summary of a stored result.
// @Summary Set the summary of a result
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result id"
// @Param body body object true "JSON object with a summary field"
// @Success 200 {object} storage.StoredResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id}/summary [put]
func (a *API) UpdateSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body must be a JSON object with a summary field", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := a.store.UpdateSummary(id, body.Summary); err != nil {
		a.storeError(w, err)
		return
	}
	a.respondWithResult(w, id)
}

type roleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RolesHandler lists the known job roles and their skill profiles.
// @Summary List classification roles
// @Tags roles
// @Produce json
// @Success 200 {array} roleInfo
// @Router /roles [get]
func (a *API) RolesHandler(w http.ResponseWriter, r *http.Request) {
	roles := a.classifier.Roles()
	out := make([]roleInfo, 0, len(roles))
	for _, name := range roles {
		out = append(out, roleInfo{
			Name:        name,
			Description: a.classifier.Description(name),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ClassifyHandler classifies an ad-hoc skill list without storing anything.
// @Summary Classify a skill list
// @Description Returns the best-matching roles and per-role scores for the given skills
// @Tags roles
// @Accept json
// @Produce json
// @Param body body object true "JSON object with a skills array"
// @Success 200 {object} classify.Result
// @Failure 400 {object} map[string]string
// @Router /classify [post]
func (a *API) ClassifyHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body must be a JSON object with a skills array", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a.classifier.Classify(body.Skills))
}

func (a *API) respondWithResult(w http.ResponseWriter, id string) {
	result, err := a.store.Get(id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "result not found", http.StatusNotFound)
		return
	}
	logger.Error().Err(err).Msg("store operation failed")
	http.Error(w, "storage error", http.StatusInternalServerError)
}
