package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extractor/internal/auth"
	"resume-extractor/internal/classify"
	"resume-extractor/internal/extract"
	"resume-extractor/internal/llm"
	"resume-extractor/internal/resume"
	"resume-extractor/internal/storage"
	"resume-extractor/internal/summary"
)

type stubExtractor struct{ text string }

func (s stubExtractor) ExtractFile(ctx context.Context, path string) (string, error) {
	return s.text, nil
}

func (s stubExtractor) ExtractBytes(ctx context.Context, data []byte) (string, error) {
	return s.text, nil
}

func newTestServer(t *testing.T, verifier auth.Verifier) (http.Handler, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.NewStore(filepath.Join(dir, "results.json"))
	require.NoError(t, err)
	classifier, err := classify.New()
	require.NoError(t, err)

	summarizer := summary.NewSummarizer(llm.NewService("none", "", "", 0), 3)
	processor := resume.NewProcessor(stubExtractor{text: "stub"}, classifier, summarizer, store)

	a := NewAPI(processor, store, classifier, verifier, filepath.Join(dir, "uploads"))
	return NewRouter(a), store
}

func seedResult(t *testing.T, store *storage.Store, name, category string) string {
	t.Helper()
	record := extract.Record{Name: name, Email: "x@example.com", Skills: []string{"go"}}
	id, err := store.Save(record, name+".pdf", "summary", storage.NewCategory(category))
	require.NoError(t, err)
	return id
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t, nil)
	rec := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestSearchResults(t *testing.T) {
	router, store := newTestServer(t, nil)
	seedResult(t, store, "Jane", "Web Developer")
	seedResult(t, store, "John", "Backend Developer")

	rec := doRequest(router, http.MethodGet, "/api/results", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var results []storage.StoredResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 2)

	rec = doRequest(router, http.MethodGet, "/api/results?q=jane", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Jane", results[0].Data.Name)

	rec = doRequest(router, http.MethodGet, "/api/results?category=Backend+Developer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "John", results[0].Data.Name)
}

func TestGetResult(t *testing.T) {
	router, store := newTestServer(t, nil)
	id := seedResult(t, store, "Jane", "Web Developer")

	rec := doRequest(router, http.MethodGet, "/api/results/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var result storage.StoredResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, id, result.ID)

	rec = doRequest(router, http.MethodGet, "/api/results/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCategory(t *testing.T) {
	router, store := newTestServer(t, nil)
	id := seedResult(t, store, "Jane", "Web Developer")

	rec := doRequest(router, http.MethodPut, "/api/results/"+id+"/category",
		`{"category":"Backend Developer"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var result storage.StoredResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"Web Developer", "Backend Developer"}, result.Category.Labels())

	rec = doRequest(router, http.MethodPut, "/api/results/"+id+"/category", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodPut, "/api/results/missing/category",
		`{"category":"X"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRemarks(t *testing.T) {
	router, store := newTestServer(t, nil)
	id := seedResult(t, store, "Jane", "Web Developer")

	rec := doRequest(router, http.MethodPut, "/api/results/"+id+"/remarks",
		`{"remarks":"strong candidate"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "strong candidate", stored.Remarks)
}

func TestDeleteResult(t *testing.T) {
	router, store := newTestServer(t, nil)
	id := seedResult(t, store, "Jane", "Web Developer")

	rec := doRequest(router, http.MethodDelete, "/api/results/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/results/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/results/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoles(t *testing.T) {
	router, _ := newTestServer(t, nil)

	rec := doRequest(router, http.MethodGet, "/api/roles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var roles []roleInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	require.Len(t, roles, 16)
	assert.Equal(t, "Web Developer", roles[0].Name)
	assert.Contains(t, roles[0].Description, "Required:")
}

func TestClassifyEndpoint(t *testing.T) {
	router, _ := newTestServer(t, nil)

	rec := doRequest(router, http.MethodPost, "/api/classify",
		`{"skills":["html","css","javascript","react"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var result classify.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []string{"Full Stack Developer"}, result.Labels)

	rec = doRequest(router, http.MethodPost, "/api/classify", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBasicAuth(t *testing.T) {
	verifier := auth.NewStaticVerifier("hradmin", "hradmin123")
	router, _ := newTestServer(t, verifier)

	rec := doRequest(router, http.MethodGet, "/api/results", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/api/results", nil)
	req.SetBasicAuth("hradmin", "wrong")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/results", nil)
	req.SetBasicAuth("hradmin", "hradmin123")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Health stays open.
	rec = doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
