package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "github.com/imagestore/service/docs/swagger"
	"github.com/imagestore/service/internal/image"
	"github.com/imagestore/service/internal/storage"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestServer(t *testing.T, maxUpload int64) http.Handler {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)
	log := zap.NewNop()
	svc := image.NewService(store, log)
	return New(log, []string{"*"}, image.NewHandler(svc, log, maxUpload, 1<<20))
}

func multipartBody(t *testing.T, fields map[string]string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if content != nil {
		fw, err := mw.CreateFormFile("file", "upload.bin")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func upload(t *testing.T, h http.Handler, key string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := multipartBody(t, map[string]string{"path": key}, content)
	req := httptest.NewRequest(http.MethodPost, "/api/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestServer(t, 1<<20)
	rec := do(h, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/images")
	assert.Contains(t, paths, "/images/{path}")
}

func TestUploadGetDeleteFlow(t *testing.T) {
	h := newTestServer(t, 1<<20)

	rec := upload(t, h, "user/123/avatar.png", pngBytes)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var up image.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &up))
	assert.Equal(t, "user/123/avatar.png", up.Path)
	assert.Equal(t, "avatar.png", up.Filename)
	assert.Equal(t, int64(len(pngBytes)), up.Size)

	for _, target := range []string{
		"/api/images/user%2F123%2Favatar.png",
		"/api/images/user/123/avatar.png",
	} {
		rec = do(h, http.MethodGet, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, pngBytes, rec.Body.Bytes())
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename=avatar.png`, rec.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, rec.Header().Get("Last-Modified"))
	}

	rec = do(h, http.MethodHead, "/api/images/user%2F123%2Favatar.png")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodDelete, "/api/images/user%2F123%2Favatar.png")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, http.MethodGet, "/api/images/user%2F123%2Favatar.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(h, http.MethodDelete, "/api/images/user%2F123%2Favatar.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(h, http.MethodHead, "/api/images/user%2F123%2Favatar.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileUsedAsDirectoryIsNotFound(t *testing.T) {
	h := newTestServer(t, 1<<20)
	require.Equal(t, http.StatusCreated, upload(t, h, "file.png", pngBytes).Code)

	for _, target := range []string{
		"/api/images/file.png%2Fchild.png",
		"/api/images/file.png/child.png",
	} {
		assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, target).Code, target)
		assert.Equal(t, http.StatusNotFound, do(h, http.MethodDelete, target).Code, target)
		assert.Equal(t, http.StatusNotFound, do(h, http.MethodHead, target).Code, target)
	}
}

func TestUploadOverwrite(t *testing.T) {
	h := newTestServer(t, 1<<20)

	require.Equal(t, http.StatusCreated, upload(t, h, "a/b/c/file.bin", []byte("old")).Code)
	require.Equal(t, http.StatusCreated, upload(t, h, "a/b/c/file.bin", []byte("newer bytes")).Code)

	rec := do(h, http.MethodGet, "/api/images/a%2Fb%2Fc%2Ffile.bin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "newer bytes", rec.Body.String())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestUploadValidation(t *testing.T) {
	h := newTestServer(t, 2048)

	rec := upload(t, h, "../escape.png", pngBytes)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, h, "/abs.png", pngBytes)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, ct := multipartBody(t, map[string]string{"path": "x.png"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/images", body)
	req.Header.Set("Content-Type", ct)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, ct = multipartBody(t, map[string]string{}, pngBytes)
	req = httptest.NewRequest(http.MethodPost, "/api/images", body)
	req.Header.Set("Content-Type", ct)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/images", bytes.NewBufferString(`{"path":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, h, "big.bin", bytes.Repeat([]byte("x"), 8192))
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusRequestEntityTooLarge}, rec.Code)
}

func TestGetRejectsTraversal(t *testing.T) {
	h := newTestServer(t, 1<<20)

	rec := do(h, http.MethodGet, "/api/images/..%2F..%2Fetc%2Fpasswd")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(h, http.MethodDelete, "/api/images/%2Fetc%2Fpasswd")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEndpoint(t *testing.T) {
	h := newTestServer(t, 1<<20)

	rec := do(h, http.MethodGet, "/api/images")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"images":[],"pagination":{"total":0,"page":1,"limit":20,"totalPages":0}}`, rec.Body.String())

	for _, key := range []string{"one.png", "two.png", "three.png"} {
		require.Equal(t, http.StatusCreated, upload(t, h, key, pngBytes).Code)
	}

	rec = do(h, http.MethodGet, "/api/images?page=2&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	var res image.ListResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Images, 1)
	assert.Equal(t, image.Pagination{Total: 3, Page: 2, Limit: 2, TotalPages: 2}, res.Pagination)
}

func TestListValidation(t *testing.T) {
	h := newTestServer(t, 1<<20)

	for _, q := range []string{"page=0", "page=-1", "limit=0", "limit=101", "page=abc", "limit=1.5"} {
		rec := do(h, http.MethodGet, "/api/images?"+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	rec := do(h, http.MethodGet, "/api/images?page=50&limit=100")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusCreated, upload(t, h, "only.png", pngBytes).Code)
	rec = do(h, http.MethodGet, "/api/images?page=9223372036854775807&limit=100")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"images":[],"pagination":{"total":1,"page":9223372036854775807,"limit":100,"totalPages":1}}`, rec.Body.String())
}
