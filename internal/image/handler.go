package image

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/imagestore/service/internal/response"
)

// Handler holds HTTP handlers for image endpoints.
type Handler struct {
	svc             *Service
	log             *zap.Logger
	maxUploadBytes  int64
	multipartMemory int64
}

// NewHandler creates a new image Handler. Upload bodies larger than
// maxUploadBytes are rejected; multipartMemory bounds how much of a form is
// buffered in memory before spilling to temporary files.
func NewHandler(svc *Service, log *zap.Logger, maxUploadBytes, multipartMemory int64) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		svc:             svc,
		log:             log,
		maxUploadBytes:  maxUploadBytes,
		multipartMemory: multipartMemory,
	}
}

// Upload godoc
//
//	@Summary		Upload image
//	@Description	Store a file under an arbitrary slash-separated key. Missing directories are created; an existing file at the same key is replaced.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			path		formData	string	true	"Storage key, e.g. user/123/avatar.jpg"
//	@Param			file		formData	file	true	"File content"
//	@Param			description	formData	string	false	"Accepted and ignored"
//	@Param			tags		formData	string	false	"Accepted and ignored"
//	@Success		201			{object}	UploadResult
//	@Failure		400			{object}	response.Envelope
//	@Failure		413			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/images [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.multipartMemory); err != nil {
		if isTooLarge(err) {
			response.RequestTooLarge(w, "upload exceeds size limit")
			return
		}
		response.BadRequest(w, "invalid multipart form")
		return
	}

	key := r.FormValue("path")
	if strings.TrimSpace(key) == "" {
		response.BadRequest(w, "path is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			response.RequestTooLarge(w, "upload exceeds size limit")
			return
		}
		response.BadRequest(w, "failed to read file")
		return
	}

	result, err := h.svc.Upload(r.Context(), key, data)
	if err != nil {
		if h.svc.IsInvalid(err) {
			response.BadRequest(w, err.Error())
			return
		}
		h.log.Error("upload failed", zap.String("path", key), zap.Error(err))
		response.InternalError(w)
		return
	}

	response.Created(w, result)
}

// List godoc
//
//	@Summary		List images
//	@Description	Returns stored images, most recently modified first, one page at a time. Pages past the end return an empty list.
//	@Tags			images
//	@Produce		json
//	@Param			page	query		int	false	"Page number (>= 1)"		default(1)	minimum(1)
//	@Param			limit	query		int	false	"Page size (1-100)"		default(20)	minimum(1)	maximum(100)
//	@Success		200		{object}	ListResult
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/images [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page", DefaultPage)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", DefaultLimit)
	if !ok {
		return
	}
	if page < 1 {
		response.BadRequest(w, "page must be at least 1")
		return
	}
	if limit < 1 || limit > MaxLimit {
		response.BadRequest(w, "limit must be between 1 and "+strconv.Itoa(MaxLimit))
		return
	}

	result, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		h.log.Error("list failed", zap.Error(err))
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}

// Get godoc
//
//	@Summary		Get image
//	@Description	Returns the raw bytes stored under the key. Slashes in the key may be URL-encoded.
//	@Tags			images
//	@Produce		octet-stream
//	@Param			path	path		string	true	"Storage key"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/images/{path} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), key)
	if err != nil {
		h.writeLookupError(w, "get", key, err)
		return
	}

	disposition := mime.FormatMediaType("inline", map[string]string{"filename": c.Filename})
	if disposition == "" {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", c.MimeType)
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Data)))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if !c.ModifiedAt.IsZero() {
		w.Header().Set("Last-Modified", c.ModifiedAt.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(c.Data)
}

// Head godoc
//
//	@Summary		Check image
//	@Description	Reports whether an image is stored under the key without returning it.
//	@Tags			images
//	@Param			path	path	string	true	"Storage key"
//	@Success		200
//	@Failure		404
//	@Router			/images/{path} [head]
func (h *Handler) Head(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	if !h.svc.Exists(r.Context(), key) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete godoc
//
//	@Summary		Delete image
//	@Description	Removes the file stored under the key. Parent directories are kept.
//	@Tags			images
//	@Produce		json
//	@Param			path	path	string	true	"Storage key"
//	@Success		204
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/images/{path} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), key); err != nil {
		h.writeLookupError(w, "delete", key, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, op, key string, err error) {
	switch {
	case h.svc.IsInvalid(err):
		response.BadRequest(w, err.Error())
	case h.svc.IsNotFound(err):
		response.NotFound(w, "image not found")
	default:
		h.log.Error(op+" failed", zap.String("path", key), zap.Error(err))
		response.InternalError(w)
	}
}

// pathKey extracts the storage key from the wildcard route segment. When the
// client encoded its slashes, chi routes on the raw path and the key still
// needs decoding.
func pathKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(key)
		if err != nil {
			response.BadRequest(w, "malformed path encoding")
			return "", false
		}
		key = decoded
	}
	return key, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, name+" must be an integer")
		return 0, false
	}
	return n, true
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
