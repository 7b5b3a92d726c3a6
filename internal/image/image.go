// Package image exposes the path-addressed image store over HTTP.
package image

import (
	"time"

	"github.com/imagestore/service/internal/storage"
)

const (
	// DefaultPage is used when the page query parameter is absent.
	DefaultPage = 1
	// DefaultLimit is used when the limit query parameter is absent.
	DefaultLimit = 20
	// MaxLimit is the largest page size a client may request.
	MaxLimit = 100
)

// Image is one entry of a listing.
type Image struct {
	Path      string    `json:"path"      example:"user/123/avatar.jpg"`
	Filename  string    `json:"filename"  example:"avatar.jpg"`
	Size      int64     `json:"size"      example:"48213"`
	MimeType  string    `json:"mimeType"  example:"image/jpeg"`
	CreatedAt time.Time `json:"createdAt" example:"2026-02-27T14:48:34Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2026-02-27T14:48:34Z"`
}

// UploadResult describes a stored upload. Timestamps come from the filesystem
// after the write: UploadedAt is the creation time of the file, UpdatedAt its
// modification time.
type UploadResult struct {
	Path       string    `json:"path"       example:"user/123/avatar.jpg"`
	Filename   string    `json:"filename"   example:"avatar.jpg"`
	Size       int64     `json:"size"       example:"48213"`
	MimeType   string    `json:"mimeType"   example:"image/jpeg"`
	UploadedAt time.Time `json:"uploadedAt" example:"2026-02-27T14:48:34Z"`
	UpdatedAt  time.Time `json:"updatedAt"  example:"2026-02-27T14:48:34Z"`
}

// Pagination describes the page returned by List.
type Pagination struct {
	Total      int `json:"total"      example:"42"`
	Page       int `json:"page"       example:"1"`
	Limit      int `json:"limit"      example:"20"`
	TotalPages int `json:"totalPages" example:"3"`
}

// ListResult is one page of images plus pagination details.
type ListResult struct {
	Images     []Image    `json:"images"`
	Pagination Pagination `json:"pagination"`
}

// Content is the payload of a single stored image.
type Content struct {
	Data       []byte
	Filename   string
	MimeType   string
	ModifiedAt time.Time
}

func fromStoredFile(f storage.StoredFile) Image {
	return Image{
		Path:      f.Path,
		Filename:  f.Filename,
		Size:      f.Size,
		MimeType:  f.MimeType,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.ModifiedAt,
	}
}
