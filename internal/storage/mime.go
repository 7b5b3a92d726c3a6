package storage

import "strings"

// DefaultMimeType is served for unknown or missing extensions.
const DefaultMimeType = "application/octet-stream"

var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
	"ico":  "image/x-icon",
}

// MimeType maps a filename to a content type by its lowercase extension.
func MimeType(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return DefaultMimeType
	}
	if t, ok := mimeTypes[strings.ToLower(filename[i+1:])]; ok {
		return t
	}
	return DefaultMimeType
}
