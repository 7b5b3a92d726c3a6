package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeType(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":      "image/jpeg",
		"photo.JPEG":     "image/jpeg",
		"a/b/icon.png":   "image/png",
		"anim.gif":       "image/gif",
		"pic.webp":       "image/webp",
		"logo.svg":       "image/svg+xml",
		"old.bmp":        "image/bmp",
		"favicon.ico":    "image/x-icon",
		"archive.tar.gz": DefaultMimeType,
		"data.xyz":       DefaultMimeType,
		"README":         DefaultMimeType,
		"trailing.":      DefaultMimeType,
	}
	for name, want := range cases {
		assert.Equal(t, want, MimeType(name), name)
	}
}
