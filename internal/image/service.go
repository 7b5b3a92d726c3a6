package image

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/imagestore/service/internal/storage"
)

// ErrInvalidPagination is returned when page or limit is below 1.
var ErrInvalidPagination = errors.New("page and limit must be at least 1")

// ErrContentMismatch is returned in strict mode when the uploaded bytes do not
// match the type implied by the key's extension.
var ErrContentMismatch = errors.New("file content does not match its extension")

// Service composes key validation, persistence, listing and MIME lookup into
// the operations served by the HTTP layer.
type Service struct {
	store  storage.Store
	log    *zap.Logger
	strict bool
}

// Option configures a Service.
type Option func(*Service)

// WithStrictContentCheck makes Upload reject bytes whose sniffed type disagrees
// with the extension of a known image type.
func WithStrictContentCheck(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// NewService creates a new image Service.
func NewService(store storage.Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{store: store, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload stores data under key, replacing whatever was there.
func (s *Service) Upload(ctx context.Context, key string, data []byte) (*UploadResult, error) {
	clean, err := storage.ValidatePath(key)
	if err != nil {
		return nil, err
	}
	if err := s.checkContent(clean, data); err != nil {
		return nil, err
	}

	saved, err := s.store.Save(ctx, clean, data)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	f, err := s.store.Stat(ctx, saved.Path)
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}

	s.log.Info("image uploaded", zap.String("path", saved.Path), zap.Int64("size", saved.Size))
	return &UploadResult{
		Path:       saved.Path,
		Filename:   f.Filename,
		Size:       saved.Size,
		MimeType:   f.MimeType,
		UploadedAt: f.CreatedAt,
		UpdatedAt:  f.ModifiedAt,
	}, nil
}

// List returns one page of images, most recently modified first. Pages past
// the end are valid and contain no images.
func (s *Service) List(ctx context.Context, page, limit int) (*ListResult, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPagination
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	total := len(all)
	totalPages := pageCount(total, limit)
	images := []Image{}
	// page <= totalPages keeps (page-1)*limit below total, so it cannot overflow
	if page <= totalPages {
		start := (page - 1) * limit
		end := start + min(limit, total-start)
		for _, f := range all[start:end] {
			images = append(images, fromStoredFile(f))
		}
	}

	return &ListResult{
		Images: images,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

func pageCount(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}

// Get returns the bytes stored under key together with their content type.
func (s *Service) Get(ctx context.Context, key string) (*Content, error) {
	clean, err := storage.ValidatePath(key)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Read(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	c := &Content{Data: data}
	if f, err := s.store.Stat(ctx, clean); err == nil {
		c.Filename = f.Filename
		c.MimeType = f.MimeType
		c.ModifiedAt = f.ModifiedAt
	} else {
		// deleted between read and stat; the bytes are still good
		c.Filename = path.Base(clean)
		c.MimeType = storage.MimeType(c.Filename)
	}
	return c, nil
}

// Delete removes the image stored under key.
func (s *Service) Delete(ctx context.Context, key string) error {
	clean, err := storage.ValidatePath(key)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, clean); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	s.log.Info("image deleted", zap.String("path", clean))
	return nil
}

// Exists reports whether an image is stored under key.
func (s *Service) Exists(ctx context.Context, key string) bool {
	return s.store.Exists(ctx, key)
}

// IsNotFound returns true when the error indicates no image is stored under the key.
func (s *Service) IsNotFound(err error) bool {
	return storage.IsNotFound(err)
}

// IsInvalid returns true when the error is caused by bad client input.
func (s *Service) IsInvalid(err error) bool {
	return storage.IsInvalidPath(err) || errors.Is(err, ErrContentMismatch) || errors.Is(err, ErrInvalidPagination)
}

func (s *Service) checkContent(key string, data []byte) error {
	expected := storage.MimeType(key)
	if expected == storage.DefaultMimeType {
		return nil
	}
	detected := mimetype.Detect(data)
	if detected.Is(expected) {
		return nil
	}

	s.log.Warn("uploaded content does not match extension",
		zap.String("path", key),
		zap.String("expected", expected),
		zap.String("detected", detected.String()),
	)
	if s.strict {
		return fmt.Errorf("%w: expected %s, got %s", ErrContentMismatch, expected, detected.String())
	}
	return nil
}
