package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"docuscan/internal/common"
	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

// AllowedExtensions holds the uploadable file types: images for OCR, PDFs,
// and text formats served by the text-layer fast path.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
	"docx": {},
	"rtf":  {},
	"odt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SavedFile describes one persisted upload. SHA256 doubles as the result
// cache key.
type SavedFile struct {
	Path         string
	OriginalName string
	Size         int64
	SHA256       string
}

type Store struct {
	dir     string
	maxSize int64
	logger  *logz.Logger
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:     dir,
		maxSize: config.MaxUploadSize,
		logger:  logz.New("storage"),
	}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save validates and persists one uploaded file under a collision-free
// name. Oversize or disallowed uploads are ValidationFailures.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (SavedFile, error) {
	if header.Size > s.maxSize {
		return SavedFile{}, common.NewValidationError(
			fmt.Sprintf("file %q exceeds the %d byte limit", header.Filename, s.maxSize))
	}
	ext := NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := AllowedExtensions[ext]; !ok {
		return SavedFile{}, common.NewValidationError(
			fmt.Sprintf("file type %q is not supported", ext))
	}

	name := uuid.New().String() + "-" + filepath.Base(header.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return SavedFile{}, common.WrapError(err, "create upload file")
	}
	defer dst.Close()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(dst, hasher), file)
	if err != nil {
		s.Delete(path)
		return SavedFile{}, common.WrapError(err, "write upload file")
	}

	saved := SavedFile{
		Path:         path,
		OriginalName: header.Filename,
		Size:         size,
		SHA256:       hex.EncodeToString(hasher.Sum(nil)),
	}
	s.logger.Debug("storage.saved", "path", path, "bytes", size)
	return saved, nil
}

// Delete is best-effort: failures are logged, never raised.
func (s *Store) Delete(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Error("storage.delete_failed", "path", path, "error", err)
		return
	}
	s.logger.Debug("storage.deleted", "path", path)
}

func (s *Store) DeleteAll(paths []string) {
	for _, p := range paths {
		s.Delete(p)
	}
}
