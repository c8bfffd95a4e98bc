package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vintagevault-backend/utils"

	"github.com/google/uuid"
)

// AllowedExtensions is the set of accepted image file extensions,
// matched case-insensitively.
var AllowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// RefPrefix is prepended to stored keys so the reference can be used
// directly in a public URL under the static mount.
const RefPrefix = "uploads/"

// DiskStore persists image assets under a local upload root. Stored
// files are keyed by a random UUID plus the original extension, so
// same-named uploads never overwrite each other.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Root returns the upload directory, for mounting as a static route.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Accept(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(utils.SanitizeFilename(fh.Filename)))
	if !AllowedExtensions[ext] {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	key := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", fmt.Errorf("creating asset file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing asset file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("closing asset file: %w", err)
	}

	return RefPrefix + key, nil
}

// Replace removes the old asset before accepting the new upload. If the
// new upload is rejected the old file is already gone - there is no
// rollback.
func (s *DiskStore) Replace(oldRef string, fh *multipart.FileHeader) (string, error) {
	if err := s.Remove(oldRef); err != nil {
		return "", err
	}
	return s.Accept(fh)
}

// Remove deletes the asset at ref if present; a missing file is a
// silent no-op. Refs never resolve outside the upload root.
func (s *DiskStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	key := path.Base(ref)
	if key == "." || key == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing asset %s: %w", ref, err)
	}
	return nil
}
