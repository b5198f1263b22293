package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix the upload dir is served under.
const PublicPrefix = "/uploads"

// Local stores uploaded files on disk under Dir/<kind>/.
type Local struct {
	Dir string
}

func NewLocal(dir string) *Local {
	return &Local{Dir: dir}
}

// Save writes one file and returns its public path.
func (s *Local) Save(kind string, fh *multipart.FileHeader) (string, error) {
	folder := filepath.Join(s.Dir, kind)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(folder, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload %q: %w", fh.Filename, err)
	}
	return path.Join(PublicPrefix, kind, name), nil
}

// SaveAll stores every file; on failure the ones already written are removed.
func (s *Local) SaveAll(kind string, files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.Save(kind, fh)
		if err != nil {
			s.RemoveAll(out)
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Remove deletes a file previously returned by Save. Unknown paths are ignored.
func (s *Local) Remove(publicPath string) {
	rel, ok := strings.CutPrefix(publicPath, PublicPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
}

func (s *Local) RemoveAll(publicPaths []string) {
	for _, p := range publicPaths {
		s.Remove(p)
	}
}
