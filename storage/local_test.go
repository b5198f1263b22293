package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, n := range names {
		fw, err := mw.CreateFormFile("images", n)
		require.NoError(t, err)
		_, err = fw.Write([]byte("data-" + n))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["images"]
}

func TestLocal_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewLocal(dir)

	paths, err := s.SaveAll("reviews", fileHeaders(t, "a.PNG", "b.jpg"))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "/uploads/reviews/"), p)
		onDisk := filepath.Join(dir, strings.TrimPrefix(p, "/uploads/"))
		_, err := os.Stat(onDisk)
		require.NoError(t, err)
	}
	assert.Equal(t, ".png", filepath.Ext(paths[0]))

	s.RemoveAll(paths)
	for _, p := range paths {
		_, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(p, "/uploads/")))
		assert.True(t, os.IsNotExist(err))
	}
}

func TestLocal_RemoveIgnoresForeignPaths(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	s := NewLocal(filepath.Join(dir, "uploads"))
	s.Remove("")
	s.Remove("/etc/passwd")
	s.Remove("/uploads/../keep.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
