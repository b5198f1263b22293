package middlewares

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"

	"github.com/gin-gonic/gin"
)

const uploadKey = "uploads.files"

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Uploads collects image files from multipart requests. It only checks
// and stashes the file headers; controllers persist them once the rest
// of the chain has passed.
type Uploads struct {
	MaxFileBytes int64
}

func NewUploads(maxMB int64) *Uploads {
	return &Uploads{MaxFileBytes: maxMB << 20}
}

// Single accepts at most one file in field.
func (u *Uploads) Single(field string) gin.HandlerFunc {
	return u.collect(field, 1)
}

// Array accepts up to max files in field.
func (u *Uploads) Array(field string, max int) gin.HandlerFunc {
	return u.collect(field, max)
}

// LimitBody caps the whole request body at one file plus room for the
// form fields, for handlers that read the form themselves.
func (u *Uploads) LimitBody() gin.HandlerFunc {
	limit := u.MaxFileBytes + 1<<20
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			resp.Abort(c, apperr.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", limit)))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// UploadedFiles returns the files accepted by Single or Array.
func UploadedFiles(c *gin.Context) []*multipart.FileHeader {
	v, ok := c.Get(uploadKey)
	if !ok {
		return nil
	}
	files, _ := v.([]*multipart.FileHeader)
	return files
}

func (u *Uploads) collect(field string, max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		// room for the files plus the text fields
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(max)*u.MaxFileBytes+1<<20)
		form, err := c.MultipartForm()
		if err != nil {
			resp.Abort(c, apperr.BadRequest("invalid multipart form"))
			return
		}

		for name := range form.File {
			if name != field {
				resp.Abort(c, apperr.BadRequest(fmt.Sprintf("unexpected file field %q", name)))
				return
			}
		}

		files := form.File[field]
		if len(files) > max {
			resp.Abort(c, apperr.BadRequest(fmt.Sprintf("too many files in %q (max %d)", field, max)))
			return
		}
		for _, fh := range files {
			if fh.Size > u.MaxFileBytes {
				resp.Abort(c, apperr.BadRequest(fmt.Sprintf("%s exceeds %d bytes", fh.Filename, u.MaxFileBytes)))
				return
			}
			ctype, err := sniff(fh)
			if err != nil {
				resp.Abort(c, apperr.BadRequest("cannot read "+fh.Filename))
				return
			}
			if !imageTypes[ctype] {
				resp.Abort(c, apperr.BadRequest(fmt.Sprintf("%s is not an accepted image (%s)", fh.Filename, ctype)))
				return
			}
		}

		c.Set(uploadKey, files)
		c.Next()
	}
}

// sniff looks at the content rather than trusting the client header.
func sniff(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
