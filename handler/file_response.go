package handler

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"
)

// File describes a body served by Attachment.
type File struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	ETag        string
	Body        io.ReadCloser
}

type attachmentResponse struct {
	file    File
	written *int64
}

func (a attachmentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	defer a.file.Body.Close()

	h := w.Header()
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.file.Name}))
	if a.file.ContentType != "" {
		h.Set("Content-Type", a.file.ContentType)
	}
	if a.file.ETag != "" {
		h.Set("ETag", a.file.ETag)
	}

	// Seekable bodies get Range and conditional request support.
	if rs, ok := a.file.Body.(io.ReadSeeker); ok {
		cw := &countingWriter{ResponseWriter: w}
		http.ServeContent(cw, r, a.file.Name, a.file.ModTime, rs)
		a.record(cw.n)
		return nil
	}

	if a.file.Size > 0 {
		h.Set("Content-Length", strconv.FormatInt(a.file.Size, 10))
	}
	if !a.file.ModTime.IsZero() {
		h.Set("Last-Modified", a.file.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	n, err := io.Copy(w, a.file.Body)
	a.record(n)
	// Headers are already sent, so a copy error can only be reported.
	return err
}

func (a attachmentResponse) record(n int64) {
	if a.written != nil {
		*a.written = n
	}
}

// Attachment streams f as a download and closes its body. When written
// is non-nil it receives the number of body bytes sent.
func Attachment(f File, written *int64) Response {
	return attachmentResponse{file: f, written: written}
}

type blobResponse struct {
	contentType string
	data        []byte
	maxAge      time.Duration
}

func (b blobResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.data)))
	if b.maxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(b.maxAge.Seconds())))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := io.Copy(w, bytes.NewReader(b.data))
	return err
}

// Blob returns an in-memory body such as a generated image. A positive
// maxAge makes it publicly cacheable.
func Blob(contentType string, data []byte, maxAge time.Duration) Response {
	return blobResponse{contentType: contentType, data: data, maxAge: maxAge}
}

type countingWriter struct {
	http.ResponseWriter
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.ResponseWriter.Write(p)
	c.n += int64(n)
	return n, err
}
