package session

import (
	"bytes"
	"net/http"
)

// bufferedWriter holds a handler's response until the session is saved
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedWriter(header http.Header) *bufferedWriter {
	return &bufferedWriter{header: header.Clone()}
}

func (w *bufferedWriter) Header() http.Header {
	return w.header
}

func (w *bufferedWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// flushTo copies the held headers, status and body to dst
func (w *bufferedWriter) flushTo(dst http.ResponseWriter) error {
	header := dst.Header()
	for k, v := range w.header {
		header[k] = v
	}

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	dst.WriteHeader(status)

	_, err := dst.Write(w.body.Bytes())
	return err
}
