package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// handleUpload owns the POST /upload lifecycle: it runs the pipeline,
// converts its outcome into a response, and turns any panic into the
// generic 500 so no failure detail reaches the client and no request
// kills the process.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("upload panic", map[string]any{
				"request_id": RequestIDFromContext(r.Context()),
			}, fmt.Errorf("%v", rec))
			s.metrics.RecordUploadError()
			writeError(w, fail(http.StatusInternalServerError, "Upload failed"))
		}
	}()

	if reqErr := s.processUpload(r); reqErr != nil {
		if reqErr.Status >= 500 {
			s.metrics.RecordUploadError()
		}
		writeError(w, reqErr)
		return
	}
	writeCreated(w)
}

// processUpload walks the validation gates in order; the first failure
// short-circuits and becomes the response. A nil return means the
// file is on disk.
func (s *Server) processUpload(r *http.Request) *requestError {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || !strings.Contains(contentType, "multipart/form-data") {
		return fail(http.StatusBadRequest, "Expected multipart/form-data")
	}

	boundary := boundaryFrom(contentType)
	if boundary == "" {
		return fail(http.StatusBadRequest, "No boundary in multipart data")
	}

	// The header can be missing two ways: chunked bodies surface as
	// ContentLength -1, while a request with neither Content-Length
	// nor Transfer-Encoding arrives as 0 with no header value behind
	// it. A malformed header never reaches here: the HTTP layer
	// already rejected the request with a 400.
	length := r.ContentLength
	if length < 0 || (length == 0 && r.Header.Get("Content-Length") == "") {
		return fail(http.StatusLengthRequired, "Content-Length required")
	}
	if length > s.cfg.MaxUploadBytes {
		// Drain the declared byte count so the client finishes its
		// write before the connection closes.
		_, _ = io.CopyN(io.Discard, r.Body, length)
		s.metrics.RecordOversizeReject()
		return fail(http.StatusRequestEntityTooLarge, "Payload too large")
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r.Body, body); err != nil {
		s.log.Error("body read failed", map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
		}, err)
		return fail(http.StatusInternalServerError, "Upload failed")
	}

	part, ok := splitMultipart(body, boundary)
	if !ok {
		return fail(http.StatusBadRequest, "No file uploaded")
	}

	filename, reqErr := sanitizeFilename(part.Filename)
	if reqErr != nil {
		return reqErr
	}

	path, err := s.store.Save(filename, part.Data)
	if err != nil {
		s.log.Error("file write failed", map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
			"filename":   filename,
		}, err)
		return fail(http.StatusInternalServerError, "Upload failed")
	}

	s.metrics.RecordUpload(int64(len(part.Data)))
	s.log.Info("file stored", map[string]any{
		"request_id": RequestIDFromContext(r.Context()),
		"filename":   filename,
		"path":       path,
		"bytes":      len(part.Data),
	})
	return nil
}
