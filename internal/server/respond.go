package server

import (
	"io"
	"net/http"
	"strconv"
)

// requestError is a terminal request outcome: the status code and the
// single-line plain-text body the client receives. Validation failures
// travel as values through the upload pipeline instead of panics.
type requestError struct {
	Status  int
	Message string
}

func fail(status int, message string) *requestError {
	return &requestError{Status: status, Message: message}
}

// writeError sends a plain-text error response. Bodies are one line,
// newline-terminated, with an exact Content-Length, and the connection
// always closes afterwards.
func writeError(w http.ResponseWriter, e *requestError) {
	body := e.Message + "\n"
	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("Connection", "close")
	w.WriteHeader(e.Status)
	_, _ = io.WriteString(w, body)
}

// writeCreated sends the empty 201 success response.
func writeCreated(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Length", "0")
	h.Set("Connection", "close")
	w.WriteHeader(http.StatusCreated)
}
