package server

import (
	"bytes"
	"regexp"
	"strings"
)

// filenameAttr matches the quoted filename attribute of a part's
// Content-Disposition header. The capture may be empty; emptiness is
// rejected by sanitation so the client sees "Empty filename" rather
// than "No file uploaded".
var filenameAttr = regexp.MustCompile(`filename="([^"]*)"`)

var (
	dispositionMarker = []byte("Content-Disposition")
	filenameMarker    = []byte("filename=")
	headerSeparator   = []byte("\r\n\r\n")
	crlf              = []byte("\r\n")
)

// boundaryFrom extracts the boundary token from a Content-Type header
// value: the first boundary= parameter, terminated by ';' or the end
// of the string. Returns "" when no usable token is present.
func boundaryFrom(contentType string) string {
	_, rest, ok := strings.Cut(contentType, "boundary=")
	if !ok {
		return ""
	}
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// filePart is the file extracted from a multipart body.
type filePart struct {
	Filename string
	Data     []byte
}

// splitMultipart cuts the raw body on --<boundary> and returns the
// first segment that carries a Content-Disposition header, a quoted
// filename attribute, and a blank-line separator. The payload is
// everything after the first separator with a single trailing CRLF
// stripped. Additional file parts in the same body are ignored.
func splitMultipart(body []byte, boundary string) (filePart, bool) {
	delim := []byte("--" + boundary)
	for _, seg := range bytes.Split(body, delim) {
		if !bytes.Contains(seg, dispositionMarker) || !bytes.Contains(seg, filenameMarker) {
			continue
		}
		m := filenameAttr.FindSubmatch(seg)
		if m == nil {
			continue
		}
		_, data, found := bytes.Cut(seg, headerSeparator)
		if !found {
			continue
		}
		data = bytes.TrimSuffix(data, crlf)
		return filePart{Filename: decodeText(m[1]), Data: data}, true
	}
	return filePart{}, false
}
