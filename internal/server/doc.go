// Package server implements the write-only upload endpoint for
// DropZone. It owns the HTTP surface (a single POST /upload route),
// the raw multipart parsing and filename sanitation that guard it,
// and the on-disk store the accepted files land in.
package server
