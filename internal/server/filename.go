package server

import (
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// utf8Sweeper copies well-formed UTF-8 through and skips undecodable
// bytes. A replacement character that was genuinely encoded in the
// input survives; only bytes that fail to decode are dropped.
type utf8Sweeper struct{ transform.NopResetter }

func (utf8Sweeper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				return
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			err = transform.ErrShortDst
			return
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return
}

// decodeText decodes raw multipart header bytes as text, tolerating
// undecodable bytes by dropping them.
func decodeText(b []byte) string {
	decoded, _, _ := transform.Bytes(utf8Sweeper{}, b)
	return string(decoded)
}

// sanitizeFilename reduces an untrusted upload filename to its final
// path segment. Anything that still carries a separator afterwards is
// rejected, which blocks traversal and absolute-path injection even if
// the basename step was sidestepped by an encoding trick.
func sanitizeFilename(name string) (string, *requestError) {
	clean := name
	if i := strings.LastIndexByte(clean, '/'); i >= 0 {
		clean = clean[i+1:]
	}
	if os.PathSeparator != '/' {
		if i := strings.LastIndexByte(clean, byte(os.PathSeparator)); i >= 0 {
			clean = clean[i+1:]
		}
	}

	if clean == "" {
		return "", fail(http.StatusBadRequest, "Empty filename")
	}
	// Defense in depth: the basename step above already removed every
	// forward slash, so this arm only fires if that step is ever
	// bypassed or loosened.
	if strings.ContainsRune(clean, '/') ||
		(os.PathSeparator != '/' && strings.ContainsRune(clean, rune(os.PathSeparator))) {
		return "", fail(http.StatusBadRequest, "Invalid filename")
	}
	return clean, nil
}
