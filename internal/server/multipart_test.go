package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryFrom(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{
			name:        "plain boundary",
			contentType: "multipart/form-data; boundary=XYZ",
			want:        "XYZ",
		},
		{
			name:        "boundary followed by another parameter",
			contentType: "multipart/form-data; boundary=XYZ; charset=utf-8",
			want:        "XYZ",
		},
		{
			name:        "no boundary parameter",
			contentType: "multipart/form-data",
			want:        "",
		},
		{
			name:        "empty boundary value",
			contentType: "multipart/form-data; boundary=",
			want:        "",
		},
		{
			name:        "first occurrence wins",
			contentType: "multipart/form-data; boundary=A; boundary=B",
			want:        "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boundaryFrom(tt.contentType))
		})
	}
}

func rawPart(boundary, disposition, payload string) string {
	return "--" + boundary + "\r\n" + disposition + "\r\n\r\n" + payload + "\r\n"
}

func TestSplitMultipart_SinglePart(t *testing.T) {
	body := rawPart("X", `Content-Disposition: form-data; name="file"; filename="report.csv"`, "a,b,c\n1,2,3\n") +
		"--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, "report.csv", part.Filename)
	assert.Equal(t, []byte("a,b,c\n1,2,3\n"), part.Data)
}

func TestSplitMultipart_FirstFilePartWins(t *testing.T) {
	body := rawPart("X", `Content-Disposition: form-data; name="a"; filename="first.txt"`, "one") +
		rawPart("X", `Content-Disposition: form-data; name="b"; filename="second.txt"`, "two") +
		"--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, "first.txt", part.Filename)
	assert.Equal(t, []byte("one"), part.Data)
}

func TestSplitMultipart_SkipsNonFileFields(t *testing.T) {
	body := rawPart("X", `Content-Disposition: form-data; name="comment"`, "just text") +
		rawPart("X", `Content-Disposition: form-data; name="file"; filename="data.xml"`, "<x/>") +
		"--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, "data.xml", part.Filename)
	assert.Equal(t, []byte("<x/>"), part.Data)
}

func TestSplitMultipart_NoFilePart(t *testing.T) {
	body := rawPart("X", `Content-Disposition: form-data; name="comment"`, "just text") + "--X--\r\n"

	_, ok := splitMultipart([]byte(body), "X")
	assert.False(t, ok)
}

func TestSplitMultipart_NoHeaderSeparator(t *testing.T) {
	// filename present but the segment never terminates its headers
	body := "--X\r\nContent-Disposition: form-data; name=\"file\"; filename=\"x.txt\"\r\n--X--\r\n"

	_, ok := splitMultipart([]byte(body), "X")
	assert.False(t, ok)
}

func TestSplitMultipart_EmptyFilenameAttribute(t *testing.T) {
	body := rawPart("X", `Content-Disposition: form-data; name="file"; filename=""`, "payload") + "--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, "", part.Filename)
	assert.Equal(t, []byte("payload"), part.Data)
}

func TestSplitMultipart_PayloadKeepsEmbeddedSeparators(t *testing.T) {
	payload := "head\r\n\r\nbody keeps its own blank lines"
	body := rawPart("X", `Content-Disposition: form-data; name="file"; filename="blob.bin"`, payload) +
		"--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, []byte(payload), part.Data)
}

func TestSplitMultipart_StripsSingleTrailingCRLF(t *testing.T) {
	// payload deliberately ends in \r\n; only the framing CRLF goes
	body := rawPart("X", `Content-Disposition: form-data; name="file"; filename="log.txt"`, "line\r\n") +
		"--X--\r\n"

	part, ok := splitMultipart([]byte(body), "X")
	require.True(t, ok)
	assert.Equal(t, []byte("line\r\n"), part.Data)
}

func TestSplitMultipart_EmptyBody(t *testing.T) {
	_, ok := splitMultipart(nil, "X")
	assert.False(t, ok)
}
