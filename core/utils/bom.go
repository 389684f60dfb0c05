package utils

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewBOMReader wraps r so a UTF-8 byte order mark, if present, is
// stripped before any CSV parsing sees it. The supplier exports with
// utf-8-sig and the first header name would otherwise carry the mark.
func NewBOMReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
