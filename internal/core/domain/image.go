package domain

import "strings"

// allowedImageSubtypes lists the image subtypes accepted for icons and thumbnails.
var allowedImageSubtypes = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// ImageSubtype extracts the subtype from a declared MIME type such as
// "image/png" and reports whether it is accepted.
func ImageSubtype(contentType string) (string, bool) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	subtype, ok := strings.CutPrefix(ct, "image/")
	if !ok {
		return ct, false
	}
	_, allowed := allowedImageSubtypes[subtype]
	return subtype, allowed
}
