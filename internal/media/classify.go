package media

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileType is the closed set of file categories the Lark endpoint recognizes.
type FileType string

const (
	FileTypeOpus FileType = "opus"
	FileTypeMp4  FileType = "mp4"
	FileTypePdf  FileType = "pdf"
	FileTypeDoc  FileType = "doc"
	FileTypeXls  FileType = "xls"
	FileTypePpt  FileType = "ppt"
	// FileTypeStream is the generic fallback category.
	FileTypeStream FileType = "stream"
)

var imageExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
	"webp": {}, "bmp": {}, "ico": {}, "tiff": {},
}

var audioExts = map[string]struct{}{
	"opus": {}, "ogg": {}, "mp3": {}, "wav": {},
	"m4a": {}, "aac": {}, "amr": {},
}

func lowerExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ClassifyFileType maps a file name's extension (case-insensitive) to the
// endpoint category. Unknown extensions fall back to FileTypeStream.
func ClassifyFileType(fileName string) FileType {
	switch lowerExt(fileName) {
	case "opus", "ogg":
		return FileTypeOpus
	case "mp4", "mov", "avi":
		return FileTypeMp4
	case "pdf":
		return FileTypePdf
	case "doc", "docx":
		return FileTypeDoc
	case "xls", "xlsx":
		return FileTypeXls
	case "ppt", "pptx":
		return FileTypePpt
	default:
		return FileTypeStream
	}
}

// IsImagePath reports whether the path's extension names an image format.
func IsImagePath(path string) bool {
	_, ok := imageExts[lowerExt(path)]
	return ok
}

// IsAudioPath reports whether the path's extension names an audio format.
func IsAudioPath(path string) bool {
	_, ok := audioExts[lowerExt(path)]
	return ok
}

// ResolveMediaPath normalizes a raw media path: a file:/// URI is stripped to
// its percent-decoded local path, then a leading ~ is expanded to the current
// user's home directory (empty when unknown). Host-qualified file://host/...
// URIs are deliberately left untouched. The result is not checked for
// existence.
func ResolveMediaPath(rawPath string) string {
	path := rawPath
	if strings.HasPrefix(path, "file:///") {
		path = strings.TrimPrefix(path, "file://")
		if decoded, err := url.PathUnescape(path); err == nil {
			path = decoded
		}
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			home = ""
		}
		path = home + path[1:]
	}
	return path
}
