package document

import (
	"path/filepath"
	"strings"
)

type FileType string

const (
	FileTypeText  FileType = "text"
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
	FileTypeSheet FileType = "sheet"
)

var fileTypesByExt = map[string]FileType{
	".jpg":  FileTypeImage,
	".jpeg": FileTypeImage,
	".png":  FileTypeImage,
	".gif":  FileTypeImage,
	".webp": FileTypeImage,
	".pdf":  FileTypePDF,
	".xlsx": FileTypeSheet,
	".xls":  FileTypeSheet,
	".csv":  FileTypeSheet,
}

// FileTypeFor classifies an uploaded file by its extension, case-insensitively.
// Anything unknown counts as text.
func FileTypeFor(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))
	if ft, ok := fileTypesByExt[ext]; ok {
		return ft
	}
	return FileTypeText
}
