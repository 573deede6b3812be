package constants

import (
	"path/filepath"
	"strings"
)

// Ekstensi berkas yang boleh diunggah warga (dokumen pendukung pengajuan).
var AllowedUploadExtensions = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".doc":  {},
	".docx": {},
}

func IsAllowedUploadExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := AllowedUploadExtensions[ext]
	return ok
}
