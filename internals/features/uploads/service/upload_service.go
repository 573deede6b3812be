package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"desaku_backend/internals/constants"
	"desaku_backend/internals/sentinel"
)

// UploadService menyimpan berkas pendukung pengajuan ke disk lokal.
// Nama tersimpan: <uuid><ext>, referensi stabil: /uploads/<nama>.
type UploadService struct {
	Dir         string
	MaxFileSize int64
	MaxFiles    int
}

func NewUploadService(dir string, maxFileSize int64, maxFiles int) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("gagal menyiapkan direktori upload: %w", err)
	}
	return &UploadService{
		Dir:         dir,
		MaxFileSize: maxFileSize,
		MaxFiles:    maxFiles,
	}, nil
}

// CheckBatch memvalidasi jumlah, ekstensi, dan ukuran sebelum ada yang ditulis.
// Upload batch itu semua-atau-tidak: satu berkas bermasalah menolak semuanya.
func (s *UploadService) CheckBatch(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return sentinel.With(sentinel.ErrUploadRejected, "Tidak ada file yang diunggah")
	}
	if len(files) > s.MaxFiles {
		return sentinel.With(sentinel.ErrUploadRejected,
			fmt.Sprintf("Maksimal %d file per unggahan", s.MaxFiles))
	}
	for _, f := range files {
		if err := s.CheckFile(f.Filename, f.Size); err != nil {
			return err
		}
	}
	return nil
}

func (s *UploadService) CheckFile(filename string, size int64) error {
	if !constants.IsAllowedUploadExt(filename) {
		return sentinel.With(sentinel.ErrUploadRejected,
			fmt.Sprintf("Jenis file %s tidak diizinkan", filepath.Ext(filename)))
	}
	if size > s.MaxFileSize {
		return sentinel.With(sentinel.ErrUploadRejected,
			fmt.Sprintf("Ukuran file melebihi %dMB", s.MaxFileSize/(1024*1024)))
	}
	return nil
}

// SaveBatch menulis semua berkas dan mengembalikan daftar referensi stabil.
// Panggil CheckBatch dulu; referensi baru boleh dipakai di pengajuan SETELAH
// fungsi ini kembali (upload-then-reference).
func (s *UploadService) SaveBatch(files []*multipart.FileHeader) ([]string, error) {
	if err := s.CheckBatch(files); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(files))
	for _, f := range files {
		name := s.StoredName(f.Filename)
		if err := s.saveOne(f, name); err != nil {
			return nil, err
		}
		refs = append(refs, "/uploads/"+name)
	}
	return refs, nil
}

// StoredName membuat nama unik: uuid + ekstensi asli (sudah disanitasi).
func (s *UploadService) StoredName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalFilename)))
	return uuid.New().String() + ext
}

// Resolve memetakan nama berkas ke path absolut di dalam direktori upload.
// Menolak path traversal.
func (s *UploadService) Resolve(name string) (string, error) {
	cleaned := filepath.Base(filepath.Clean(name))
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, ".") {
		return "", sentinel.With(sentinel.ErrNotFound, "File tidak ditemukan")
	}
	full := filepath.Join(s.Dir, cleaned)
	if _, err := os.Stat(full); err != nil {
		return "", sentinel.With(sentinel.ErrNotFound, "File tidak ditemukan")
	}
	return full, nil
}

func (s *UploadService) saveOne(f *multipart.FileHeader, name string) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return fmt.Errorf("gagal menyimpan file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("gagal menulis file: %w", err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// sanitizeFilename: hapus karakter selain huruf, angka, titik, dash, underscore
func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}
